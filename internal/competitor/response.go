// Package competitor models how rivals react to price changes and promotions.
package competitor

import (
	"math"

	"market-intel/internal/model"
)

// Rand is the randomness source for competitor jitter. *rand.Rand from
// math/rand/v2 satisfies it; pass a seeded one for reproducible runs.
type Rand interface {
	Float64() float64
}

// MaxPriceWarCut caps a single week's competitor price cut.
const MaxPriceWarCut = 0.3

// Response is a competitor's price reaction for one step.
type Response struct {
	NewPrice float64
	// ChangePercent is the signed price change, negative for a cut.
	ChangePercent float64
}

// PriceWarResponse returns the competitor's next price after you cut yours
// by yourChangeRate. The cut is yourChangeRate*(0.5+aggression/2) with
// +/-20% jitter, capped at MaxPriceWarCut. Prices never rise.
func PriceWarResponse(rng Rand, currentPrice, aggression, yourChangeRate float64) Response {
	aggression = clamp01(aggression)

	cut := yourChangeRate * (0.5 + aggression/2)
	cut *= 0.8 + rng.Float64()*0.4
	cut = math.Min(cut, MaxPriceWarCut)
	cut = math.Max(cut, 0)

	return Response{
		NewPrice:      currentPrice * (1 - cut),
		ChangePercent: -cut * 100,
	}
}

// PromotionImpact is the fraction (0..1) of your promotion uplift that
// competitor reaction takes away on the given day.
func PromotionImpact(mode model.ResponseMode, day int) float64 {
	d := float64(day)
	switch mode {
	case model.ResponseMatch:
		return math.Min(0.7, 0.15*d)
	case model.ResponseUndercut:
		return math.Min(0.9, 0.2*d)
	default:
		return 0
	}
}

// Reaction is the expected competitor move against a launch price.
type Reaction string

const (
	ReactionNone     Reaction = "none"
	ReactionPriceCut Reaction = "price-cut"
	ReactionPromote  Reaction = "promote"
)

// NewProductResponse guesses how competitors answer a launch at yourPrice:
// well under the average price they cut with p=0.6, well over it they
// promote with p=0.3.
func NewProductResponse(rng Rand, yourPrice float64, competitorPrices []float64) Reaction {
	if len(competitorPrices) == 0 {
		return ReactionNone
	}
	sum := 0.0
	for _, p := range competitorPrices {
		sum += p
	}
	avg := sum / float64(len(competitorPrices))

	switch {
	case yourPrice < avg*0.9:
		if rng.Float64() < 0.6 {
			return ReactionPriceCut
		}
	case yourPrice > avg*1.1:
		if rng.Float64() < 0.3 {
			return ReactionPromote
		}
	}
	return ReactionNone
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
