// Package demand maps price relationships to market response.
package demand

import "math"

const (
	// Elasticity translates relative price difference into share movement.
	Elasticity = 1.5

	MinShare = 5.0
	MaxShare = 95.0

	// DefaultCurveElasticity is the exponent used by EstimateDemand callers
	// that have no better estimate.
	DefaultCurveElasticity = -1.2
)

// ShareUpdate moves currentShare by the relative gap between the average
// competitor price and ownPrice, scaled by Elasticity. Result is in
// [MinShare, MaxShare]. A non-positive average leaves the share unchanged.
func ShareUpdate(ownPrice, avgCompetitorPrice, currentShare float64) float64 {
	if avgCompetitorPrice <= 0 {
		return ClampShare(currentShare)
	}
	shareChange := (avgCompetitorPrice - ownPrice) / avgCompetitorPrice * Elasticity * 10
	return ClampShare(currentShare + shareChange)
}

// PriceAttractiveness is a logistic score in (0, 1): prices below 90% of
// the competitor average tend to 1, pricier ones to 0.
func PriceAttractiveness(price, avgCompetitorPrice float64) float64 {
	ratio := price / avgCompetitorPrice
	return 1 / (1 + math.Exp(3*(ratio-0.9)))
}

// EstimateDemand evaluates a constant-elasticity demand curve
// baseDemand * (price/baseDemand)^elasticity.
func EstimateDemand(price, baseDemand, elasticity float64) float64 {
	if baseDemand <= 0 || price <= 0 {
		return 0
	}
	return baseDemand * math.Pow(price/baseDemand, elasticity)
}

func ClampShare(share float64) float64 {
	return math.Max(MinShare, math.Min(MaxShare, share))
}
