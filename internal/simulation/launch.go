package simulation

import (
	"math"

	"market-intel/internal/competitor"
	"market-intel/internal/demand"
	"market-intel/internal/model"
)

const (
	// Each competitor takes 10% off your addressable sales.
	launchCompetitionPenalty = 0.1
	// Fixed launch costs as a share of market size.
	launchFixedCostFactor = 0.2
	daysPerMonth          = 30
)

type LaunchParams struct {
	ProductCost  float64                  `json:"productCost" yaml:"product_cost" validate:"gt=0"`
	Competitors  []model.LaunchCompetitor `json:"competitors" yaml:"competitors" validate:"dive"`
	PriceOptions []float64                `json:"priceOptions" yaml:"price_options" validate:"min=1,dive,gte=0"`
	MarketSize   float64                  `json:"marketSize" yaml:"market_size" default:"10000" validate:"gt=0"`
}

// SimulateNewProductLaunch evaluates every candidate price against the
// average price of competitors' similar products and recommends the most
// profitable one. On equal profit the earlier option wins.
func (e *Engine) SimulateNewProductLaunch(p LaunchParams) (*LaunchResult, error) {
	if e.rng == nil {
		return nil, errNilRand
	}
	if err := prepare(&p); err != nil {
		return nil, err
	}

	competitorPrices := model.SimilarPrices(p.Competitors)
	if len(competitorPrices) == 0 {
		return nil, &model.InsufficientDataError{Method: "new product launch (no competitor product prices)"}
	}
	avgCompetitorPrice := mean(competitorPrices)
	if avgCompetitorPrice <= 0 {
		return nil, &model.InsufficientDataError{Method: "new product launch (competitor prices average to zero)"}
	}

	penalty := math.Max(0, 1-float64(len(p.Competitors))*launchCompetitionPenalty)
	fixedCosts := p.MarketSize * launchFixedCostFactor

	scenarios := make([]LaunchScenario, 0, len(p.PriceOptions))
	for _, price := range p.PriceOptions {
		attractiveness := demand.PriceAttractiveness(price, avgCompetitorPrice)
		sales := roundHalfUp(p.MarketSize * attractiveness * penalty)
		profit := (price - p.ProductCost) * float64(sales)

		scenarios = append(scenarios, LaunchScenario{
			Price:              price,
			Attractiveness:     attractiveness,
			EstimatedSales:     sales,
			Revenue:            price * float64(sales),
			Profit:             profit,
			MarketShare:        float64(sales) / p.MarketSize * 100,
			BreakEvenDays:      breakEvenDays(fixedCosts, profit),
			CompetitorResponse: competitor.NewProductResponse(e.rng, price, competitorPrices),
		})
	}

	best := mostProfitable(scenarios)

	e.log.Debug().
		Int("options", len(scenarios)).
		Float64("avg_competitor_price", avgCompetitorPrice).
		Float64("best_price", best.Price).
		Msg("launch simulated")

	return &LaunchResult{
		Scenario:           model.ScenarioNewProduct,
		AvgCompetitorPrice: avgCompetitorPrice,
		Scenarios:          scenarios,
		Recommendation: Recommendation{
			BestPrice:           best.Price,
			ExpectedProfit:      best.Profit,
			ExpectedMarketShare: best.MarketShare,
		},
	}, nil
}

// mostProfitable keeps the first maximum, so ties go to the earlier option.
func mostProfitable(scenarios []LaunchScenario) LaunchScenario {
	best := scenarios[0]
	for _, s := range scenarios[1:] {
		if s.Profit > best.Profit {
			best = s
		}
	}
	return best
}

// breakEvenDays is nil when the launch never pays back its fixed costs.
func breakEvenDays(fixedCosts, profit float64) *int {
	dailyProfit := profit / daysPerMonth
	if dailyProfit <= 0 {
		return nil
	}
	days := int(math.Ceil(fixedCosts / dailyProfit))
	return &days
}
