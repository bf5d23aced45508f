package simulation

import (
	"errors"

	"market-intel/internal/competitor"
	"market-intel/internal/demand"
	"market-intel/internal/model"
	"market-intel/internal/strategy"
)

const (
	// Unit cost is a fixed share of price in a price war.
	priceWarUnitCostFactor = 0.6
	priceWarMarketSize     = 10000.0
)

type PriceWarParams struct {
	BasePrice   float64            `json:"basePrice" yaml:"base_price" validate:"gt=0"`
	Competitors []model.Competitor `json:"competitors" yaml:"competitors" validate:"min=1,dive"`
	Weeks       int                `json:"duration" yaml:"duration" default:"4" validate:"gte=1"`
	Strategy    string             `json:"strategy" yaml:"strategy" default:"moderate"`
}

// SimulatePriceWar runs a price war with the named strategy profile
// (unknown names fall back to moderate).
func (e *Engine) SimulatePriceWar(p PriceWarParams) (*PriceWarResult, error) {
	if err := prepare(&p); err != nil {
		return nil, err
	}
	return e.RunPriceWar(p, strategy.New(p.Strategy))
}

// RunPriceWar executes a price war week by week with your prices set by
// strat. The caller's competitors are copied; their prices are not touched.
func (e *Engine) RunPriceWar(p PriceWarParams, strat strategy.Strategy) (*PriceWarResult, error) {
	if strat == nil {
		return nil, errors.New("strategy is nil")
	}
	if e.rng == nil {
		return nil, errNilRand
	}
	if err := prepare(&p); err != nil {
		return nil, err
	}

	rivals := model.CloneCompetitors(p.Competitors)
	ownPrice := p.BasePrice
	marketShare := 100 / float64(len(rivals)+1)

	weeks := make([]WeekResult, 0, p.Weeks)
	totalProfit := 0.0

	for week := 1; week <= p.Weeks; week++ {
		d := strat.Decide(strategy.Context{
			Week:         week,
			BasePrice:    p.BasePrice,
			CurrentPrice: ownPrice,
		})
		ownPrice = d.Price

		prices := make([]CompetitorPrice, len(rivals))
		sum := 0.0
		for i := range rivals {
			resp := competitor.PriceWarResponse(e.rng, rivals[i].CurrentPrice, rivals[i].Aggression, d.ChangeRate)
			rivals[i].CurrentPrice = resp.NewPrice
			prices[i] = CompetitorPrice{Name: rivals[i].Name, Price: resp.NewPrice}
			sum += resp.NewPrice
		}
		avgCompetitorPrice := sum / float64(len(rivals))

		marketShare = demand.ShareUpdate(ownPrice, avgCompetitorPrice, marketShare)
		profit := weeklyProfit(ownPrice, marketShare)
		totalProfit += profit

		weeks = append(weeks, WeekResult{
			Week:        week,
			YourPrice:   ownPrice,
			Competitors: prices,
			MarketShare: marketShare,
			Profit:      profit,
		})
	}

	last := weeks[len(weeks)-1]
	e.log.Debug().
		Str("strategy", strat.Name()).
		Int("weeks", p.Weeks).
		Float64("final_share", last.MarketShare).
		Float64("total_profit", totalProfit).
		Msg("price war simulated")

	return &PriceWarResult{
		Scenario: model.ScenarioPriceWar,
		Strategy: strat.Name(),
		Weeks:    weeks,
		Summary: PriceWarSummary{
			FinalMarketShare: last.MarketShare,
			TotalProfit:      totalProfit,
			PriceReduction:   (p.BasePrice - ownPrice) / p.BasePrice * 100,
			FinalPrice:       ownPrice,
		},
	}, nil
}

func weeklyProfit(price, marketShare float64) float64 {
	unitCost := price * priceWarUnitCostFactor
	unitsSold := marketShare / 100 * priceWarMarketSize
	return (price - unitCost) * unitsSold
}
