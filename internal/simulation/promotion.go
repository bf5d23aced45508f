package simulation

import (
	"math"

	"market-intel/internal/competitor"
	"market-intel/internal/model"
)

const (
	defaultBaselineSales = 100.0
	// Share of incremental sales assumed to be new customers.
	newCustomerShare = 0.2
	// Promotions are costed at a fixed 30% margin.
	promotionMargin = 0.7
)

type PromotionParams struct {
	BasePrice          float64            `json:"basePrice" yaml:"base_price" validate:"gt=0"`
	DiscountPercent    float64            `json:"promotionDiscount" yaml:"discount_percent" validate:"gte=0,lte=100"`
	Days               int                `json:"duration" yaml:"duration" default:"7" validate:"gte=1"`
	HistoricalSales    []float64          `json:"historicalSales" yaml:"historical_sales"`
	CompetitorResponse model.ResponseMode `json:"competitorResponse" yaml:"competitor_response" default:"none"`
}

// SimulatePromotion projects daily sales through a discount campaign.
// Demand peaks mid-promotion and scales with discount depth; competitor
// reaction erodes it day by day. Unknown response modes act as none.
func (e *Engine) SimulatePromotion(p PromotionParams) (*PromotionResult, error) {
	if err := prepare(&p); err != nil {
		return nil, err
	}

	discountedPrice := p.BasePrice * (1 - p.DiscountPercent/100)
	baselineSales := defaultBaselineSales
	if len(p.HistoricalSales) > 0 {
		baselineSales = mean(p.HistoricalSales)
	}

	days := make([]DayResult, 0, p.Days)
	var summary PromotionSummary
	for day := 1; day <= p.Days; day++ {
		multiplier := demandMultiplier(day, p.Days, p.DiscountPercent)
		impact := competitor.PromotionImpact(p.CompetitorResponse, day)

		sales := roundHalfUp(baselineSales * multiplier * (1 - impact))
		newCustomers := roundHalfUp((float64(sales) - baselineSales) * newCustomerShare)
		if newCustomers < 0 {
			newCustomers = 0
		}
		revenue := discountedPrice * float64(sales)
		profit := discountedPrice * promotionMargin * float64(sales)

		days = append(days, DayResult{
			Day:              day,
			DiscountedPrice:  discountedPrice,
			DemandMultiplier: multiplier,
			CompetitorImpact: impact,
			EstimatedSales:   sales,
			Revenue:          revenue,
			Profit:           profit,
			NewCustomers:     newCustomers,
		})

		summary.TotalRevenue += revenue
		summary.TotalProfit += profit
		summary.TotalNewCustomers += newCustomers
	}

	summary.BaselineSales = baselineSales
	summary.BaselineRevenue = p.BasePrice * baselineSales * float64(p.Days)
	summary.BaselineProfit = p.BasePrice * promotionMargin * baselineSales * float64(p.Days)
	summary.RevenueChange = percentChange(summary.TotalRevenue, summary.BaselineRevenue)
	summary.ProfitChange = percentChange(summary.TotalProfit, summary.BaselineProfit)

	e.log.Debug().
		Int("days", p.Days).
		Float64("discount", p.DiscountPercent).
		Str("competitor_response", string(p.CompetitorResponse)).
		Float64("revenue_change", summary.RevenueChange).
		Msg("promotion simulated")

	return &PromotionResult{
		Scenario:     model.ScenarioPromotion,
		DailyResults: days,
		Summary:      summary,
	}, nil
}

// demandMultiplier peaks mid-promotion (sine over the run) and grows with
// the discount: a 20% discount adds 40% demand.
func demandMultiplier(day, duration int, discountPercent float64) float64 {
	progress := float64(day) / float64(duration)
	peakFactor := 1 + math.Sin(progress*math.Pi)*0.5
	discountFactor := 1 + discountPercent/100*2
	return peakFactor * discountFactor
}

// percentChange reports 0 against a zero baseline.
func percentChange(value, baseline float64) float64 {
	if baseline == 0 {
		return 0
	}
	return (value - baseline) / baseline * 100
}
