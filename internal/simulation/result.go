package simulation

import (
	"market-intel/internal/competitor"
	"market-intel/internal/model"
)

// CompetitorPrice is one rival's price at the end of a week.
type CompetitorPrice struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// WeekResult is one row of price-war output.
type WeekResult struct {
	Week        int               `json:"week"`
	YourPrice   float64           `json:"yourPrice"`
	Competitors []CompetitorPrice `json:"competitors"`
	MarketShare float64           `json:"marketShare"`
	Profit      float64           `json:"profit"`
}

type PriceWarSummary struct {
	FinalMarketShare float64 `json:"finalMarketShare"`
	TotalProfit      float64 `json:"totalProfit"`
	// PriceReduction is how far your final price fell, in percent of base.
	PriceReduction float64 `json:"priceReduction"`
	FinalPrice     float64 `json:"finalPrice"`
}

type PriceWarResult struct {
	Scenario model.Scenario  `json:"scenario"`
	Strategy string          `json:"strategy"`
	Weeks    []WeekResult    `json:"weeks"`
	Summary  PriceWarSummary `json:"summary"`
}

// LaunchScenario is the outcome of launching at one candidate price.
type LaunchScenario struct {
	Price          float64 `json:"price"`
	Attractiveness float64 `json:"attractiveness"`
	EstimatedSales int     `json:"estimatedSales"`
	Revenue        float64 `json:"revenue"`
	Profit         float64 `json:"profit"`
	MarketShare    float64 `json:"marketShare"`
	// BreakEvenDays is nil when monthly profit is not positive.
	BreakEvenDays      *int                `json:"breakEvenDays"`
	CompetitorResponse competitor.Reaction `json:"competitorResponse"`
}

type Recommendation struct {
	BestPrice           float64 `json:"bestPrice"`
	ExpectedProfit      float64 `json:"expectedProfit"`
	ExpectedMarketShare float64 `json:"expectedMarketShare"`
}

type LaunchResult struct {
	Scenario           model.Scenario   `json:"scenario"`
	AvgCompetitorPrice float64          `json:"avgCompetitorPrice"`
	Scenarios          []LaunchScenario `json:"scenarios"`
	Recommendation     Recommendation   `json:"recommendation"`
}

// DayResult is one row of promotion output.
type DayResult struct {
	Day              int     `json:"day"`
	DiscountedPrice  float64 `json:"discountedPrice"`
	DemandMultiplier float64 `json:"demandMultiplier"`
	CompetitorImpact float64 `json:"competitorImpact"`
	EstimatedSales   int     `json:"estimatedSales"`
	Revenue          float64 `json:"revenue"`
	Profit           float64 `json:"profit"`
	NewCustomers     int     `json:"newCustomers"`
}

type PromotionSummary struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalProfit       float64 `json:"totalProfit"`
	TotalNewCustomers int     `json:"totalNewCustomers"`
	BaselineSales     float64 `json:"baselineSales"`
	BaselineRevenue   float64 `json:"baselineRevenue"`
	BaselineProfit    float64 `json:"baselineProfit"`
	// RevenueChange and ProfitChange are percent versus no promotion.
	RevenueChange float64 `json:"revenueChange"`
	ProfitChange  float64 `json:"profitChange"`
}

type PromotionResult struct {
	Scenario     model.Scenario   `json:"scenario"`
	DailyResults []DayResult      `json:"dailyResults"`
	Summary      PromotionSummary `json:"summary"`
}
