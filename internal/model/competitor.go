package model

// Competitor is a rival in a price war. CurrentPrice is running state:
// the simulator updates it every week of a run.
type Competitor struct {
	Name         string  `json:"name" yaml:"name"`
	CurrentPrice float64 `json:"currentPrice" yaml:"current_price" validate:"gte=0"`
	// Aggression is 0 (passive) .. 1 (maximally reactive).
	Aggression float64 `json:"aggression" yaml:"aggression" validate:"gte=0,lte=1"`
}

// CloneCompetitors returns an independent copy, so one run's price updates
// never leak into another run.
func CloneCompetitors(in []Competitor) []Competitor {
	out := make([]Competitor, len(in))
	copy(out, in)
	return out
}

// Product is a competitor product comparable to the one being launched.
type Product struct {
	Name  string  `json:"name" yaml:"name"`
	Price float64 `json:"price" yaml:"price" validate:"gte=0"`
}

// LaunchCompetitor is a rival in a new-product launch scenario.
type LaunchCompetitor struct {
	Name            string    `json:"name" yaml:"name"`
	SimilarProducts []Product `json:"similarProducts" yaml:"similar_products" validate:"dive"`
}

// SimilarPrices flattens all similar-product prices across competitors.
func SimilarPrices(competitors []LaunchCompetitor) []float64 {
	var prices []float64
	for _, c := range competitors {
		for _, p := range c.SimilarProducts {
			prices = append(prices, p.Price)
		}
	}
	return prices
}
