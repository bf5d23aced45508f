// Package analysis compares simulation outcomes and summarizes input series.
package analysis

import (
	"fmt"
	"sort"

	"market-intel/internal/simulation"
	"market-intel/internal/strategy"
)

type RankedStrategy struct {
	Rank        int                        `json:"rank"`
	Strategy    string                     `json:"strategy"`
	Description string                     `json:"description"`
	Summary     simulation.PriceWarSummary `json:"summary"`
}

// RankStrategies runs the same price war once per strategy profile and
// orders the profiles by total profit, best first. newEngine is called once
// per run so every profile sees its own random stream; seeded factories give
// each profile the same stream.
func RankStrategies(newEngine func() *simulation.Engine, p simulation.PriceWarParams) ([]RankedStrategy, error) {
	names := strategy.Names()
	out := make([]RankedStrategy, 0, len(names))
	for _, name := range names {
		run := p
		run.Strategy = name
		res, err := newEngine().SimulatePriceWar(run)
		if err != nil {
			return nil, fmt.Errorf("simulate %s: %w", name, err)
		}
		out = append(out, RankedStrategy{
			Strategy:    name,
			Description: strategy.Describe(name),
			Summary:     res.Summary,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Summary.TotalProfit > out[j].Summary.TotalProfit
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out, nil
}
