package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"market-intel/internal/analysis"
	"market-intel/internal/config"
	"market-intel/internal/simulation"
)

type scenarioFlags struct {
	seed   uint64
	outCSV string
}

func (f *scenarioFlags) register(cmd *cobra.Command, csv bool) {
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Random seed (default: scenario seed, else random)")
	if csv {
		cmd.Flags().StringVar(&f.outCSV, "out", "", "Optional CSV output path")
	}
}

func (f *scenarioFlags) engine(s config.Scenario, log zerolog.Logger) *simulation.Engine {
	return simulation.NewSeeded(f.engineSeed(s)).WithLogger(log)
}

var errNoScenario = errors.New("config has no scenario section for this command; pass --config with a scenario")

func priceWarCmd(g *globalFlags) *cobra.Command {
	f := &scenarioFlags{}
	var strategyName string
	cmd := &cobra.Command{
		Use:   "pricewar",
		Short: "Simulate a price war week by week",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := g.setup()
			if err != nil {
				return err
			}
			if cfg.Scenario.PriceWar == nil {
				return errNoScenario
			}
			params := *cfg.Scenario.PriceWar
			if strategyName != "" {
				params.Strategy = strategyName
			}

			res, err := f.engine(cfg.Scenario, log).SimulatePriceWar(params)
			if err != nil {
				return err
			}

			fmt.Printf("%-5s %-10s %-8s %-14s\n", "week", "price", "share%", "profit")
			for _, wk := range res.Weeks {
				fmt.Printf("%-5d %-10.2f %-8.2f %-14.2f\n", wk.Week, wk.YourPrice, wk.MarketShare, wk.Profit)
			}
			s := res.Summary
			fmt.Printf("strategy=%s final_share=%.2f%% total_profit=$%.2f price_reduction=%.1f%%\n",
				res.Strategy, s.FinalMarketShare, s.TotalProfit, s.PriceReduction)

			if f.outCSV != "" {
				if err := writeCSV(f.outCSV, func(w *os.File) error { return simulation.WriteWeeksCSV(w, res.Weeks) }); err != nil {
					return err
				}
				fmt.Printf("Wrote %d rows to %s\n", len(res.Weeks), f.outCSV)
			}
			return nil
		},
	}
	f.register(cmd, true)
	cmd.Flags().StringVar(&strategyName, "strategy", "", "Override the scenario strategy (aggressive, moderate, defensive)")
	return cmd
}

func launchCmd(g *globalFlags) *cobra.Command {
	f := &scenarioFlags{}
	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Evaluate launch prices for a new product",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := g.setup()
			if err != nil {
				return err
			}
			if cfg.Scenario.Launch == nil {
				return errNoScenario
			}

			res, err := f.engine(cfg.Scenario, log).SimulateNewProductLaunch(*cfg.Scenario.Launch)
			if err != nil {
				return err
			}

			fmt.Printf("avg competitor price=%.2f\n", res.AvgCompetitorPrice)
			fmt.Printf("%-10s %-8s %-14s %-8s %-10s %-10s\n", "price", "sales", "profit", "share%", "breakeven", "response")
			for _, s := range res.Scenarios {
				breakEven := "never"
				if s.BreakEvenDays != nil {
					breakEven = fmt.Sprintf("%dd", *s.BreakEvenDays)
				}
				fmt.Printf("%-10.2f %-8d %-14.2f %-8.2f %-10s %-10s\n",
					s.Price, s.EstimatedSales, s.Profit, s.MarketShare, breakEven, s.CompetitorResponse)
			}
			fmt.Printf("recommended price=%.2f expected_profit=$%.2f\n",
				res.Recommendation.BestPrice, res.Recommendation.ExpectedProfit)

			if f.outCSV != "" {
				return writeCSV(f.outCSV, func(w *os.File) error { return simulation.WriteLaunchCSV(w, res.Scenarios) })
			}
			return nil
		},
	}
	f.register(cmd, true)
	return cmd
}

func promotionCmd(g *globalFlags) *cobra.Command {
	f := &scenarioFlags{}
	cmd := &cobra.Command{
		Use:   "promotion",
		Short: "Project daily sales through a discount campaign",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := g.setup()
			if err != nil {
				return err
			}
			if cfg.Scenario.Promotion == nil {
				return errNoScenario
			}

			res, err := f.engine(cfg.Scenario, log).SimulatePromotion(*cfg.Scenario.Promotion)
			if err != nil {
				return err
			}

			fmt.Printf("%-4s %-10s %-8s %-12s %-6s\n", "day", "price", "sales", "revenue", "new")
			for _, d := range res.DailyResults {
				fmt.Printf("%-4d %-10.2f %-8d %-12.2f %-6d\n", d.Day, d.DiscountedPrice, d.EstimatedSales, d.Revenue, d.NewCustomers)
			}
			s := res.Summary
			fmt.Printf("revenue=$%.2f (%+.1f%%) profit=$%.2f (%+.1f%%) new_customers=%d\n",
				s.TotalRevenue, s.RevenueChange, s.TotalProfit, s.ProfitChange, s.TotalNewCustomers)

			if f.outCSV != "" {
				return writeCSV(f.outCSV, func(w *os.File) error { return simulation.WriteDaysCSV(w, res.DailyResults) })
			}
			return nil
		},
	}
	f.register(cmd, true)
	return cmd
}

func rankCmd(g *globalFlags) *cobra.Command {
	f := &scenarioFlags{}
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank pricing strategies on the configured price war",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := g.setup()
			if err != nil {
				return err
			}
			if cfg.Scenario.PriceWar == nil {
				return errNoScenario
			}

			// One seed for every profile so they face the same rivals.
			seed := f.engineSeed(cfg.Scenario)
			ranked, err := analysis.RankStrategies(func() *simulation.Engine {
				return simulation.NewSeeded(seed).WithLogger(log)
			}, *cfg.Scenario.PriceWar)
			if err != nil {
				return err
			}
			printRanking(os.Stdout, ranked)
			return nil
		},
	}
	f.register(cmd, false)
	return cmd
}

// engineSeed picks the flag seed, then the scenario seed, then a random one.
func (f *scenarioFlags) engineSeed(s config.Scenario) uint64 {
	switch {
	case f.seed != 0:
		return f.seed
	case s.Seed != 0:
		return s.Seed
	default:
		return rand.Uint64()
	}
}

func printRanking(w io.Writer, ranked []analysis.RankedStrategy) {
	fmt.Fprintf(w, "%-4s %-12s %-14s %-8s %-10s\n", "rank", "strategy", "profit", "share%", "final")
	for _, r := range ranked {
		fmt.Fprintf(w, "%-4d %-12s %-14.2f %-8.2f %-10.2f\n",
			r.Rank, r.Strategy, r.Summary.TotalProfit, r.Summary.FinalMarketShare, r.Summary.FinalPrice)
	}
}
