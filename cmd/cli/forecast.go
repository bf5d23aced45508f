package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"market-intel/internal/analysis"
	"market-intel/internal/data"
	"market-intel/internal/forecast"
)

func forecastCmd(g *globalFlags) *cobra.Command {
	var (
		dataPath string
		key      string
		method   string
		steps    int
		window   int
		alpha    float64
		season   int
	)
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Forecast the next values of a JSON or CSV series",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := g.setup()
			if err != nil {
				return err
			}
			series, err := data.LoadSeries(dataPath, key)
			if err != nil {
				return err
			}

			opts := cfg.Forecast
			flags := cmd.Flags()
			if flags.Changed("method") {
				opts.Method = forecast.Method(method)
			}
			if flags.Changed("steps") {
				opts.Steps = steps
			}
			if flags.Changed("window") {
				opts.WindowSize = window
			}
			if flags.Changed("alpha") {
				opts.Alpha = alpha
			}
			if flags.Changed("season") {
				opts.SeasonLength = season
			}

			res, err := forecast.New().WithLogger(log).Forecast(series, opts)
			if err != nil {
				return err
			}

			stats := analysis.Summarize(series)
			fmt.Printf("points=%d min=%.2f max=%.2f mean=%.2f p95-p05=%.2f\n",
				stats.Count, stats.Min, stats.Max, stats.Mean, stats.SpreadP95P05)
			fmt.Printf("method=%s last=%.2f\n", res.Method, res.LastValue)
			fmt.Printf("%-6s %-12s\n", "step", "forecast")
			for i, v := range res.Forecast {
				fmt.Printf("%-6d %-12.2f\n", i+1, v)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dataPath, "data", "", "Path to a .json or .csv series")
	cmd.Flags().StringVar(&key, "key", "", "JSON key or CSV column holding the series (default \"series\")")
	cmd.Flags().StringVar(&method, "method", string(forecast.MovingAverage), "moving_average, linear_regression, exponential_smoothing or seasonal_naive")
	cmd.Flags().IntVar(&steps, "steps", 7, "Forecast horizon")
	cmd.Flags().IntVar(&window, "window", 3, "Moving-average window")
	cmd.Flags().Float64Var(&alpha, "alpha", 0.3, "Smoothing factor in (0, 1]")
	cmd.Flags().IntVar(&season, "season", 7, "Season length for seasonal_naive")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func accuracyCmd(g *globalFlags) *cobra.Command {
	var (
		actualPath    string
		predictedPath string
		actualKey     string
		predictedKey  string
	)
	cmd := &cobra.Command{
		Use:   "accuracy",
		Short: "Score predicted values against actuals",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := g.setup(); err != nil {
				return err
			}
			if predictedPath == "" {
				predictedPath = actualPath
			}
			actual, err := data.LoadSeries(actualPath, actualKey)
			if err != nil {
				return err
			}
			predicted, err := data.LoadSeries(predictedPath, predictedKey)
			if err != nil {
				return err
			}

			report, err := forecast.Evaluate(actual, predicted)
			if err != nil {
				return err
			}
			fmt.Printf("ME=%.4f MAE=%.4f MSE=%.4f RMSE=%.4f MAPE=%.2f%% accuracy=%.2f%%\n",
				report.MeanError,
				report.MeanAbsoluteError,
				report.MeanSquaredError,
				report.RootMeanSquaredError,
				report.MeanAbsolutePercentageError,
				report.Accuracy,
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&actualPath, "actual", "", "Series file with actual values")
	cmd.Flags().StringVar(&predictedPath, "predicted", "", "Series file with predicted values (default: the actual file)")
	cmd.Flags().StringVar(&actualKey, "actual-key", "actual", "JSON key or CSV column of actual values")
	cmd.Flags().StringVar(&predictedKey, "predicted-key", "predicted", "JSON key or CSV column of predicted values")
	_ = cmd.MarkFlagRequired("actual")
	return cmd
}
