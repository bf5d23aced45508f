package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market-intel/internal/analysis"
	"market-intel/internal/simulation"
)

const scenarioConfig = `
log:
  level: error
scenario:
  type: price-war
  seed: 5
  price_war:
    base_price: 100
    duration: 4
    competitors:
      - name: A
        current_price: 95
        aggression: 0.7
  launch:
    product_cost: 50
    price_options: [80, 100, 120]
    competitors:
      - name: A
        similar_products:
          - name: a1
            price: 100
  promotion:
    base_price: 100
    discount_percent: 20
    duration: 5
`

func run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.Execute()
}

func TestScenarioCommandsWriteCSV(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(scenarioConfig), 0o644))

	for _, name := range []string{"pricewar", "launch", "promotion"} {
		t.Run(name, func(t *testing.T) {
			out := filepath.Join(dir, name+".csv")
			require.NoError(t, run(t, name, "--config", cfgPath, "--out", out))

			raw, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.NotEmpty(t, raw)
		})
	}

	require.NoError(t, run(t, "rank", "--config", cfgPath))
}

func TestScenarioCommandNeedsSection(t *testing.T) {
	err := run(t, "pricewar")
	assert.ErrorIs(t, err, errNoScenario)
}

func TestForecastCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte("day,series\n1,10\n2,12\n3,14\n"), 0o644))

	require.NoError(t, run(t, "forecast", "--data", path, "--method", "linear_regression", "--steps", "2"))
	assert.Error(t, run(t, "forecast", "--data", path, "--method", "arima"))
}

func TestAccuracyCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eval.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"actual": [10, 20], "predicted": [12, 18]}`), 0o644))

	require.NoError(t, run(t, "accuracy", "--actual", path))
}

func TestPrintRanking(t *testing.T) {
	var buf bytes.Buffer
	printRanking(&buf, []analysis.RankedStrategy{
		{Rank: 1, Strategy: "defensive", Summary: simulation.PriceWarSummary{TotalProfit: 1234.5, FinalMarketShare: 40, FinalPrice: 81}},
	})
	assert.Contains(t, buf.String(), "defensive")
	assert.Contains(t, buf.String(), "1234.50")
}
