package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market-intel/internal/forecast"
	"market-intel/internal/model"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, "development", c.Server.Env)
	assert.Equal(t, []string{"*"}, c.Server.CORSOrigins)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, "memory", c.Store.Backend)
	assert.Equal(t, 24*time.Hour, c.Store.TTL)
	assert.Equal(t, forecast.MovingAverage, c.Forecast.Method)
	assert.Equal(t, 7, c.Forecast.Steps)
	assert.Equal(t, "moderate", c.Simulation.Strategy)
	assert.Equal(t, 10000.0, c.Simulation.MarketSize)
}

func TestLoadMergesScenarioFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "scenarios/war.yaml", `
scenario:
  type: price-war
  seed: 11
  price_war:
    base_price: 100
    duration: 6
    competitors:
      - name: A
        current_price: 95
        aggression: 0.7
  promotion:
    base_price: 50
    discount_percent: 20
`)
	path := writeFile(t, dir, "config.yaml", `
scenario_file: scenarios/war.yaml
scenario:
  promotion:
    base_price: 80
    discount_percent: 10
server:
  port: 9090
simulation:
  strategy: aggressive
forecast:
  method: exponential_smoothing
  alpha: 0.5
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, c.Server.Port)
	assert.Equal(t, forecast.ExponentialSmoothing, c.Forecast.Method)
	assert.Equal(t, 0.5, c.Forecast.Alpha)

	s := c.Scenario
	assert.Equal(t, model.ScenarioPriceWar, s.Type)
	assert.Equal(t, uint64(11), s.Seed)
	require.NotNil(t, s.PriceWar)
	assert.Equal(t, 100.0, s.PriceWar.BasePrice)
	assert.Equal(t, 6, s.PriceWar.Weeks)
	assert.Equal(t, "aggressive", s.PriceWar.Strategy, "inherited from simulation section")
	require.Len(t, s.PriceWar.Competitors, 1)
	assert.Equal(t, 0.7, s.PriceWar.Competitors[0].Aggression)

	require.NotNil(t, s.Promotion)
	assert.Equal(t, 80.0, s.Promotion.BasePrice, "inline section overrides the file")
	assert.Equal(t, 7, s.Promotion.Days)
	assert.Equal(t, model.ResponseNone, s.Promotion.CompetitorResponse)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("API_PORT", "7000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "cache:6380")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7000, c.Server.Port)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "redis", c.Store.Backend)
	assert.Equal(t, "cache:6380", c.Store.RedisAddr)
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		body string
	}{
		{name: "bad backend", body: "store:\n  backend: sqlite\n"},
		{name: "bad port", body: "server:\n  port: 70000\n"},
		{name: "bad alpha", body: "forecast:\n  alpha: 1.5\n"},
		{name: "bad method", body: "forecast:\n  method: arima\n"},
		{name: "scenario without section", body: "scenario:\n  type: promotion\n"},
		{name: "unknown scenario", body: "scenario:\n  type: auction\n"},
		{name: "invalid price war", body: "scenario:\n  type: price-war\n  price_war:\n    base_price: 100\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, dir, tc.name+".yaml", tc.body)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingScenarioFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "scenario_file: nope.yaml\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestMergeScenario(t *testing.T) {
	base := Scenario{Type: model.ScenarioPromotion, Seed: 3}
	out := MergeScenario(base, Scenario{Seed: 9})
	assert.Equal(t, model.ScenarioPromotion, out.Type)
	assert.Equal(t, uint64(9), out.Seed)
}
