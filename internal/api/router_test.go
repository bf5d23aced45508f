package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market-intel/internal/metrics"
	"market-intel/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	st := store.NewMemory(time.Hour)
	t.Cleanup(func() { _ = st.Close() })
	reg := prometheus.NewRegistry()
	return NewRouter(Options{
		Log:         zerolog.Nop(),
		Store:       st,
		Metrics:     metrics.NewRecorder(reg),
		Gatherer:    reg,
		CORSOrigins: []string{"*"},
		Seed:        42,
	})
}

func do(t *testing.T, r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "" && bytes.HasPrefix(w.Body.Bytes(), []byte("{")) {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func errorCode(t *testing.T, body map[string]any) string {
	t.Helper()
	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok, "error object in %v", body)
	return errObj["code"].(string)
}

func TestHealth(t *testing.T) {
	w, body := do(t, newTestRouter(t), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "UP", body["status"])
}

func TestForecastEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w, body := do(t, r, http.MethodPost, "/api/v1/forecasts", map[string]any{
		"series": []any{10, 20, 30, "n/a"},
		"steps":  3,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "moving_average", body["method"])

	forecast := body["forecast"].([]any)
	require.Len(t, forecast, 3)
	assert.InDelta(t, 20, forecast[0].(float64), 1e-9)
	assert.InDelta(t, 70.0/3, forecast[1].(float64), 1e-9)
	assert.InDelta(t, (50+70.0/3)/3, forecast[2].(float64), 1e-9)
}

func TestForecastErrors(t *testing.T) {
	r := newTestRouter(t)
	tests := []struct {
		name   string
		body   any
		status int
		code   string
	}{
		{name: "malformed", body: "{", status: http.StatusBadRequest, code: "INVALID_REQUEST"},
		{name: "empty series", body: map[string]any{"series": []any{}}, status: http.StatusBadRequest, code: "INVALID_INPUT"},
		{name: "unknown method", body: map[string]any{"series": []any{1, 2}, "method": "arima"}, status: http.StatusBadRequest, code: "UNSUPPORTED_METHOD"},
		{name: "short series", body: map[string]any{"series": []any{1}, "method": "linear_regression"}, status: http.StatusBadRequest, code: "INSUFFICIENT_DATA"},
		{name: "bad alpha", body: map[string]any{"series": []any{1}, "method": "exponential_smoothing", "alpha": 2}, status: http.StatusBadRequest, code: "INVALID_INPUT"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, body := do(t, r, http.MethodPost, "/api/v1/forecasts", tc.body)
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tc.code, errorCode(t, body))
		})
	}
}

func TestForecastMethods(t *testing.T) {
	w, body := do(t, newTestRouter(t), http.MethodGet, "/api/v1/forecasts/methods", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["methods"], 4)
}

func TestAccuracyEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w, body := do(t, r, http.MethodPost, "/api/v1/forecasts/accuracy", map[string]any{
		"actual":    []float64{10, 20},
		"predicted": []float64{10, 20},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 100.0, body["accuracy"])

	w, body = do(t, r, http.MethodPost, "/api/v1/forecasts/accuracy", map[string]any{
		"actual":    []float64{10, 20},
		"predicted": []float64{10},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ARITY_MISMATCH", errorCode(t, body))
}

func priceWarBody() map[string]any {
	return map[string]any{
		"basePrice": 100,
		"competitors": []map[string]any{
			{"name": "A", "currentPrice": 95, "aggression": 0.7},
		},
		"duration": 3,
		"strategy": "moderate",
	}
}

func TestPriceWarEndpointStoresResult(t *testing.T) {
	r := newTestRouter(t)

	w, body := do(t, r, http.MethodPost, "/api/v1/simulations/price-war", priceWarBody())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "price-war", body["scenario"])
	weeks := body["weeks"].([]any)
	require.Len(t, weeks, 3)
	assert.InDelta(t, 90, weeks[0].(map[string]any)["yourPrice"].(float64), 1e-9)

	id := body["id"].(string)
	require.NotEmpty(t, id)

	w, stored := do(t, r, http.MethodGet, "/api/v1/simulations/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, stored["id"])
	assert.Equal(t, "price-war", stored["kind"])
	result := stored["result"].(map[string]any)
	assert.Equal(t, body["summary"], result["summary"])
}

func TestPriceWarSeedIsReproducible(t *testing.T) {
	r := newTestRouter(t)
	req := priceWarBody()
	req["seed"] = 7

	_, first := do(t, r, http.MethodPost, "/api/v1/simulations/price-war", req)
	_, second := do(t, r, http.MethodPost, "/api/v1/simulations/price-war", req)
	assert.Equal(t, first["weeks"], second["weeks"])
	assert.NotEqual(t, first["id"], second["id"])
}

func TestPriceWarValidation(t *testing.T) {
	r := newTestRouter(t)

	req := priceWarBody()
	req["competitors"] = []any{}
	w, body := do(t, r, http.MethodPost, "/api/v1/simulations/price-war", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_INPUT", errorCode(t, body))

	req = priceWarBody()
	req["basePrice"] = -5
	w, _ = do(t, r, http.MethodPost, "/api/v1/simulations/price-war", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompareEndpoint(t *testing.T) {
	w, body := do(t, newTestRouter(t), http.MethodPost, "/api/v1/simulations/price-war/compare", priceWarBody())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	rankings := body["rankings"].([]any)
	require.Len(t, rankings, 3)
	prev := rankings[0].(map[string]any)["summary"].(map[string]any)["totalProfit"].(float64)
	for _, raw := range rankings[1:] {
		profit := raw.(map[string]any)["summary"].(map[string]any)["totalProfit"].(float64)
		assert.LessOrEqual(t, profit, prev)
		prev = profit
	}
}

func TestLaunchEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w, body := do(t, r, http.MethodPost, "/api/v1/simulations/new-product", map[string]any{
		"productCost": 50,
		"competitors": []map[string]any{
			{"name": "A", "similarProducts": []map[string]any{{"name": "a1", "price": 100}}},
		},
		"priceOptions": []float64{60, 40},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "new-product", body["scenario"])

	scenarios := body["scenarios"].([]any)
	require.Len(t, scenarios, 2)
	assert.Nil(t, scenarios[1].(map[string]any)["breakEvenDays"])
	assert.Equal(t, 60.0, body["recommendation"].(map[string]any)["bestPrice"])

	w, body = do(t, r, http.MethodPost, "/api/v1/simulations/new-product", map[string]any{
		"productCost":  50,
		"competitors":  []any{},
		"priceOptions": []float64{60},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INSUFFICIENT_DATA", errorCode(t, body))
}

func TestPromotionEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w, body := do(t, r, http.MethodPost, "/api/v1/simulations/promotion", map[string]any{
		"basePrice":          100,
		"promotionDiscount":  20,
		"duration":           1,
		"historicalSales":    []float64{100},
		"competitorResponse": "none",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	day := body["dailyResults"].([]any)[0].(map[string]any)
	assert.Equal(t, 140.0, day["estimatedSales"])
	assert.Equal(t, 8.0, day["newCustomers"])

	w, body = do(t, r, http.MethodPost, "/api/v1/simulations/promotion", map[string]any{
		"basePrice":          100,
		"promotionDiscount":  20,
		"competitorResponse": "retaliate",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_INPUT", errorCode(t, body))

	w, _ = do(t, r, http.MethodPost, "/api/v1/simulations/promotion", map[string]any{
		"basePrice":         100,
		"promotionDiscount": 101,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMissingResult(t *testing.T) {
	w, body := do(t, newTestRouter(t), http.MethodGet, "/api/v1/simulations/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, body))
}

func TestStrategiesEndpoint(t *testing.T) {
	w, body := do(t, newTestRouter(t), http.MethodGet, "/api/v1/strategies", nil)
	require.Equal(t, http.StatusOK, w.Code)
	strategies := body["strategies"].([]any)
	require.Len(t, strategies, 3)
	first := strategies[0].(map[string]any)
	assert.Equal(t, "aggressive", first["name"])
	assert.Equal(t, 0.5, first["minPriceFactor"])
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t)
	do(t, r, http.MethodPost, "/api/v1/simulations/price-war", priceWarBody())

	w, _ := do(t, r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `market_intel_engine_runs_total{kind="price-war",outcome="ok"} 1`)
	assert.Contains(t, w.Body.String(), `route="/api/v1/simulations/price-war"`)
}

func TestNoRoute(t *testing.T) {
	w, body := do(t, newTestRouter(t), http.MethodGet, "/api/v1/nothing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
}
