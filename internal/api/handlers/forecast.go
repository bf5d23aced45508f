package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"market-intel/internal/api/models"
	"market-intel/internal/forecast"
	"market-intel/internal/metrics"
	"market-intel/internal/store"
)

// ForecastHandler handles forecasting requests
type ForecastHandler struct {
	engine *forecast.Engine
	store  store.Store
	rec    *metrics.Recorder
	log    zerolog.Logger
}

func NewForecastHandler(st store.Store, rec *metrics.Recorder, log zerolog.Logger) *ForecastHandler {
	return &ForecastHandler{
		engine: forecast.New().WithLogger(log),
		store:  st,
		rec:    rec,
		log:    log,
	}
}

// Forecast handles POST /api/v1/forecasts
func (h *ForecastHandler) Forecast(c *gin.Context) {
	var req models.ForecastRequest
	if !bindJSON(c, &req) {
		return
	}

	start := time.Now()
	res, err := h.engine.ForecastRaw(req.Series, req.Options())
	observe(h.rec, "forecast", start, err)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ForecastResponse{
		Success: true,
		ID:      save(c, h.store, h.log, "forecast", res),
		Result:  res,
	})
}

// Methods handles GET /api/v1/forecasts/methods
func (h *ForecastHandler) Methods(c *gin.Context) {
	c.JSON(http.StatusOK, models.MethodsResponse{Success: true, Methods: forecast.Methods()})
}

// Accuracy handles POST /api/v1/forecasts/accuracy
func (h *ForecastHandler) Accuracy(c *gin.Context) {
	var req models.AccuracyRequest
	if !bindJSON(c, &req) {
		return
	}

	start := time.Now()
	report, err := forecast.Evaluate(req.Actual, req.Predicted)
	observe(h.rec, "accuracy", start, err)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.AccuracyResponse{Success: true, AccuracyReport: report})
}
