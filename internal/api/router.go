// Package api wires the HTTP handlers into a gin router.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"market-intel/internal/api/handlers"
	"market-intel/internal/api/middleware"
	"market-intel/internal/metrics"
	"market-intel/internal/store"
)

type Options struct {
	Log   zerolog.Logger
	Store store.Store

	// Metrics and Gatherer are optional; /metrics is served when
	// Gatherer is set.
	Metrics  *metrics.Recorder
	Gatherer prometheus.Gatherer

	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int

	// Seed fixes simulation randomness; 0 draws per request.
	Seed uint64
}

func NewRouter(opts Options) *gin.Engine {
	router := gin.New()

	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Logger(opts.Log, opts.Metrics))
	if len(opts.CORSOrigins) > 0 {
		router.Use(middleware.CORS(opts.CORSOrigins))
	}

	forecastHandler := handlers.NewForecastHandler(opts.Store, opts.Metrics, opts.Log)
	simulationHandler := handlers.NewSimulationHandler(opts.Store, opts.Metrics, opts.Log, opts.Seed)
	strategyHandler := handlers.NewStrategyHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})
	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	api := router.Group("/api/v1")
	if opts.RateLimitRPS > 0 {
		api.Use(middleware.RateLimit(middleware.NewClientLimiter(opts.RateLimitRPS, opts.RateLimitBurst)))
	}
	{
		api.POST("/forecasts", forecastHandler.Forecast)
		api.GET("/forecasts/methods", forecastHandler.Methods)
		api.POST("/forecasts/accuracy", forecastHandler.Accuracy)

		api.POST("/simulations/price-war", simulationHandler.PriceWar)
		api.POST("/simulations/price-war/compare", simulationHandler.Compare)
		api.POST("/simulations/new-product", simulationHandler.Launch)
		api.POST("/simulations/promotion", simulationHandler.Promotion)
		api.GET("/simulations/:id", simulationHandler.Get)

		api.GET("/strategies", strategyHandler.ListStrategies)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Not found",
			},
		})
	})

	return router
}
