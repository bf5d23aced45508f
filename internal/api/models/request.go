package models

import (
	"market-intel/internal/forecast"
	"market-intel/internal/simulation"
)

// ForecastRequest is the body of POST /api/v1/forecasts. Series entries
// may be numbers or numeric strings; anything else is dropped.
type ForecastRequest struct {
	Series       []any   `json:"series" binding:"required"`
	Method       string  `json:"method,omitempty"`
	Steps        int     `json:"steps,omitempty"`
	WindowSize   int     `json:"windowSize,omitempty"`
	Alpha        float64 `json:"alpha,omitempty"`
	SeasonLength int     `json:"seasonLength,omitempty"`
}

func (r ForecastRequest) Options() forecast.Options {
	return forecast.Options{
		Method:       forecast.Method(r.Method),
		Steps:        r.Steps,
		WindowSize:   r.WindowSize,
		Alpha:        r.Alpha,
		SeasonLength: r.SeasonLength,
	}
}

// AccuracyRequest is the body of POST /api/v1/forecasts/accuracy
type AccuracyRequest struct {
	Actual    []float64 `json:"actual" binding:"required"`
	Predicted []float64 `json:"predicted" binding:"required"`
}

// PriceWarRequest is the body of the price-war and compare endpoints.
// Seed makes the run reproducible.
type PriceWarRequest struct {
	simulation.PriceWarParams
	Seed *uint64 `json:"seed,omitempty"`
}

// LaunchRequest is the body of POST /api/v1/simulations/new-product
type LaunchRequest struct {
	simulation.LaunchParams
	Seed *uint64 `json:"seed,omitempty"`
}

// PromotionRequest is the body of POST /api/v1/simulations/promotion
type PromotionRequest struct {
	simulation.PromotionParams
}
