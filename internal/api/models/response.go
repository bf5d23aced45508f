package models

import (
	"market-intel/internal/analysis"
	"market-intel/internal/forecast"
	"market-intel/internal/simulation"
	"market-intel/internal/store"
	"market-intel/internal/strategy"
)

// ForecastResponse represents the response from a forecast run
type ForecastResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	*forecast.Result
}

type MethodsResponse struct {
	Success bool                  `json:"success"`
	Methods []forecast.MethodInfo `json:"methods"`
}

type AccuracyResponse struct {
	Success bool `json:"success"`
	*forecast.AccuracyReport
}

type PriceWarResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	*simulation.PriceWarResult
}

// CompareResponse ranks every strategy profile on one price war.
type CompareResponse struct {
	Success  bool                      `json:"success"`
	ID       string                    `json:"id"`
	Rankings []analysis.RankedStrategy `json:"rankings"`
}

type LaunchResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	*simulation.LaunchResult
}

type PromotionResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	*simulation.PromotionResult
}

// StoredResultResponse returns a result saved by an earlier run.
type StoredResultResponse struct {
	Success bool `json:"success"`
	*store.Record
}

// StrategyInfo represents information about a strategy
type StrategyInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	strategy.Profile
}

type StrategiesResponse struct {
	Success    bool           `json:"success"`
	Strategies []StrategyInfo `json:"strategies"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
