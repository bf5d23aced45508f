// Package forecast produces short-horizon forecasts from a scalar history
// and scores forecasts against actuals.
package forecast

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/rs/zerolog"

	"market-intel/internal/model"
)

// Options selects the method and its parameters. Zero-valued fields take
// the defaults from the struct tags.
type Options struct {
	Method       Method  `json:"method" yaml:"method" default:"moving_average"`
	Steps        int     `json:"steps" yaml:"steps" default:"7" validate:"gte=1"`
	WindowSize   int     `json:"windowSize" yaml:"window_size" default:"3" validate:"gte=1"`
	Alpha        float64 `json:"alpha" yaml:"alpha" default:"0.3" validate:"gt=0,lte=1"`
	SeasonLength int     `json:"seasonLength" yaml:"season_length" default:"7" validate:"gte=1"`
}

// Result is an immutable forecast; len(Forecast) == Steps.
type Result struct {
	Method     Method    `json:"method"`
	Steps      int       `json:"steps"`
	Forecast   []float64 `json:"forecast"`
	LastValue  float64   `json:"lastValue"`
	DataPoints int       `json:"dataPoints"`
}

type Engine struct {
	log zerolog.Logger
}

func New() *Engine { return &Engine{log: zerolog.Nop()} }

// WithLogger returns a copy of the engine that logs through l.
func (e *Engine) WithLogger(l zerolog.Logger) *Engine {
	return &Engine{log: l}
}

// ForecastRaw coerces raw observations to numbers, dropping non-numeric
// entries, and forecasts the result.
func (e *Engine) ForecastRaw(raw []any, opts Options) (*Result, error) {
	if len(raw) == 0 {
		return nil, model.Invalid("series", "historical data must be a non-empty sequence")
	}
	return e.forecast(model.CoerceSeries(raw), opts)
}

// Forecast runs the selected method over series.
func (e *Engine) Forecast(series []float64, opts Options) (*Result, error) {
	if len(series) == 0 {
		return nil, model.Invalid("series", "historical data must be a non-empty sequence")
	}
	return e.forecast(series, opts)
}

func (e *Engine) forecast(data []float64, opts Options) (*Result, error) {
	if err := defaults.Set(&opts); err != nil {
		return nil, fmt.Errorf("apply forecast defaults: %w", err)
	}
	if !opts.Method.Valid() {
		return nil, &model.UnsupportedMethodError{Method: string(opts.Method)}
	}
	if err := model.Validate(opts); err != nil {
		return nil, err
	}

	var run func([]float64, Options) ([]float64, error)
	switch opts.Method {
	case MovingAverage:
		run = movingAverage
	case LinearRegression:
		run = linearRegression
	case ExponentialSmoothing:
		run = exponentialSmoothing
	case SeasonalNaive:
		run = seasonalNaive
	}

	points, err := run(data, opts)
	if err != nil {
		return nil, err
	}

	e.log.Debug().
		Str("method", string(opts.Method)).
		Int("steps", opts.Steps).
		Int("data_points", len(data)).
		Msg("forecast computed")

	return &Result{
		Method:     opts.Method,
		Steps:      opts.Steps,
		Forecast:   points,
		LastValue:  data[len(data)-1],
		DataPoints: len(data),
	}, nil
}
