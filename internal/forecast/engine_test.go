package forecast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market-intel/internal/model"
)

func TestForecastMovingAverageExample(t *testing.T) {
	res, err := New().Forecast([]float64{10, 12, 15, 14, 18, 20, 22}, Options{Method: MovingAverage, Steps: 3, WindowSize: 3})
	require.NoError(t, err)

	require.Len(t, res.Forecast, 3)
	// window [18,20,22] -> 20; [20,22,20] -> 20.667; [22,20,20.667] -> 20.889
	assert.InDelta(t, 20, res.Forecast[0], 1e-9)
	assert.InDelta(t, 62.0/3, res.Forecast[1], 1e-9)
	assert.InDelta(t, (22+20+62.0/3)/3, res.Forecast[2], 1e-9)
	assert.Equal(t, 22.0, res.LastValue)
	assert.Equal(t, 7, res.DataPoints)
	assert.Equal(t, MovingAverage, res.Method)
	assert.Equal(t, 3, res.Steps)
}

func TestForecastDefaults(t *testing.T) {
	res, err := New().Forecast([]float64{1, 2, 3, 4}, Options{})
	require.NoError(t, err)

	assert.Equal(t, MovingAverage, res.Method)
	assert.Equal(t, 7, res.Steps)
	assert.Len(t, res.Forecast, 7)
	assert.InDelta(t, 3, res.Forecast[0], 1e-9)
}

func TestConstantSeriesIsFlat(t *testing.T) {
	series := []float64{4.2, 4.2, 4.2, 4.2, 4.2}
	for _, m := range []Method{MovingAverage, ExponentialSmoothing} {
		for _, steps := range []int{1, 5, 30} {
			res, err := New().Forecast(series, Options{Method: m, Steps: steps})
			require.NoError(t, err)
			require.Len(t, res.Forecast, steps)
			for _, v := range res.Forecast {
				assert.InDelta(t, 4.2, v, 1e-9, "%s steps=%d", m, steps)
			}
		}
	}
}

func TestLinearRegressionContinuesProgression(t *testing.T) {
	a, d := 3.0, 2.5
	series := make([]float64, 10)
	for i := range series {
		series[i] = a + d*float64(i)
	}

	res, err := New().Forecast(series, Options{Method: LinearRegression, Steps: 5})
	require.NoError(t, err)
	for i, v := range res.Forecast {
		assert.InDelta(t, a+d*float64(10+i), v, 1e-9)
	}
}

func TestExponentialSmoothingRecurrence(t *testing.T) {
	res, err := New().Forecast([]float64{10, 20}, Options{Method: ExponentialSmoothing, Steps: 2, Alpha: 0.5})
	require.NoError(t, err)
	assert.Equal(t, []float64{15, 15}, res.Forecast)
}

func TestSeasonalNaiveRepeatsLastSeason(t *testing.T) {
	series := []float64{9, 9, 1, 2, 3, 4}
	res, err := New().Forecast(series, Options{Method: SeasonalNaive, SeasonLength: 4, Steps: 8})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 1, 2, 3, 4}, res.Forecast)
}

func TestForecastErrors(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		opts   Options
		target error
	}{
		{name: "empty series", series: nil, opts: Options{}, target: model.ErrInputValidation},
		{name: "unknown method", series: []float64{1, 2, 3}, opts: Options{Method: "arima"}, target: model.ErrUnsupportedMethod},
		{name: "moving average window too large", series: []float64{1, 2}, opts: Options{WindowSize: 3}, target: model.ErrInsufficientData},
		{name: "regression single point", series: []float64{1}, opts: Options{Method: LinearRegression}, target: model.ErrInsufficientData},
		{name: "season too long", series: []float64{1, 2, 3}, opts: Options{Method: SeasonalNaive}, target: model.ErrInsufficientData},
		{name: "negative steps", series: []float64{1, 2, 3}, opts: Options{Steps: -1}, target: model.ErrInputValidation},
		{name: "alpha above one", series: []float64{1, 2, 3}, opts: Options{Method: ExponentialSmoothing, Alpha: 1.5}, target: model.ErrInputValidation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New().Forecast(tc.series, tc.opts)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.target), "got %v", err)
		})
	}
}

func TestInsufficientDataErrorDetails(t *testing.T) {
	_, err := New().Forecast([]float64{1, 2}, Options{Method: SeasonalNaive, SeasonLength: 5})
	var ide *model.InsufficientDataError
	require.ErrorAs(t, err, &ide)
	assert.Equal(t, 5, ide.Required)
	assert.Equal(t, 2, ide.Got)
}

func TestForecastRawDropsNonNumeric(t *testing.T) {
	raw := []any{10.0, "12", "abc", nil, true, 15, "  "}
	res, err := New().ForecastRaw(raw, Options{Method: ExponentialSmoothing, Steps: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, res.DataPoints)
	assert.Equal(t, 15.0, res.LastValue)

	_, err = New().ForecastRaw([]any{"x", "y"}, Options{Method: ExponentialSmoothing})
	assert.ErrorIs(t, err, model.ErrInsufficientData)

	_, err = New().ForecastRaw(nil, Options{})
	assert.ErrorIs(t, err, model.ErrInputValidation)
}

func TestMethodsCatalogue(t *testing.T) {
	infos := Methods()
	require.Len(t, infos, 4)
	for _, info := range infos {
		assert.True(t, info.Name.Valid())
		assert.NotEmpty(t, info.Description)
	}
}
