package forecast

import "market-intel/internal/model"

func movingAverage(data []float64, opts Options) ([]float64, error) {
	if len(data) < opts.WindowSize {
		return nil, &model.InsufficientDataError{Method: string(MovingAverage), Required: opts.WindowSize, Got: len(data)}
	}

	window := make([]float64, opts.WindowSize)
	copy(window, data[len(data)-opts.WindowSize:])

	out := make([]float64, 0, opts.Steps)
	for i := 0; i < opts.Steps; i++ {
		sum := 0.0
		for _, v := range window {
			sum += v
		}
		avg := sum / float64(opts.WindowSize)
		out = append(out, avg)
		// Slide: later forecasts are smoothed over earlier ones.
		window = append(window[1:], avg)
	}
	return out, nil
}

func linearRegression(data []float64, opts Options) ([]float64, error) {
	if len(data) < 2 {
		return nil, &model.InsufficientDataError{Method: string(LinearRegression), Required: 2, Got: len(data)}
	}

	n := float64(len(data))
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range data {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	slope := (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / n

	out := make([]float64, opts.Steps)
	for i := range out {
		out[i] = intercept + slope*(n+float64(i))
	}
	return out, nil
}

func exponentialSmoothing(data []float64, opts Options) ([]float64, error) {
	if len(data) < 1 {
		return nil, &model.InsufficientDataError{Method: string(ExponentialSmoothing), Required: 1, Got: len(data)}
	}

	level := data[0]
	for _, v := range data[1:] {
		level = opts.Alpha*v + (1-opts.Alpha)*level
	}

	out := make([]float64, opts.Steps)
	for i := range out {
		out[i] = level
	}
	return out, nil
}

func seasonalNaive(data []float64, opts Options) ([]float64, error) {
	if len(data) < opts.SeasonLength {
		return nil, &model.InsufficientDataError{Method: string(SeasonalNaive), Required: opts.SeasonLength, Got: len(data)}
	}

	lastSeason := data[len(data)-opts.SeasonLength:]
	out := make([]float64, opts.Steps)
	for i := range out {
		out[i] = lastSeason[i%opts.SeasonLength]
	}
	return out, nil
}
