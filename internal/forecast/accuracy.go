package forecast

import (
	"math"

	"market-intel/internal/model"
)

// AccuracyReport holds error statistics of predicted against actual.
type AccuracyReport struct {
	MeanError                   float64 `json:"meanError"`
	MeanAbsoluteError           float64 `json:"meanAbsoluteError"`
	MeanSquaredError            float64 `json:"meanSquaredError"`
	RootMeanSquaredError        float64 `json:"rootMeanSquaredError"`
	MeanAbsolutePercentageError float64 `json:"meanAbsolutePercentageError"`
	Accuracy                    float64 `json:"accuracy"`
}

// Evaluate compares equal-length series. MAPE is the total absolute error
// over the total actual value, in percent; Accuracy is 100 - MAPE.
func Evaluate(actual, predicted []float64) (*AccuracyReport, error) {
	if len(actual) != len(predicted) {
		return nil, &model.ArityMismatchError{Actual: len(actual), Predicted: len(predicted)}
	}
	if len(actual) == 0 {
		return nil, &model.InsufficientDataError{Method: "accuracy evaluation", Required: 1, Got: 0}
	}

	n := float64(len(actual))
	var sumError, sumAbsError, sumSqError, sumActual float64
	for i := range actual {
		err := actual[i] - predicted[i]
		sumError += err
		sumAbsError += math.Abs(err)
		sumSqError += err * err
		sumActual += actual[i]
	}

	var mape float64
	switch {
	case sumAbsError == 0:
		mape = 0
	case sumActual == 0:
		return nil, model.Invalid("actual", "values sum to zero, percentage error is undefined")
	default:
		mape = sumAbsError / sumActual * 100
	}

	mse := sumSqError / n
	return &AccuracyReport{
		MeanError:                   sumError / n,
		MeanAbsoluteError:           sumAbsError / n,
		MeanSquaredError:            mse,
		RootMeanSquaredError:        math.Sqrt(mse),
		MeanAbsolutePercentageError: mape,
		Accuracy:                    100 - mape,
	}, nil
}
