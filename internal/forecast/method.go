package forecast

// Method tags a forecasting routine.
type Method string

const (
	MovingAverage        Method = "moving_average"
	LinearRegression     Method = "linear_regression"
	ExponentialSmoothing Method = "exponential_smoothing"
	SeasonalNaive        Method = "seasonal_naive"
)

// Valid reports whether m names a supported method.
func (m Method) Valid() bool {
	switch m {
	case MovingAverage, LinearRegression, ExponentialSmoothing, SeasonalNaive:
		return true
	default:
		return false
	}
}

// MethodInfo describes a method for clients choosing one.
type MethodInfo struct {
	Name        Method   `json:"name"`
	Description string   `json:"description"`
	Parameters  []string `json:"parameters"`
	MinPoints   string   `json:"minPoints"`
}

// Methods lists every supported method in a stable order.
func Methods() []MethodInfo {
	return []MethodInfo{
		{
			Name:        MovingAverage,
			Description: "Mean of the last windowSize values; each forecast is fed back into the window.",
			Parameters:  []string{"steps", "windowSize"},
			MinPoints:   "windowSize",
		},
		{
			Name:        LinearRegression,
			Description: "Least-squares trend line over the observation index, extended forward.",
			Parameters:  []string{"steps"},
			MinPoints:   "2",
		},
		{
			Name:        ExponentialSmoothing,
			Description: "Simple exponential smoothing with factor alpha; flat projection of the last level.",
			Parameters:  []string{"steps", "alpha"},
			MinPoints:   "1",
		},
		{
			Name:        SeasonalNaive,
			Description: "Repeats the last seasonLength observations cyclically.",
			Parameters:  []string{"steps", "seasonLength"},
			MinPoints:   "seasonLength",
		},
	}
}
