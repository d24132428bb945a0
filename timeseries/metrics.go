package timeseries

import (
	"fmt"
	"math"

	"github.com/sartorproj/tabstat"
)

// ErrorMetrics compares predictions with the observed values.
type ErrorMetrics struct {
	MAE float64 `json:"mae"`
	MSE float64 `json:"mse"`
}

// ComputeErrors returns the mean absolute and mean squared error of
// predicted against actual. Both slices must be aligned.
func ComputeErrors(actual, predicted []float64) (*ErrorMetrics, error) {
	if len(actual) != len(predicted) {
		return nil, fmt.Errorf("%w: %d actual values for %d predictions", tabstat.ErrInvalidParameter, len(actual), len(predicted))
	}
	if len(actual) == 0 {
		return nil, fmt.Errorf("%w: no predictions to score", tabstat.ErrEmptySeries)
	}

	var abs, sq float64
	for i := range actual {
		d := actual[i] - predicted[i]
		abs += math.Abs(d)
		sq += d * d
	}
	n := float64(len(actual))
	m := &ErrorMetrics{MAE: abs / n, MSE: sq / n}
	if !tabstat.IsFinite(m.MAE) || !tabstat.IsFinite(m.MSE) {
		return nil, fmt.Errorf("%w: error metrics overflow", tabstat.ErrUndefined)
	}
	return m, nil
}

// MovingAverageErrors scores the trailing moving average as a predictor
// of the value at the same index, pairing values[window-1:] with the
// defined averages.
func MovingAverageErrors(values []float64, window int) (*ErrorMetrics, error) {
	ma, err := MovingAverage(values, window)
	if err != nil {
		return nil, err
	}
	if len(values) < window {
		return nil, fmt.Errorf("%w: moving average errors need at least %d values, got %d", tabstat.ErrInsufficientData, window, len(values))
	}
	return ComputeErrors(values[window-1:], Defined(ma))
}
