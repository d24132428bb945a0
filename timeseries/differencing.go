package timeseries

import (
	"fmt"

	"github.com/sartorproj/tabstat"
)

// Difference applies first differencing order times. Each pass computes
// x[i] - x[i-1] and shortens the series by one.
func Difference(values []float64, order int) ([]float64, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: differencing order must be positive, got %d", tabstat.ErrInvalidParameter, order)
	}
	if err := requireLength(values, order+1, "differencing"); err != nil {
		return nil, err
	}

	result := values
	for d := 0; d < order; d++ {
		next := make([]float64, len(result)-1)
		for i := 1; i < len(result); i++ {
			next[i-1] = result[i] - result[i-1]
			if !tabstat.IsFinite(next[i-1]) {
				return nil, fmt.Errorf("%w: difference overflowed at index %d", tabstat.ErrUndefined, i)
			}
		}
		result = next
	}
	return result, nil
}

// CumulativeSum returns the running totals of values. It inverts
// first-order differencing up to the initial value:
// CumulativeSum(Difference(v, 1))[i] + v[0] == v[i+1].
func CumulativeSum(values []float64) []float64 {
	result := make([]float64, len(values))
	sum := 0.0
	for i, v := range values {
		sum += v
		result[i] = sum
	}
	return result
}
