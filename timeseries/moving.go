package timeseries

import (
	"encoding/json"
	"fmt"

	"github.com/sartorproj/tabstat"
	"gonum.org/v1/gonum/floats"
)

// NullFloat64 is a float64 that may be undefined. Undefined values
// encode to JSON null.
type NullFloat64 struct {
	Value float64
	Valid bool
}

// MarshalJSON implements json.Marshaler.
func (n NullFloat64) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Defined returns the valid entries of values in order.
func Defined(values []NullFloat64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if v.Valid {
			out = append(out, v.Value)
		}
	}
	return out
}

// MovingAverage computes the trailing moving average. The result has
// the length of values; entry i is undefined for i < window-1 and the
// mean of values[i-window+1 : i+1] otherwise.
func MovingAverage(values []float64, window int) ([]NullFloat64, error) {
	if window < 1 {
		return nil, fmt.Errorf("%w: window must be positive, got %d", tabstat.ErrInvalidParameter, window)
	}
	if err := requireLength(values, 1, "moving average"); err != nil {
		return nil, err
	}

	result := make([]NullFloat64, len(values))
	for i := window - 1; i < len(values); i++ {
		mean := floats.Sum(values[i-window+1:i+1]) / float64(window)
		if !tabstat.IsFinite(mean) {
			return nil, fmt.Errorf("%w: moving average overflowed at index %d", tabstat.ErrUndefined, i)
		}
		result[i] = NullFloat64{Value: mean, Valid: true}
	}
	return result, nil
}

// ExponentialMovingAverage smooths values with alpha = 2/(n+1), starting
// from the first observation.
func ExponentialMovingAverage(values []float64) ([]float64, error) {
	if err := requireLength(values, 1, "exponential moving average"); err != nil {
		return nil, err
	}

	alpha := 2 / float64(len(values)+1)
	result := make([]float64, len(values))
	ema := values[0]
	result[0] = ema
	for i := 1; i < len(values); i++ {
		ema = alpha*values[i] + (1-alpha)*ema
		if !tabstat.IsFinite(ema) {
			return nil, fmt.Errorf("%w: exponential moving average overflowed at index %d", tabstat.ErrUndefined, i)
		}
		result[i] = ema
	}
	return result, nil
}
