package timeseries

import (
	"fmt"

	"github.com/sartorproj/tabstat"
	"gonum.org/v1/gonum/stat"
)

// Default parameters of the engine operations.
const (
	DefaultWindow    = 5
	DefaultHorizon   = 12
	DefaultMaxLag    = 20
	DefaultThreshold = 1e-2
)

// Series is a value sequence aligned with its time-axis labels.
type Series struct {
	Name   string
	Labels []string
	Values []float64
}

// NewSeries creates a series from aligned labels and values.
// A nil labels slice is allowed; otherwise the lengths must match.
func NewSeries(name string, labels []string, values []float64) (*Series, error) {
	if labels != nil && len(labels) != len(values) {
		return nil, fmt.Errorf("%w: %d labels for %d values", tabstat.ErrInvalidParameter, len(labels), len(values))
	}
	for i, v := range values {
		if !tabstat.IsFinite(v) {
			return nil, fmt.Errorf("%w: value at index %d is not finite", tabstat.ErrUndefined, i)
		}
	}
	return &Series{
		Name:   name,
		Labels: labels,
		Values: values,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return stat.Mean(s.Values, nil)
}

// Label returns the time-axis label at index i, or its 1-based position
// when the series carries no labels.
func (s *Series) Label(i int) string {
	if s.Labels == nil {
		return fmt.Sprint(i + 1)
	}
	return s.Labels[i]
}

// Slice returns a slice of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start > end {
		start = end
	}

	out := &Series{
		Name:   s.Name,
		Values: s.Values[start:end],
	}
	if s.Labels != nil {
		out.Labels = s.Labels[start:end]
	}
	return out
}

func requireLength(values []float64, min int, op string) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: %s", tabstat.ErrEmptySeries, op)
	}
	if len(values) < min {
		return fmt.Errorf("%w: %s needs at least %d values, got %d", tabstat.ErrInsufficientData, op, min, len(values))
	}
	return nil
}
