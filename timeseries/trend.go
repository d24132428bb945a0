package timeseries

import (
	"fmt"

	"github.com/sartorproj/tabstat"
	"gonum.org/v1/gonum/stat"
)

// Trend is an ordinary least-squares line of value on index.
type Trend struct {
	Slope     float64
	Intercept float64
	Fitted    []float64 // line evaluated at 0..n-1
}

// At evaluates the trend line at index x.
func (t *Trend) At(x float64) float64 {
	return t.Intercept + t.Slope*x
}

// LinearTrend regresses values on their indices 0..n-1.
func LinearTrend(values []float64) (*Trend, error) {
	if err := requireLength(values, 2, "linear trend"); err != nil {
		return nil, err
	}

	index := make([]float64, len(values))
	for i := range index {
		index[i] = float64(i)
	}
	intercept, slope := stat.LinearRegression(index, values, nil, false)
	if !tabstat.IsFinite(intercept) || !tabstat.IsFinite(slope) {
		return nil, fmt.Errorf("%w: trend coefficients overflow", tabstat.ErrUndefined)
	}

	t := &Trend{
		Slope:     slope,
		Intercept: intercept,
		Fitted:    make([]float64, len(values)),
	}
	for i, x := range index {
		t.Fitted[i] = t.At(x)
	}
	return t, nil
}
