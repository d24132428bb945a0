package timeseries

import (
	"fmt"
	"math"

	"github.com/sartorproj/tabstat"
	"gonum.org/v1/gonum/stat"
)

// Autocorrelation calculates the autocorrelation for lags 1..maxLag.
// Element k-1 holds lag k:
//
//	acf[k] = sum_{i=0}^{n-k-1} (x[i]-m)(x[i+k]-m) / (n-k) / var
//
// where m and var are the mean and population variance of the whole
// series. maxLag is clamped to n-1.
func Autocorrelation(values []float64, maxLag int) ([]float64, error) {
	if maxLag < 1 {
		return nil, fmt.Errorf("%w: max lag must be positive, got %d", tabstat.ErrInvalidParameter, maxLag)
	}
	if err := requireLength(values, 2, "autocorrelation"); err != nil {
		return nil, err
	}

	n := len(values)
	if maxLag > n-1 {
		maxLag = n - 1
	}
	mean, variance := moments(values)
	if !tabstat.IsFinite(mean) || !tabstat.IsFinite(variance) {
		return nil, fmt.Errorf("%w: series moments overflowed", tabstat.ErrUndefined)
	}
	if variance == 0 {
		return nil, fmt.Errorf("%w: autocorrelation of a constant series", tabstat.ErrDivisionByZero)
	}

	acf := make([]float64, maxLag)
	for k := 1; k <= maxLag; k++ {
		acf[k-1] = autocorrelationAt(values, mean, variance, k)
		if !tabstat.IsFinite(acf[k-1]) {
			return nil, fmt.Errorf("%w: autocorrelation at lag %d overflowed", tabstat.ErrUndefined, k)
		}
	}
	return acf, nil
}

// autocorrelationAt evaluates the lag-k term. At k = 0 it equals 1.
func autocorrelationAt(values []float64, mean, variance float64, k int) float64 {
	n := len(values)
	sum := 0.0
	for i := 0; i < n-k; i++ {
		sum += (values[i] - mean) * (values[i+k] - mean)
	}
	return sum / float64(n-k) / variance
}

// moments returns the mean and population variance of values.
func moments(values []float64) (mean, variance float64) {
	mean = stat.Mean(values, nil)
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	return mean, variance / float64(len(values))
}

// ACFConfidenceBound returns the 95% bound 1.96/sqrt(n) for a series
// of length n.
func ACFConfidenceBound(n int) float64 {
	if n < 1 {
		return 0
	}
	return 1.96 / math.Sqrt(float64(n))
}

// SignificantLags returns the lags whose autocorrelation exceeds the
// confidence bound in absolute value. acf[k-1] is taken to be lag k, as
// returned by Autocorrelation.
func SignificantLags(acf []float64, confBound float64) []int {
	var significant []int
	for i, r := range acf {
		if math.Abs(r) > confBound {
			significant = append(significant, i+1)
		}
	}
	return significant
}
