// Package stats provides descriptive statistics for numeric series.
package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/sartorproj/tabstat"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Precision is the number of decimal places kept in DescriptiveStats.
const Precision = 2

// DescriptiveStats summarizes a numeric series.
//
// Variance and StdDev are population statistics (divide by n) while
// Skewness and Kurtosis are bias-corrected sample statistics. Kurtosis
// is excess kurtosis.
type DescriptiveStats struct {
	Count        int     `json:"count"`
	Sum          float64 `json:"sum"`
	Mean         float64 `json:"mean"`
	Median       float64 `json:"median"`
	Mode         float64 `json:"mode"`
	Variance     float64 `json:"variance"`
	StdDev       float64 `json:"stdDev"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Range        float64 `json:"range"`
	Q1           float64 `json:"q1"`
	Q3           float64 `json:"q3"`
	IQR          float64 `json:"iqr"`
	Skewness     float64 `json:"skewness"`
	Kurtosis     float64 `json:"kurtosis"`
	RMS          float64 `json:"rms"`
	SumOfSquares float64 `json:"sumOfSquares"`
}

// Summarize computes the descriptive statistics of values.
// Internal computation keeps full precision; the returned fields are
// rounded to Precision decimal places.
func Summarize(values []float64) (*DescriptiveStats, error) {
	n := len(values)
	if n == 0 {
		return nil, fmt.Errorf("%w: nothing to summarize", tabstat.ErrEmptySeries)
	}
	for i, v := range values {
		if !tabstat.IsFinite(v) {
			return nil, fmt.Errorf("%w: value at index %d is not finite", tabstat.ErrUndefined, i)
		}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	nf := float64(n)
	mean := stat.Mean(values, nil)
	variance := PopulationVariance(values)
	min, max := sorted[0], sorted[n-1]
	q1 := Quantile(sorted, 0.25)
	q3 := Quantile(sorted, 0.75)

	sumOfSquares := 0.0
	for _, v := range values {
		d := v - mean
		sumOfSquares += d * d
	}

	s := &DescriptiveStats{
		Count:        n,
		Sum:          floats.Sum(values),
		Mean:         mean,
		Median:       Quantile(sorted, 0.5),
		Mode:         Mode(values),
		Variance:     variance,
		StdDev:       math.Sqrt(variance),
		Min:          min,
		Max:          max,
		Range:        max - min,
		Q1:           q1,
		Q3:           q3,
		IQR:          q3 - q1,
		Skewness:     Skewness(values),
		Kurtosis:     Kurtosis(values),
		RMS:          math.Sqrt(floats.Dot(values, values) / nf),
		SumOfSquares: sumOfSquares,
	}

	if err := s.round(); err != nil {
		return nil, err
	}
	return s, nil
}

// round rounds every field in place and rejects overflowed results.
func (s *DescriptiveStats) round() error {
	fields := []*float64{
		&s.Sum, &s.Mean, &s.Median, &s.Mode, &s.Variance, &s.StdDev,
		&s.Min, &s.Max, &s.Range, &s.Q1, &s.Q3, &s.IQR,
		&s.Skewness, &s.Kurtosis, &s.RMS, &s.SumOfSquares,
	}
	for _, f := range fields {
		if !tabstat.IsFinite(*f) {
			return fmt.Errorf("%w: summary overflowed", tabstat.ErrUndefined)
		}
		*f = tabstat.Round(*f, Precision)
	}
	return nil
}

// PopulationVariance returns the variance of values dividing by n.
func PopulationVariance(values []float64) float64 {
	n := float64(len(values))
	if n < 2 {
		return 0
	}
	return stat.Variance(values, nil) * (n - 1) / n
}

// Quantile returns the p-quantile of sorted data using linear
// interpolation between closest ranks, h = (n-1)p.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 || p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	h := float64(n-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= n {
		return sorted[n-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

// Mode returns the most frequent value. Among equally frequent values the
// one that appears first in values wins.
func Mode(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	counts := make(map[float64]int, len(values))
	best := 0
	for _, v := range values {
		counts[v]++
		if counts[v] > best {
			best = counts[v]
		}
	}

	for _, v := range values {
		if counts[v] == best {
			return v
		}
	}
	return values[0]
}

// Skewness returns the bias-corrected sample skewness, or 0 when it is
// undefined (fewer than three values or no spread).
func Skewness(values []float64) float64 {
	if len(values) < 3 {
		return 0
	}
	return finiteOrZero(stat.Skew(values, nil))
}

// Kurtosis returns the bias-corrected sample excess kurtosis, or 0 when
// it is undefined (fewer than four values or no spread).
func Kurtosis(values []float64) float64 {
	if len(values) < 4 {
		return 0
	}
	return finiteOrZero(stat.ExKurtosis(values, nil))
}

func finiteOrZero(x float64) float64 {
	if !tabstat.IsFinite(x) {
		return 0
	}
	return x
}
