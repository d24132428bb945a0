// Package stats provides descriptive statistics for numeric series.
//
// # Summaries
//
// Summarize a series in one call:
//
//	summary, err := stats.Summarize([]float64{1, 2, 3, 4, 5})
//	// summary.Mean == 3, summary.Variance == 2, summary.Q1 == 2
//
// Summaries use population variance (divide by n) and bias-corrected
// sample skewness and excess kurtosis. Every field is rounded to two
// decimal places; use the individual helpers for full precision:
//
//	v := stats.PopulationVariance(values)
//	q := stats.Quantile(sorted, 0.9)
//	m := stats.Mode(values)
//
// # Errors
//
// An empty series fails with tabstat.ErrEmptySeries. Skewness and
// kurtosis are reported as 0 when they are undefined, for example on a
// single-element or constant series.
package stats
