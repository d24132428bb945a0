// Package tabstat provides a numeric analysis engine for tabular datasets.
//
// A column of raw cell strings is turned into a numeric series, and the
// series is then summarized, matched against a probability distribution
// family, or analyzed as a time series.
//
// # Quick Start
//
// Load a table and summarize one column:
//
//	table, _ := dataset.LoadCSV("sales.csv", nil)
//	ext, _ := dataset.Extract(table, "revenue")
//	summary, err := stats.Summarize(ext.Values)
//
// Evaluate a distribution family over the same series:
//
//	curve, err := distribution.Fit(ext.Values, distribution.Gamma, nil)
//
// Analyze a time series given a label column and a value column:
//
//	pairs, _ := dataset.ExtractPairs(table, "month", "revenue")
//	trend, _ := timeseries.LinearTrend(pairs.Values)
//	forecast, _ := timeseries.Forecast(pairs.Values, 12)
//
// # Packages
//
//   - dataset: tables, CSV loading and numeric extraction
//   - stats: descriptive statistics
//   - distribution: distribution families, curves and accuracy
//   - timeseries: smoothing, trend, forecast, autocorrelation and stationarity
//   - analyzer: request/response façade with caching
//   - report: text tables and HTML charts
//   - api: HTTP surface
//   - config, logger: flags, configuration and leveled logging
//   - cmd/tabstat: command line (describe, distribution, timeseries, families, serve)
//
// # Errors
//
// Every engine returns one of the error kinds declared in this package,
// wrapped with context. Use errors.Is to classify them.
package tabstat
