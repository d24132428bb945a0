// Package dataset provides the tabular input consumed by the analysis
// engines: a header row plus a row-major matrix of raw cell strings.
//
// # Loading a Table
//
// Load from a file; compressed inputs are detected by extension:
//
//	table, err := dataset.LoadCSV("measurements.csv.gz", nil)
//
// Or from any reader:
//
//	opts := dataset.DefaultCSVOptions()
//	opts.Delimiter = ';'
//	table, err := dataset.LoadCSVFromReader(reader, opts)
//
// # Extracting a Numeric Series
//
// Extract keeps row order and skips cells that are not finite numbers,
// reporting how many were skipped:
//
//	ext, err := dataset.Extract(table, "price")
//	if ext.Degraded() {
//	    log.Printf("%d non-numeric cells in %s", ext.Dropped, ext.Column)
//	}
//
// For time series, ExtractPairs drops a row when either its label is
// empty or its value does not parse, keeping both sequences aligned:
//
//	pairs, err := dataset.ExtractPairs(table, "date", "price")
package dataset
