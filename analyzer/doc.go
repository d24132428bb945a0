// Package analyzer answers analysis requests over a loaded table.
//
// Every method takes the complete selection (column names, family, view)
// as arguments and returns an immutable report; nothing is recomputed
// implicitly. Results are memoized in an LRU cache keyed by a hash of the
// input values, the operation and its parameters, so repeated requests
// return the same report without recomputation.
//
// # Creating an Analyzer
//
//	log := logger.NewLogger("info", "analyzer")
//	a, err := analyzer.New(analyzer.DefaultOptions(), log)
//
// # Descriptive Statistics
//
//	summary, err := a.Describe(table, "sales")
//	fmt.Println(summary.Stats.Mean, summary.Dropped)
//
//	// every column in parallel; failures are reported per column
//	all, err := a.DescribeAll(ctx, table)
//	for _, s := range all {
//	    if s.Err != nil {
//	        continue
//	    }
//	}
//
// # Distributions
//
//	report, err := a.Distribution(table, "sales", "Continuous", "Gamma")
//	fmt.Println(report.Curve.Accuracy)
//
// # Time Series
//
//	report, err := a.TimeSeries(table, analyzer.TimeSeriesRequest{
//	    DateColumn:  "month",
//	    ValueColumn: "sales",
//	    View:        analyzer.ViewAll,
//	})
//	for _, p := range report.Plots {
//	    fmt.Println(p.Name, len(p.Values))
//	}
//	fmt.Println(report.Stationarity.Label)
package analyzer
