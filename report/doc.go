// Package report renders analysis results as text tables and HTML charts.
//
// Text output uses bordered tables; counts are printed with grouped
// thousands and the stationarity label is colored when the output is a
// terminal.
//
//	report.WriteSummaries(os.Stdout, summaries)
//	report.WriteTimeSeries(os.Stdout, tsReport)
//
// Charts are ECharts line charts rendered into a single HTML page:
//
//	f, _ := os.Create("chart.html")
//	defer f.Close()
//	err := report.RenderChart(f, report.TimeSeriesChart(tsReport))
package report
