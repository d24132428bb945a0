package analyzer

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sartorproj/tabstat"
	"github.com/sartorproj/tabstat/dataset"
	"github.com/sartorproj/tabstat/logger"
)

func testTable(t *testing.T) *dataset.Table {
	t.Helper()
	table, err := dataset.NewTable(
		[]string{"month", "sales", "note"},
		[][]string{
			{"2020-01", "1", "a"},
			{"2020-02", "2", "b"},
			{"2020-03", "3", ""},
			{"2020-04", "4", "c"},
			{"2020-05", "5", "d"},
		},
	)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	return table
}

func newTestAnalyzer(t *testing.T, opts *Options) *Analyzer {
	t.Helper()
	a, err := New(opts, logger.NewLoggerTo(io.Discard, "critical", "analyzer-test"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return a
}

func TestDescribe(t *testing.T) {
	a := newTestAnalyzer(t, nil)
	summary, err := a.Describe(testTable(t), "sales")
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if summary.Stats.Mean != 3 || summary.Stats.Variance != 2 || summary.Stats.Count != 5 {
		t.Errorf("Unexpected stats %+v", summary.Stats)
	}

	if _, err := a.Describe(testTable(t), "price"); !errors.Is(err, tabstat.ErrInvalidSelection) {
		t.Errorf("Expected ErrInvalidSelection, got %v", err)
	}
	if _, err := a.Describe(testTable(t), "note"); !errors.Is(err, tabstat.ErrEmptySeries) {
		t.Errorf("Expected ErrEmptySeries, got %v", err)
	}
}

func TestDescribeAll(t *testing.T) {
	a := newTestAnalyzer(t, nil)
	all, err := a.DescribeAll(context.Background(), testTable(t))
	if err != nil {
		t.Fatalf("DescribeAll failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 summaries, got %d", len(all))
	}

	for i, name := range []string{"month", "sales", "note"} {
		if all[i].Column != name {
			t.Errorf("Summary %d should be %q, got %q", i, name, all[i].Column)
		}
	}
	if all[1].Err != nil || all[1].Stats.Mean != 3 {
		t.Errorf("sales should summarize, got %+v", all[1])
	}
	if !errors.Is(all[2].Err, tabstat.ErrEmptySeries) || all[2].Error == "" {
		t.Errorf("note should fail with ErrEmptySeries, got %v", all[2].Err)
	}
	if all[2].Dropped != 4 || all[2].Missing != 1 {
		t.Errorf("note should report 4 dropped and 1 missing, got %d and %d", all[2].Dropped, all[2].Missing)
	}
}

func TestDescribeAllCancelled(t *testing.T) {
	a := newTestAnalyzer(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := a.DescribeAll(ctx, testTable(t)); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestDistribution(t *testing.T) {
	a := newTestAnalyzer(t, nil)
	report, err := a.Distribution(testTable(t), "sales", "Continuous", "uniform")
	if err != nil {
		t.Fatalf("Distribution failed: %v", err)
	}
	if report.Curve.Accuracy != 4 || len(report.Curve.Values) != 5 {
		t.Errorf("Unexpected curve %+v", report.Curve)
	}

	if _, err := a.Distribution(testTable(t), "sales", "Discrete", "Uniform"); !errors.Is(err, tabstat.ErrInvalidSelection) {
		t.Errorf("Expected ErrInvalidSelection, got %v", err)
	}
}

func TestDistributionUsesConfig(t *testing.T) {
	opts := DefaultOptions()
	opts.Distribution.GammaShape = 3
	a := newTestAnalyzer(t, opts)

	report, err := a.Distribution(testTable(t), "sales", "", "Gamma")
	if err != nil {
		t.Fatalf("Distribution failed: %v", err)
	}
	if report.Curve.Parameters["shape"] != 3 {
		t.Errorf("Expected shape 3, got %v", report.Curve.Parameters)
	}
}

func TestCachedResultsAreCopies(t *testing.T) {
	a := newTestAnalyzer(t, nil)

	first, err := a.Distribution(testTable(t), "sales", "", "Gamma")
	if err != nil {
		t.Fatalf("Distribution failed: %v", err)
	}
	for k := range first.Curve.Parameters {
		first.Curve.Parameters[k] = -1
	}
	first.Curve.Values[0] = -1
	first.Curve.Labels[0] = -1

	second, err := a.Distribution(testTable(t), "sales", "", "Gamma")
	if err != nil {
		t.Fatalf("Distribution failed: %v", err)
	}
	if second.Curve.Parameters["shape"] != 2 {
		t.Errorf("Cached parameters were modified: %v", second.Curve.Parameters)
	}
	if second.Curve.Values[0] == -1 || second.Curve.Labels[0] != 1 {
		t.Errorf("Cached curve was modified: %+v", second.Curve)
	}

	summary, err := a.Describe(testTable(t), "sales")
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	summary.Stats.Mean = -1
	again, err := a.Describe(testTable(t), "sales")
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if again.Stats.Mean != 3 {
		t.Errorf("Cached summary was modified: mean %f", again.Stats.Mean)
	}
}

func TestTimeSeriesViews(t *testing.T) {
	a := newTestAnalyzer(t, nil)
	table := testTable(t)

	tests := []struct {
		view   View
		plots  int
		labels int
	}{
		{ViewOriginal, 1, 5},
		{ViewMovingAverage, 1, 5},
		{ViewTrend, 1, 5},
		{ViewEMA, 1, 5},
		{ViewForecast, 1, 17},
		{ViewDifferencing, 1, 4},
		{ViewAutocorrelation, 1, 4},
		{ViewStationarity, 0, 0},
		{ViewAll, 6, 17},
	}
	for _, tt := range tests {
		t.Run(string(tt.view), func(t *testing.T) {
			report, err := a.TimeSeries(table, TimeSeriesRequest{
				DateColumn:  "month",
				ValueColumn: "sales",
				View:        tt.view,
			})
			if err != nil {
				t.Fatalf("TimeSeries failed: %v", err)
			}
			if len(report.Plots) != tt.plots {
				t.Errorf("Expected %d plots, got %d", tt.plots, len(report.Plots))
			}
			if len(report.Labels) != tt.labels {
				t.Errorf("Expected %d labels, got %d", tt.labels, len(report.Labels))
			}
			if report.Stationarity.Label != "Non-Stationary" {
				t.Errorf("Expected Non-Stationary, got %q", report.Stationarity.Label)
			}
			if report.Errors == nil || report.Errors.MAE != 2 || report.Errors.MSE != 4 {
				t.Errorf("Expected MAE 2 and MSE 4, got %+v", report.Errors)
			}
		})
	}
}

func TestTimeSeriesAllGraphs(t *testing.T) {
	a := newTestAnalyzer(t, nil)
	report, err := a.TimeSeries(testTable(t), TimeSeriesRequest{
		DateColumn:  "month",
		ValueColumn: "sales",
		View:        ViewAll,
	})
	if err != nil {
		t.Fatalf("TimeSeries failed: %v", err)
	}

	want := []string{"Original Data", "Moving Average", "Trend Line", "Forecast",
		"Exponential Moving Average (EMA)", "Differencing"}
	for i, name := range want {
		if report.Plots[i].Name != name {
			t.Errorf("Plot %d should be %q, got %q", i, name, report.Plots[i].Name)
		}
	}
	if report.Labels[0] != "2020-01" || report.Labels[5] != "Forecast 1" || report.Labels[16] != "Forecast 12" {
		t.Errorf("Unexpected axis %v", report.Labels)
	}
	if n := len(report.Plots[3].Values); n != 17 {
		t.Errorf("Forecast should hold the series and 12 steps, got %d", n)
	}
	if ma := report.Plots[1].Values; ma[3].Valid || !ma[4].Valid || ma[4].Value != 3 {
		t.Errorf("Unexpected moving average %+v", ma)
	}
}

func TestTimeSeriesDifferencingAxis(t *testing.T) {
	a := newTestAnalyzer(t, nil)
	report, err := a.TimeSeries(testTable(t), TimeSeriesRequest{
		DateColumn:  "month",
		ValueColumn: "sales",
		View:        ViewDifferencing,
	})
	if err != nil {
		t.Fatalf("TimeSeries failed: %v", err)
	}
	if report.Labels[0] != "2020-02" {
		t.Errorf("Differencing axis should start at the second label, got %q", report.Labels[0])
	}
	for _, v := range report.Plots[0].Values {
		if v.Value != 1 {
			t.Errorf("Expected differences of 1, got %f", v.Value)
		}
	}
}

func TestTimeSeriesShortSeries(t *testing.T) {
	opts := DefaultOptions()
	opts.Window = 10
	a := newTestAnalyzer(t, opts)

	report, err := a.TimeSeries(testTable(t), TimeSeriesRequest{
		DateColumn:  "month",
		ValueColumn: "sales",
	})
	if err != nil {
		t.Fatalf("TimeSeries failed: %v", err)
	}
	if report.View != ViewOriginal {
		t.Errorf("Empty view should default to %q, got %q", ViewOriginal, report.View)
	}
	if report.Errors != nil {
		t.Errorf("Errors should be omitted when the series is shorter than the window, got %+v", report.Errors)
	}

	table, _ := dataset.NewTable([]string{"d", "v"}, [][]string{{"x", "1"}})
	if _, err := a.TimeSeries(table, TimeSeriesRequest{DateColumn: "d", ValueColumn: "v"}); !errors.Is(err, tabstat.ErrInsufficientData) {
		t.Errorf("Expected ErrInsufficientData, got %v", err)
	}
}

func TestTimeSeriesInvalidView(t *testing.T) {
	a := newTestAnalyzer(t, nil)
	_, err := a.TimeSeries(testTable(t), TimeSeriesRequest{
		DateColumn:  "month",
		ValueColumn: "sales",
		View:        "Spectrum",
	})
	if !errors.Is(err, tabstat.ErrInvalidSelection) {
		t.Errorf("Expected ErrInvalidSelection, got %v", err)
	}
}

func TestCache(t *testing.T) {
	a := newTestAnalyzer(t, nil)
	table := testTable(t)

	first, err := a.Describe(table, "sales")
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	second, err := a.Describe(table, "sales")
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if first.Stats != second.Stats {
		t.Errorf("Second request should be served from the cache")
	}
	if a.cache.Len() != 1 {
		t.Errorf("Expected 1 cached result, got %d", a.cache.Len())
	}

	req := TimeSeriesRequest{DateColumn: "month", ValueColumn: "sales", View: ViewTrend}
	r1, _ := a.TimeSeries(table, req)
	r2, _ := a.TimeSeries(table, req)
	if r1 == r2 {
		t.Errorf("Time-series reports should be copied out of the cache")
	}
	if r1.Plots[0].Values[2] != r2.Plots[0].Values[2] {
		t.Errorf("Cached report differs from the computed one")
	}
}

func TestCacheDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.CacheSize = 0
	a := newTestAnalyzer(t, opts)
	if a.cache != nil {
		t.Fatalf("Cache should be disabled")
	}
	if _, err := a.Describe(testTable(t), "sales"); err != nil {
		t.Errorf("Describe failed: %v", err)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(o *Options)
	}{
		{"window", func(o *Options) { o.Window = 0 }},
		{"horizon", func(o *Options) { o.Horizon = -1 }},
		{"max lag", func(o *Options) { o.MaxLag = 0 }},
		{"threshold", func(o *Options) { o.Threshold = 0 }},
		{"cache", func(o *Options) { o.CacheSize = -1 }},
		{"distribution", func(o *Options) { o.Distribution.BinomialP = 2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.modify(opts)
			if _, err := New(opts, nil); !errors.Is(err, tabstat.ErrInvalidParameter) {
				t.Errorf("Expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestParseView(t *testing.T) {
	v, err := ParseView("all graphs")
	if err != nil || v != ViewAll {
		t.Errorf("ParseView(all graphs) = %q, %v", v, err)
	}
	if len(Views()) != 9 {
		t.Errorf("Expected 9 views, got %d", len(Views()))
	}
}
