package report

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/sartorproj/tabstat"
	"github.com/sartorproj/tabstat/analyzer"
	"github.com/sartorproj/tabstat/dataset"
	"github.com/sartorproj/tabstat/distribution"
	"github.com/sartorproj/tabstat/logger"
	"github.com/stretchr/testify/require"
)

func newAnalyzer(t *testing.T) (*analyzer.Analyzer, *dataset.Table) {
	t.Helper()
	table, err := dataset.NewTable(
		[]string{"day", "visits", "comment"},
		[][]string{
			{"mon", "1200", "ok"},
			{"tue", "1300", ""},
			{"wed", "1250", "busy"},
			{"thu", "1400", "ok"},
			{"fri", "1500", "ok"},
			{"sat", "1100", "quiet"},
		},
	)
	require.NoError(t, err)
	a, err := analyzer.New(nil, logger.NewLoggerTo(io.Discard, "critical", "report-test"))
	require.NoError(t, err)
	return a, table
}

func TestWriteSummaries(t *testing.T) {
	summaries := []*analyzer.ColumnSummary{
		{Column: "visits"},
		{Column: "comment", Err: tabstat.ErrEmptySeries, Error: tabstat.ErrEmptySeries.Error()},
	}
	a, table := newAnalyzer(t)
	s, err := a.Describe(table, "visits")
	require.NoError(t, err)
	summaries[0] = s

	var buf bytes.Buffer
	WriteSummaries(&buf, summaries)
	out := buf.String()

	require.Contains(t, out, "visits")
	require.Contains(t, out, "1,291.67") // mean with grouped thousands
	require.Contains(t, out, "Sum of Squares")
	require.Contains(t, out, "comment")
	require.Contains(t, out, "empty series")
}

func TestWriteDistribution(t *testing.T) {
	a, table := newAnalyzer(t)
	r, err := a.Distribution(table, "visits", "Continuous", "Uniform")
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteDistribution(&buf, r)
	out := buf.String()

	require.Contains(t, out, "Uniform")
	require.Contains(t, out, "400.0000")
	require.Contains(t, out, "0.0025")
}

func TestWriteTimeSeries(t *testing.T) {
	a, table := newAnalyzer(t)
	r, err := a.TimeSeries(table, analyzer.TimeSeriesRequest{
		DateColumn:  "day",
		ValueColumn: "visits",
		View:        analyzer.ViewMovingAverage,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteTimeSeries(&buf, r)
	out := buf.String()

	require.Contains(t, out, "1330.0000") // mean of the first five visits
	require.Contains(t, out, "MAE")
	require.Contains(t, out, "Non-Stationary")
}

func TestWriteTimeSeriesAutocorrelation(t *testing.T) {
	a, table := newAnalyzer(t)
	r, err := a.TimeSeries(table, analyzer.TimeSeriesRequest{
		DateColumn:  "day",
		ValueColumn: "visits",
		View:        analyzer.ViewAutocorrelation,
	})
	require.NoError(t, err)
	require.Nil(t, r.LjungBox, "six points are too few for the Ljung-Box test")

	var buf bytes.Buffer
	WriteTimeSeries(&buf, r)
	require.Contains(t, buf.String(), "95% bound")
}

func TestWriteFamilies(t *testing.T) {
	var buf bytes.Buffer
	WriteFamilies(&buf, distribution.Discrete)
	out := buf.String()
	require.Contains(t, out, "Negative Binomial")
	require.NotContains(t, out, "Cauchy")
}

func TestRenderChart(t *testing.T) {
	a, table := newAnalyzer(t)
	ts, err := a.TimeSeries(table, analyzer.TimeSeriesRequest{
		DateColumn:  "day",
		ValueColumn: "visits",
		View:        analyzer.ViewAll,
	})
	require.NoError(t, err)
	dist, err := a.Distribution(table, "visits", "", "Normal")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderChart(&buf, TimeSeriesChart(ts), DistributionChart(dist)))
	html := buf.String()
	require.True(t, strings.Contains(html, "<html"), "expected an HTML page")
	require.Contains(t, html, "Forecast 12")
	require.Contains(t, html, "Exponential Moving Average (EMA)")
}

func TestConvertPlotDataKeepsGaps(t *testing.T) {
	a, table := newAnalyzer(t)
	r, err := a.TimeSeries(table, analyzer.TimeSeriesRequest{
		DateColumn:  "day",
		ValueColumn: "visits",
		View:        analyzer.ViewMovingAverage,
	})
	require.NoError(t, err)

	items := convertPlotData(r.Plots[0].Values)
	require.Len(t, items, 6)
	require.Equal(t, missingPoint, items[0].Value)
	require.Equal(t, 1330.0, items[4].Value)
}
