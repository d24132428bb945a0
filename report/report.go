package report

import (
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/sartorproj/tabstat/analyzer"
	"github.com/sartorproj/tabstat/distribution"
	"github.com/sartorproj/tabstat/stats"
	"github.com/sartorproj/tabstat/timeseries"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	bold     = color.New(color.Bold).SprintfFunc()
	positive = color.New(color.FgGreen, color.Bold).SprintfFunc()
	negative = color.New(color.FgRed, color.Bold).SprintfFunc()
	printer  = message.NewPrinter(language.English)
)

// statRows lists the summary fields in display order.
var statRows = []struct {
	name  string
	value func(s *stats.DescriptiveStats) float64
}{
	{"Mean", func(s *stats.DescriptiveStats) float64 { return s.Mean }},
	{"Sum", func(s *stats.DescriptiveStats) float64 { return s.Sum }},
	{"Median", func(s *stats.DescriptiveStats) float64 { return s.Median }},
	{"Mode", func(s *stats.DescriptiveStats) float64 { return s.Mode }},
	{"Variance", func(s *stats.DescriptiveStats) float64 { return s.Variance }},
	{"Std Dev", func(s *stats.DescriptiveStats) float64 { return s.StdDev }},
	{"Min", func(s *stats.DescriptiveStats) float64 { return s.Min }},
	{"Max", func(s *stats.DescriptiveStats) float64 { return s.Max }},
	{"Range", func(s *stats.DescriptiveStats) float64 { return s.Range }},
	{"Q1", func(s *stats.DescriptiveStats) float64 { return s.Q1 }},
	{"Q3", func(s *stats.DescriptiveStats) float64 { return s.Q3 }},
	{"IQR", func(s *stats.DescriptiveStats) float64 { return s.IQR }},
	{"Skewness", func(s *stats.DescriptiveStats) float64 { return s.Skewness }},
	{"Kurtosis", func(s *stats.DescriptiveStats) float64 { return s.Kurtosis }},
	{"RMS", func(s *stats.DescriptiveStats) float64 { return s.RMS }},
	{"Sum of Squares", func(s *stats.DescriptiveStats) float64 { return s.SumOfSquares }},
}

// WriteSummaries writes one table column per summarized column. Columns
// that failed are listed below the table with their error.
func WriteSummaries(w io.Writer, summaries []*analyzer.ColumnSummary) {
	var ok []*analyzer.ColumnSummary
	for _, s := range summaries {
		if s.Stats != nil {
			ok = append(ok, s)
		}
	}

	if len(ok) > 0 {
		tbl := tablewriter.NewWriter(w)
		header := []string{"Statistic"}
		for _, s := range ok {
			header = append(header, s.Column)
		}
		tbl.SetHeader(header)
		tbl.SetBorder(true)
		tbl.SetAlignment(tablewriter.ALIGN_RIGHT)

		tbl.Append(countRow("Count", ok, func(s *analyzer.ColumnSummary) int { return s.Stats.Count }))
		for _, r := range statRows {
			row := []string{r.name}
			for _, s := range ok {
				row = append(row, printer.Sprintf("%.2f", r.value(s.Stats)))
			}
			tbl.Append(row)
		}
		tbl.Append(countRow("Non-numeric", ok, func(s *analyzer.ColumnSummary) int { return s.Dropped }))
		tbl.Append(countRow("Empty", ok, func(s *analyzer.ColumnSummary) int { return s.Missing }))
		tbl.Render()
	}

	for _, s := range summaries {
		if s.Stats == nil {
			output(w, "%s\t%s\n", bold(s.Column), negative(s.Error))
		}
	}
}

func countRow(name string, summaries []*analyzer.ColumnSummary, count func(*analyzer.ColumnSummary) int) []string {
	row := []string{name}
	for _, s := range summaries {
		row = append(row, printer.Sprintf("%d", count(s)))
	}
	return row
}

// WriteDistribution writes the fitted parameters, the accuracy and the
// curve value at every point.
func WriteDistribution(w io.Writer, r *analyzer.DistributionReport) {
	c := r.Curve
	output(w, "Column:\t\t%s\n", bold(r.Column))
	output(w, "Distribution:\t%s (%s)\n", bold(string(c.Family)), c.Kind)
	for _, name := range sortedKeys(c.Parameters) {
		output(w, "  %s:\t%s\n", name, strconv.FormatFloat(c.Parameters[name], 'g', 6, 64))
	}
	output(w, "Accuracy:\t%s\n", bold(strconv.FormatFloat(c.Accuracy, 'f', distribution.AccuracyPrecision, 64)))
	if r.Dropped > 0 || r.Missing > 0 {
		output(w, "Skipped:\t%s non-numeric, %s empty\n", printer.Sprintf("%d", r.Dropped), printer.Sprintf("%d", r.Missing))
	}

	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Row", "Value", string(c.Family)})
	tbl.SetBorder(true)
	for i, label := range c.Labels {
		tbl.Append([]string{
			strconv.Itoa(label),
			strconv.FormatFloat(r.Series[i], 'g', -1, 64),
			strconv.FormatFloat(c.Values[i], 'g', 6, 64),
		})
	}
	tbl.Render()
}

// WriteTimeSeries writes the view's plots side by side, followed by the
// error metrics and the stationarity label.
func WriteTimeSeries(w io.Writer, r *analyzer.TimeSeriesReport) {
	output(w, "Series:\t\t%s against %s\n", bold(r.ValueColumn), bold(r.DateColumn))
	output(w, "View:\t\t%s\n", string(r.View))
	if r.Dropped > 0 {
		output(w, "Skipped:\t%s rows\n", printer.Sprintf("%d", r.Dropped))
	}

	if len(r.Plots) > 0 {
		tbl := tablewriter.NewWriter(w)
		header := []string{"Label"}
		for _, p := range r.Plots {
			header = append(header, p.Name)
		}
		tbl.SetHeader(header)
		tbl.SetBorder(true)
		for i, label := range r.Labels {
			row := []string{label}
			for _, p := range r.Plots {
				row = append(row, formatPoint(p.Values, i))
			}
			tbl.Append(row)
		}
		tbl.Render()
	}

	if r.Errors != nil {
		output(w, "MAE:\t\t%s\n", bold(strconv.FormatFloat(r.Errors.MAE, 'f', -1, 64)))
		output(w, "MSE:\t\t%s\n", bold(strconv.FormatFloat(r.Errors.MSE, 'f', -1, 64)))
	}
	if r.View == analyzer.ViewAutocorrelation {
		output(w, "95%% bound:\t±%s\n", strconv.FormatFloat(r.ConfidenceBound, 'f', -1, 64))
		output(w, "Significant:\t%v\n", r.SignificantLags)
		if r.LjungBox != nil {
			output(w, "Ljung-Box:\tQ=%s p=%s\n",
				strconv.FormatFloat(r.LjungBox.Statistic, 'f', -1, 64),
				strconv.FormatFloat(r.LjungBox.PValue, 'f', -1, 64))
		}
	}
	output(w, "The series is %s\n", stationarityLabel(r.Stationarity))
}

func stationarityLabel(s *timeseries.StationarityResult) string {
	if s.Stationary {
		return positive(s.Label)
	}
	return negative(s.Label)
}

// WriteFamilies lists the supported families of the given kinds.
func WriteFamilies(w io.Writer, kinds ...distribution.Kind) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Kind", "Family"})
	tbl.SetBorder(true)
	for _, k := range kinds {
		for _, f := range distribution.FamiliesOf(k) {
			tbl.Append([]string{string(k), string(f)})
		}
	}
	tbl.Render()
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatPoint(values []timeseries.NullFloat64, i int) string {
	if i >= len(values) || !values[i].Valid {
		return ""
	}
	return strconv.FormatFloat(values[i].Value, 'f', 4, 64)
}

// output the given message with formatting.
func output(w io.Writer, format string, a ...any) {
	_, err := fmt.Fprintf(w, format, a...)
	if err != nil {
		log.Println("output error", err.Error())
	}
}
