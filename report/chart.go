package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/sartorproj/tabstat/analyzer"
	"github.com/sartorproj/tabstat/timeseries"
)

// missingPoint is how ECharts marks a gap in a line.
const missingPoint = "-"

// newLineChart creates a line chart with the common toolbox and legend.
func newLineChart(title, subtitle string) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		PageTitle: title,
		Theme:     types.ThemeWesteros,
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}))
	return chart
}

// convertPlotData converts a plot into line points, keeping gaps.
func convertPlotData(values []timeseries.NullFloat64) []opts.LineData {
	items := make([]opts.LineData, 0, len(values))
	for _, v := range values {
		if !v.Valid {
			items = append(items, opts.LineData{Value: missingPoint})
			continue
		}
		items = append(items, opts.LineData{Value: v.Value})
	}
	return items
}

// TimeSeriesChart plots every line of a time-series report on the
// report's label axis.
func TimeSeriesChart(r *analyzer.TimeSeriesReport) *charts.Line {
	subtitle := fmt.Sprintf("%s against %s", r.ValueColumn, r.DateColumn)
	if r.Stationarity != nil {
		subtitle += ", " + r.Stationarity.Label
	}
	chart := newLineChart(string(r.View), subtitle)
	chart.SetXAxis(r.Labels)
	for _, p := range r.Plots {
		chart.AddSeries(p.Name, convertPlotData(p.Values))
	}
	return chart
}

// DistributionChart plots the curve of a distribution report against
// the row positions.
func DistributionChart(r *analyzer.DistributionReport) *charts.Line {
	c := r.Curve
	chart := newLineChart(string(c.Family), fmt.Sprintf("%s, accuracy %.4f", r.Column, c.Accuracy))
	chart.SetXAxis(c.Labels)

	items := make([]opts.LineData, len(c.Values))
	for i, v := range c.Values {
		items[i] = opts.LineData{Value: v}
	}
	chart.AddSeries(string(c.Family), items)
	return chart
}

// RenderChart writes the charts as one HTML page.
func RenderChart(w io.Writer, items ...components.Charter) error {
	page := components.NewPage()
	page.AddCharts(items...)
	return page.Render(w)
}
