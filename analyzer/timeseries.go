package analyzer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sartorproj/tabstat"
	"github.com/sartorproj/tabstat/dataset"
	"github.com/sartorproj/tabstat/timeseries"
)

// View selects what a time-series request plots.
type View string

const (
	ViewOriginal        View = "Original Data"
	ViewMovingAverage   View = "Moving Average"
	ViewAutocorrelation View = "Autocorrelation"
	ViewTrend           View = "Trend Line"
	ViewForecast        View = "Forecast"
	ViewEMA             View = "Exponential Moving Average (EMA)"
	ViewDifferencing    View = "Differencing"
	ViewStationarity    View = "Stationarity Test"
	ViewAll             View = "All Graphs"
)

var views = []View{
	ViewOriginal, ViewMovingAverage, ViewAutocorrelation, ViewTrend, ViewForecast,
	ViewEMA, ViewDifferencing, ViewStationarity, ViewAll,
}

// Views returns every view in display order.
func Views() []View {
	out := make([]View, len(views))
	copy(out, views)
	return out
}

// ParseView resolves a view tag, ignoring case and surrounding space.
// An empty tag selects ViewOriginal.
func ParseView(tag string) (View, error) {
	t := strings.TrimSpace(tag)
	if t == "" {
		return ViewOriginal, nil
	}
	for _, v := range views {
		if strings.EqualFold(string(v), t) {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: unknown analysis view %q", tabstat.ErrInvalidSelection, tag)
}

// TimeSeriesRequest selects the axis, the values and the view.
type TimeSeriesRequest struct {
	DateColumn  string
	ValueColumn string
	View        View
}

// Plot is one named line. Values[i] belongs to the report's Labels[i];
// a plot may be shorter than the label axis.
type Plot struct {
	Name   string                   `json:"name"`
	Values []timeseries.NullFloat64 `json:"values"`
}

// TimeSeriesReport is the result of a time-series request.
type TimeSeriesReport struct {
	DateColumn  string `json:"dateColumn"`
	ValueColumn string `json:"valueColumn"`
	View        View   `json:"view"`
	Dropped     int    `json:"dropped"`

	Labels []string `json:"labels"`
	Plots  []Plot   `json:"plots"`

	// Errors scores the moving average; nil when the series is shorter
	// than the window.
	Errors       *timeseries.ErrorMetrics       `json:"errors,omitempty"`
	Stationarity *timeseries.StationarityResult `json:"stationarity"`

	// Set for the autocorrelation view only. LjungBox is nil for series
	// too short for the test.
	ConfidenceBound float64                    `json:"confidenceBound,omitempty"`
	SignificantLags []int                      `json:"significantLags,omitempty"`
	LjungBox        *timeseries.LjungBoxResult `json:"ljungBox,omitempty"`
}

// TimeSeries analyzes the value column against the date column and
// returns the plots of the requested view together with the error
// metrics and the stationarity label.
func (a *Analyzer) TimeSeries(t *dataset.Table, req TimeSeriesRequest) (*TimeSeriesReport, error) {
	view, err := ParseView(string(req.View))
	if err != nil {
		a.log.Warningf("time series: %v", err)
		return nil, err
	}
	pairs, err := dataset.ExtractPairs(t, req.DateColumn, req.ValueColumn)
	if err != nil {
		a.log.Warningf("time series: %v", err)
		return nil, err
	}
	if pairs.Dropped > 0 {
		a.log.Infof("time series %q/%q: %d rows skipped", req.DateColumn, req.ValueColumn, pairs.Dropped)
	}
	series, err := timeseries.NewSeries(pairs.ValueColumn, pairs.Labels, pairs.Values)
	if err != nil {
		return nil, err
	}

	o := a.opts
	key := newFingerprint("timeseries").
		str(string(view)).
		int(o.Window).int(o.Horizon).int(o.MaxLag).float(o.Threshold).
		strs(series.Labels).floats(series.Values).
		sum()
	v, err := a.memo(key, func() (interface{}, error) {
		return a.timeSeries(series, view)
	})
	if err != nil {
		a.log.Warningf("time series %q (%s): %v", req.ValueColumn, view, err)
		return nil, err
	}

	// the cached report is shared; copy before filling in request fields
	report := *v.(*TimeSeriesReport)
	report.DateColumn = req.DateColumn
	report.ValueColumn = req.ValueColumn
	report.Dropped = pairs.Dropped
	a.log.Infof("time series %q (%s): %d points", req.ValueColumn, view, series.Len())
	return &report, nil
}

func (a *Analyzer) timeSeries(s *timeseries.Series, view View) (*TimeSeriesReport, error) {
	values := s.Values
	if err := requireSeries(values); err != nil {
		return nil, err
	}

	r := &TimeSeriesReport{View: view}

	stationarity, err := timeseries.Stationarity(values, a.opts.Threshold)
	if err != nil {
		return nil, err
	}
	stationarity.FirstMean = tabstat.Round(stationarity.FirstMean, ScalarPrecision)
	stationarity.SecondMean = tabstat.Round(stationarity.SecondMean, ScalarPrecision)
	r.Stationarity = stationarity

	if metrics, err := timeseries.MovingAverageErrors(values, a.opts.Window); err == nil {
		metrics.MAE = tabstat.Round(metrics.MAE, ScalarPrecision)
		metrics.MSE = tabstat.Round(metrics.MSE, ScalarPrecision)
		r.Errors = metrics
	} else if !errors.Is(err, tabstat.ErrInsufficientData) {
		return nil, err
	}

	axis := labels(s)
	switch view {
	case ViewStationarity:
	case ViewAutocorrelation:
		err = a.autocorrelationView(r, values)
	case ViewDifferencing:
		r.Labels = axis[1:]
		err = a.addPlots(r, values, ViewDifferencing)
	case ViewOriginal, ViewMovingAverage, ViewTrend, ViewEMA:
		r.Labels = axis
		err = a.addPlots(r, values, view)
	case ViewForecast:
		r.Labels = append(axis, timeseries.ForecastLabels(a.opts.Horizon)...)
		err = a.addPlots(r, values, ViewForecast)
	case ViewAll:
		r.Labels = append(axis, timeseries.ForecastLabels(a.opts.Horizon)...)
		err = a.addPlots(r, values,
			ViewOriginal, ViewMovingAverage, ViewTrend, ViewForecast, ViewEMA, ViewDifferencing)
	default:
		err = fmt.Errorf("%w: unknown analysis view %q", tabstat.ErrInvalidSelection, view)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// addPlots appends one line per view in order.
func (a *Analyzer) addPlots(r *TimeSeriesReport, values []float64, lines ...View) error {
	for _, line := range lines {
		var (
			plot []timeseries.NullFloat64
			err  error
		)
		switch line {
		case ViewOriginal:
			plot = defined(values)
		case ViewMovingAverage:
			plot, err = timeseries.MovingAverage(values, a.opts.Window)
		case ViewTrend:
			var trend *timeseries.Trend
			if trend, err = timeseries.LinearTrend(values); err == nil {
				plot = defined(trend.Fitted)
			}
		case ViewForecast:
			var fc []float64
			if fc, err = timeseries.Forecast(values, a.opts.Horizon); err == nil {
				plot = defined(append(append([]float64{}, values...), fc...))
			}
		case ViewEMA:
			var ema []float64
			if ema, err = timeseries.ExponentialMovingAverage(values); err == nil {
				plot = defined(ema)
			}
		case ViewDifferencing:
			var diff []float64
			if diff, err = timeseries.Difference(values, 1); err == nil {
				plot = defined(diff)
			}
		}
		if err != nil {
			return err
		}
		r.Plots = append(r.Plots, Plot{Name: string(line), Values: plot})
	}
	return nil
}

func (a *Analyzer) autocorrelationView(r *TimeSeriesReport, values []float64) error {
	acf, err := timeseries.Autocorrelation(values, a.opts.MaxLag)
	if err != nil {
		return err
	}

	r.Labels = make([]string, len(acf))
	for i := range acf {
		r.Labels[i] = strconv.Itoa(i + 1)
	}
	r.Plots = []Plot{{Name: string(ViewAutocorrelation), Values: defined(acf)}}
	r.ConfidenceBound = tabstat.Round(timeseries.ACFConfidenceBound(len(values)), ScalarPrecision)
	r.SignificantLags = timeseries.SignificantLags(acf, timeseries.ACFConfidenceBound(len(values)))

	lb, err := timeseries.LjungBox(values, len(acf))
	switch {
	case errors.Is(err, tabstat.ErrInsufficientData):
	case err != nil:
		return err
	default:
		lb.Statistic = tabstat.Round(lb.Statistic, ScalarPrecision)
		lb.PValue = tabstat.Round(lb.PValue, ScalarPrecision)
		r.LjungBox = lb
	}
	return nil
}

func requireSeries(values []float64) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: no rows with both a label and a numeric value", tabstat.ErrEmptySeries)
	}
	if len(values) < 2 {
		return fmt.Errorf("%w: time series needs at least 2 values, got %d", tabstat.ErrInsufficientData, len(values))
	}
	return nil
}

// labels returns a fresh copy of the series axis.
func labels(s *timeseries.Series) []string {
	out := make([]string, s.Len())
	for i := range out {
		out[i] = s.Label(i)
	}
	return out
}

func defined(values []float64) []timeseries.NullFloat64 {
	out := make([]timeseries.NullFloat64, len(values))
	for i, v := range values {
		out[i] = timeseries.NullFloat64{Value: v, Valid: true}
	}
	return out
}
