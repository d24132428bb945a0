package timeseries

import (
	"fmt"

	"github.com/sartorproj/tabstat"
)

// Forecast extends the series by horizon steps. Step j (j = n..n+h-1)
// is the trend at j plus the detrended observation at j mod n, i.e. the
// whole observed series is treated as one seasonal period.
func Forecast(values []float64, horizon int) ([]float64, error) {
	if horizon < 0 {
		return nil, fmt.Errorf("%w: horizon must not be negative, got %d", tabstat.ErrInvalidParameter, horizon)
	}
	trend, err := LinearTrend(values)
	if err != nil {
		return nil, err
	}

	n := len(values)
	result := make([]float64, horizon)
	for j := n; j < n+horizon; j++ {
		season := j % n
		result[j-n] = trend.At(float64(j)) + values[season] - trend.At(float64(season))
		if !tabstat.IsFinite(result[j-n]) {
			return nil, fmt.Errorf("%w: forecast step %d overflows", tabstat.ErrUndefined, j-n+1)
		}
	}
	return result, nil
}

// ForecastLabels returns the axis labels of the forecast steps,
// "Forecast 1" through "Forecast <horizon>".
func ForecastLabels(horizon int) []string {
	labels := make([]string, horizon)
	for i := range labels {
		labels[i] = fmt.Sprintf("Forecast %d", i+1)
	}
	return labels
}
