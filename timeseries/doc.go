// Package timeseries provides the time-series analysis engine.
//
// Every operation is a pure function of a []float64 and its parameters.
// Failures are reported with the error kinds of the tabstat package:
// too-short series return tabstat.ErrInsufficientData, out-of-range
// parameters tabstat.ErrInvalidParameter.
//
// # Creating a Series
//
// A Series pairs the values with their time-axis labels:
//
//	series, err := timeseries.NewSeries("sales", labels, values)
//
// # Smoothing
//
//	ma, err := timeseries.MovingAverage(values, timeseries.DefaultWindow)
//	// ma[i].Valid is false for the first window-1 entries
//
//	ema, err := timeseries.ExponentialMovingAverage(values)
//
// # Differencing
//
//	diff, err := timeseries.Difference(values, 1)
//	back := timeseries.CumulativeSum(diff) // back[i] + values[0] == values[i+1]
//
// # Trend and Forecast
//
//	trend, err := timeseries.LinearTrend(values)
//	fmt.Println(trend.Slope, trend.Intercept, trend.At(10))
//
//	fc, err := timeseries.Forecast(values, timeseries.DefaultHorizon)
//
// The forecast treats the whole observed series as one seasonal period:
// step j is trend(j) + values[j mod n] - trend(j mod n).
//
// # Error Metrics
//
//	m, err := timeseries.MovingAverageErrors(values, 5)
//	fmt.Println(m.MAE, m.MSE)
//
// # Autocorrelation
//
//	acf, err := timeseries.Autocorrelation(values, timeseries.DefaultMaxLag)
//	bound := timeseries.ACFConfidenceBound(len(values))
//	lags := timeseries.SignificantLags(acf, bound)
//
//	lb, err := timeseries.LjungBox(values, 10)
//	if lb.PValue < 0.05 {
//	    fmt.Println("significant autocorrelation")
//	}
//
// # Stationarity
//
//	r, err := timeseries.Stationarity(values, timeseries.DefaultThreshold)
//	fmt.Println(r.Label) // "Stationary" or "Non-Stationary"
package timeseries
