package timeseries

import (
	"fmt"

	"github.com/sartorproj/tabstat"
	"gonum.org/v1/gonum/stat/distuv"
)

// LjungBoxMinLength is the shortest series the Ljung-Box test accepts.
const LjungBoxMinLength = 10

// LjungBoxResult represents the result of a Ljung-Box test.
type LjungBoxResult struct {
	Statistic float64 `json:"statistic"`
	PValue    float64 `json:"pValue"`
	Lags      int     `json:"lags"`
}

// LjungBox performs the Ljung-Box test for autocorrelation up to lags.
// The null hypothesis is that there is no autocorrelation; a p-value
// below 0.05 rejects it.
//
// The statistic uses the conventional sample autocorrelation
// r_k = acf[k]*(n-k)/n, where acf is the output of Autocorrelation.
func LjungBox(values []float64, lags int) (*LjungBoxResult, error) {
	if lags < 1 {
		return nil, fmt.Errorf("%w: lags must be positive, got %d", tabstat.ErrInvalidParameter, lags)
	}
	if err := requireLength(values, LjungBoxMinLength, "Ljung-Box test"); err != nil {
		return nil, err
	}

	acf, err := Autocorrelation(values, lags)
	if err != nil {
		return nil, err
	}
	lags = len(acf)

	n := len(values)
	q := 0.0
	for i, a := range acf {
		k := i + 1
		r := a * float64(n-k) / float64(n)
		q += r * r / float64(n-k)
	}
	q *= float64(n * (n + 2))

	return &LjungBoxResult{
		Statistic: q,
		PValue:    distuv.ChiSquared{K: float64(lags)}.Survival(q),
		Lags:      lags,
	}, nil
}
