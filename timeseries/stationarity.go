package timeseries

import (
	"fmt"
	"math"

	"github.com/sartorproj/tabstat"
)

// Stationarity labels.
const (
	LabelStationary    = "Stationary"
	LabelNonStationary = "Non-Stationary"
)

// StationarityResult represents the result of the split-half mean test.
type StationarityResult struct {
	Label      string  `json:"label"`
	Stationary bool    `json:"stationary"`
	FirstMean  float64 `json:"firstMean"`
	SecondMean float64 `json:"secondMean"`
}

// Stationarity splits the series at floor(n/2) and calls it stationary
// when the means of the two halves differ by less than threshold. This
// is a coarse heuristic, not a unit-root test.
func Stationarity(values []float64, threshold float64) (*StationarityResult, error) {
	if !(threshold > 0) {
		return nil, fmt.Errorf("%w: threshold must be positive, got %g", tabstat.ErrInvalidParameter, threshold)
	}
	if err := requireLength(values, 2, "stationarity test"); err != nil {
		return nil, err
	}

	s := &Series{Values: values}
	half := s.Len() / 2
	r := &StationarityResult{
		FirstMean:  s.Slice(0, half).Mean(),
		SecondMean: s.Slice(half, s.Len()).Mean(),
	}
	if !tabstat.IsFinite(r.FirstMean) || !tabstat.IsFinite(r.SecondMean) {
		return nil, fmt.Errorf("%w: half means overflowed", tabstat.ErrUndefined)
	}
	r.Stationary = math.Abs(r.FirstMean-r.SecondMean) < threshold
	r.Label = LabelNonStationary
	if r.Stationary {
		r.Label = LabelStationary
	}
	return r, nil
}
