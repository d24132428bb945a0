package distribution

import (
	"fmt"
	"math"

	"github.com/sartorproj/tabstat"
	"gonum.org/v1/gonum/stat"
)

// AccuracyPrecision is the number of decimal places kept in Curve.Accuracy.
const AccuracyPrecision = 4

// Spec is a family together with the parameters used to evaluate it.
type Spec struct {
	Family     Family             `json:"family"`
	Kind       Kind               `json:"kind"`
	Parameters map[string]float64 `json:"parameters"`
}

// Curve is a family evaluated at every element of a series.
//
// Labels[i] is the 1-based row position of Values[i]. Accuracy is a
// per-family diagnostic scalar, not a goodness-of-fit statistic.
type Curve struct {
	Spec
	Labels   []int     `json:"labels"`
	Values   []float64 `json:"values"`
	Accuracy float64   `json:"accuracy"`
}

// sample holds the moments every family derives its parameters from.
type sample struct {
	values []float64
	n      int
	mean   float64
	std    float64 // population standard deviation
	min    float64
	max    float64
}

func newSample(values []float64) *sample {
	n := len(values)
	s := &sample{
		values: values,
		n:      n,
		mean:   stat.Mean(values, nil),
		min:    values[0],
		max:    values[0],
	}
	if n > 1 {
		s.std = math.Sqrt(stat.Variance(values, nil) * float64(n-1) / float64(n))
	}
	for _, v := range values[1:] {
		s.min = math.Min(s.min, v)
		s.max = math.Max(s.max, v)
	}
	return s
}

// model is a family instantiated for one sample.
type model struct {
	params   map[string]float64
	point    func(x float64) float64
	accuracy float64
}

type builder func(s *sample, cfg *Config) (*model, error)

var builders = map[Family]builder{
	Normal:           normalModel,
	Exponential:      exponentialModel,
	Uniform:          uniformModel,
	Gamma:            gammaModel,
	LogNormal:        logNormalModel,
	Beta:             betaModel,
	Weibull:          weibullModel,
	ChiSquare:        chiSquareModel,
	Cauchy:           cauchyModel,
	TDistribution:    studentsTModel,
	Binomial:         binomialModel,
	Poisson:          poissonModel,
	Geometric:        geometricModel,
	Bernoulli:        bernoulliModel,
	NegativeBinomial: negativeBinomialModel,
	Hypergeometric:   hypergeometricModel,
}

// Fit derives the family's parameters from values (or takes them from
// cfg for the fixed-parameter families), evaluates the density or mass
// function at every value and computes the family's accuracy scalar.
// A nil cfg uses DefaultConfig.
func Fit(values []float64, family Family, cfg *Config) (*Curve, error) {
	build, ok := builders[family]
	if !ok {
		return nil, fmt.Errorf("%w: unknown distribution family %q", tabstat.ErrInvalidSelection, family)
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: cannot fit %s", tabstat.ErrEmptySeries, family)
	}
	for i, v := range values {
		if !tabstat.IsFinite(v) {
			return nil, fmt.Errorf("%w: value at index %d is not finite", tabstat.ErrUndefined, i)
		}
	}

	m, err := build(newSample(values), cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", family, err)
	}

	for name, p := range m.params {
		if !tabstat.IsFinite(p) {
			return nil, fmt.Errorf("%s: %w: parameter %s is not finite", family, tabstat.ErrUndefined, name)
		}
	}
	if !tabstat.IsFinite(m.accuracy) {
		return nil, fmt.Errorf("%s: %w: accuracy is not finite", family, tabstat.ErrUndefined)
	}

	curve := &Curve{
		Spec: Spec{
			Family:     family,
			Kind:       family.Kind(),
			Parameters: m.params,
		},
		Labels:   make([]int, len(values)),
		Values:   make([]float64, len(values)),
		Accuracy: tabstat.Round(m.accuracy, AccuracyPrecision),
	}
	for i, x := range values {
		y := m.point(x)
		if !tabstat.IsFinite(y) {
			return nil, fmt.Errorf("%s: %w: curve is not finite at row %d (x=%g)", family, tabstat.ErrUndefined, i+1, x)
		}
		curve.Labels[i] = i + 1
		curve.Values[i] = y
	}

	return curve, nil
}

func divisionByZero(what string) error {
	return fmt.Errorf("%w: %s is zero", tabstat.ErrDivisionByZero, what)
}

func undefined(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", tabstat.ErrUndefined, fmt.Sprintf(format, args...))
}
