package analyzer

import (
	"github.com/sartorproj/tabstat/dataset"
	"github.com/sartorproj/tabstat/distribution"
)

// DistributionReport is a family curve over one column.
type DistributionReport struct {
	Column  string              `json:"column"`
	Series  []float64           `json:"series"`
	Curve   *distribution.Curve `json:"curve"`
	Dropped int                 `json:"dropped"`
	Missing int                 `json:"missing"`
}

// Distribution fits the family named by familyTag to the numeric cells
// of column. A non-empty kindTag must match the family's kind.
func (a *Analyzer) Distribution(t *dataset.Table, column, kindTag, familyTag string) (*DistributionReport, error) {
	family, err := distribution.Select(kindTag, familyTag)
	if err != nil {
		a.log.Warningf("distribution %q: %v", familyTag, err)
		return nil, err
	}
	ex, err := dataset.Extract(t, column)
	if err != nil {
		a.log.Warningf("distribution %q: %v", column, err)
		return nil, err
	}

	cfg := a.opts.Distribution
	key := newFingerprint("distribution").
		str(string(family)).
		float(cfg.GammaShape).float(cfg.BetaAlpha).float(cfg.BetaBeta).float(cfg.WeibullShape).
		int(cfg.BinomialTrials).float(cfg.BinomialP).
		int(cfg.NegBinomialR).float(cfg.NegBinomialP).
		int(cfg.HyperPopulation).int(cfg.HyperSuccesses).int(cfg.HyperDraws).
		floats(ex.Values).
		sum()
	v, err := a.memo(key, func() (interface{}, error) {
		return distribution.Fit(ex.Values, family, cfg)
	})
	if err != nil {
		a.log.Warningf("distribution %s on %q: %v", family, column, err)
		return nil, err
	}

	a.log.Infof("fitted %s to %q (%d values)", family, column, len(ex.Values))
	return &DistributionReport{
		Column:  column,
		Series:  ex.Values,
		Curve:   copyCurve(v.(*distribution.Curve)),
		Dropped: ex.Dropped,
		Missing: ex.Missing,
	}, nil
}

// copyCurve returns a deep copy of a cached curve.
func copyCurve(c *distribution.Curve) *distribution.Curve {
	out := *c
	out.Parameters = make(map[string]float64, len(c.Parameters))
	for k, v := range c.Parameters {
		out.Parameters[k] = v
	}
	out.Labels = append([]int(nil), c.Labels...)
	out.Values = append([]float64(nil), c.Values...)
	return &out
}
