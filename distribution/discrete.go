package distribution

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
	"gonum.org/v1/gonum/stat/distuv"
)

// isCount reports whether x is a non-negative integer.
func isCount(x float64) bool {
	return x >= 0 && math.Floor(x) == x
}

// degenerate is the mass function of a point mass at k.
func degenerate(k float64) func(float64) float64 {
	return func(x float64) float64 {
		if x == k {
			return 1
		}
		return 0
	}
}

func binomialModel(_ *sample, cfg *Config) (*model, error) {
	trials, p := float64(cfg.BinomialTrials), cfg.BinomialP
	m := &model{
		params:   map[string]float64{"trials": trials, "p": p},
		accuracy: trials * p,
	}
	switch p {
	case 0:
		m.point = degenerate(0)
	case 1:
		m.point = degenerate(trials)
	default:
		dist := distuv.Binomial{N: trials, P: p}
		m.point = func(x float64) float64 {
			if !isCount(x) || x > trials {
				return 0
			}
			return dist.Prob(x)
		}
	}
	return m, nil
}

func poissonModel(s *sample, _ *Config) (*model, error) {
	lambda := s.mean
	if lambda < 0 {
		return nil, undefined("negative rate %g", lambda)
	}
	m := &model{
		params:   map[string]float64{"lambda": lambda},
		accuracy: lambda,
	}
	if lambda == 0 {
		m.point = degenerate(0)
		return m, nil
	}
	dist := distuv.Poisson{Lambda: lambda}
	m.point = func(x float64) float64 {
		if !isCount(x) {
			return 0
		}
		return dist.Prob(x)
	}
	return m, nil
}

// geometricModel evaluates p(1-p)^(x-1) at every value as given.
func geometricModel(s *sample, _ *Config) (*model, error) {
	if s.mean == 0 {
		return nil, divisionByZero("mean")
	}
	p := 1 / s.mean
	return &model{
		params: map[string]float64{"p": p},
		point: func(x float64) float64 {
			return p * math.Pow(1-p, x-1)
		},
		accuracy: p,
	}, nil
}

// bernoulliModel takes the mean as the success probability.
func bernoulliModel(s *sample, _ *Config) (*model, error) {
	p := s.mean
	return &model{
		params: map[string]float64{"p": p},
		point: func(x float64) float64 {
			if x != 0 {
				return p
			}
			return 1 - p
		},
		accuracy: p,
	}, nil
}

// negativeBinomialModel counts failures before the r-th success:
// P(X=k) = C(k+r-1, k) p^r (1-p)^k.
func negativeBinomialModel(_ *sample, cfg *Config) (*model, error) {
	r, p := float64(cfg.NegBinomialR), cfg.NegBinomialP
	return &model{
		params: map[string]float64{"r": r, "p": p},
		point: func(k float64) float64 {
			if !isCount(k) {
				return 0
			}
			logC := combin.LogGeneralizedBinomial(k+r-1, k)
			return math.Exp(logC + r*math.Log(p) + k*math.Log1p(-p))
		},
		accuracy: r * p,
	}, nil
}

// hypergeometricModel: P(X=k) = C(K,k) C(N-K,n-k) / C(N,n).
func hypergeometricModel(_ *sample, cfg *Config) (*model, error) {
	N := float64(cfg.HyperPopulation)
	K := float64(cfg.HyperSuccesses)
	n := float64(cfg.HyperDraws)
	lo := math.Max(0, n+K-N)
	hi := math.Min(K, n)
	logTotal := combin.LogGeneralizedBinomial(N, n)

	return &model{
		params: map[string]float64{"population": N, "successes": K, "draws": n},
		point: func(k float64) float64 {
			if !isCount(k) || k < lo || k > hi {
				return 0
			}
			return math.Exp(combin.LogGeneralizedBinomial(K, k) +
				combin.LogGeneralizedBinomial(N-K, n-k) - logTotal)
		},
		accuracy: K / N,
	}, nil
}
