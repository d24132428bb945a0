package distribution

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// normalModel maps every value to its z-score.
func normalModel(s *sample, _ *Config) (*model, error) {
	if s.std == 0 {
		return nil, divisionByZero("standard deviation")
	}
	if s.mean == 0 {
		return nil, divisionByZero("mean")
	}
	mean, std := s.mean, s.std
	return &model{
		params: map[string]float64{"mean": mean, "stdDev": std},
		point: func(x float64) float64 {
			return (x - mean) / std
		},
		accuracy: 1 - std/mean,
	}, nil
}

func exponentialModel(s *sample, _ *Config) (*model, error) {
	if s.mean == 0 {
		return nil, divisionByZero("mean")
	}
	lambda := 1 / s.mean
	return &model{
		params: map[string]float64{"rate": lambda},
		point: func(x float64) float64 {
			return lambda * math.Exp(-lambda*x)
		},
		accuracy: lambda,
	}, nil
}

func uniformModel(s *sample, _ *Config) (*model, error) {
	if s.max == s.min {
		return nil, divisionByZero("range")
	}
	dist := distuv.Uniform{Min: s.min, Max: s.max}
	return &model{
		params:   map[string]float64{"min": s.min, "max": s.max},
		point:    dist.Prob,
		accuracy: s.max - s.min,
	}, nil
}

func gammaModel(s *sample, cfg *Config) (*model, error) {
	shape := cfg.GammaShape
	scale := s.mean / shape
	if scale == 0 {
		return nil, divisionByZero("scale (mean)")
	}
	if scale < 0 {
		return nil, undefined("negative scale %g", scale)
	}
	dist := distuv.Gamma{Alpha: shape, Beta: 1 / scale}
	return &model{
		params:   map[string]float64{"shape": shape, "scale": scale},
		point:    nonNegative(dist.Prob),
		accuracy: shape * scale,
	}, nil
}

func logNormalModel(s *sample, _ *Config) (*model, error) {
	if s.mean <= 0 {
		return nil, undefined("logarithm of non-positive mean %g", s.mean)
	}
	if s.std == 0 {
		return nil, divisionByZero("standard deviation")
	}
	logMean := math.Log(s.mean)
	logStdDev := math.Log(s.std)
	if logStdDev == 0 {
		return nil, divisionByZero("log standard deviation")
	}
	if logStdDev < 0 {
		return nil, undefined("negative log standard deviation %g", logStdDev)
	}
	dist := distuv.LogNormal{Mu: logMean, Sigma: logStdDev}
	return &model{
		params: map[string]float64{"logMean": logMean, "logStdDev": logStdDev},
		point: func(x float64) float64 {
			if x <= 0 {
				return 0
			}
			return dist.Prob(x)
		},
		accuracy: 1 / logStdDev,
	}, nil
}

func betaModel(_ *sample, cfg *Config) (*model, error) {
	alpha, beta := cfg.BetaAlpha, cfg.BetaBeta
	dist := distuv.Beta{Alpha: alpha, Beta: beta}
	return &model{
		params: map[string]float64{"alpha": alpha, "beta": beta},
		point: func(x float64) float64 {
			if x < 0 || x > 1 {
				return 0
			}
			return dist.Prob(x)
		},
		accuracy: alpha / (alpha + beta),
	}, nil
}

func weibullModel(s *sample, cfg *Config) (*model, error) {
	scale, shape := s.mean, cfg.WeibullShape
	if scale == 0 {
		return nil, divisionByZero("scale (mean)")
	}
	if scale < 0 {
		return nil, undefined("negative scale %g", scale)
	}
	dist := distuv.Weibull{K: shape, Lambda: scale}
	return &model{
		params:   map[string]float64{"scale": scale, "shape": shape},
		point:    nonNegative(dist.Prob),
		accuracy: scale / shape,
	}, nil
}

func chiSquareModel(s *sample, _ *Config) (*model, error) {
	df := float64(s.n - 1)
	if df == 0 {
		return nil, divisionByZero("degrees of freedom")
	}
	dist := distuv.ChiSquared{K: df}
	return &model{
		params: map[string]float64{"degreesOfFreedom": df},
		point: func(x float64) float64 {
			switch {
			case x < 0:
				return 0
			case x == 0 && df == 2:
				return 0.5
			case x == 0 && df > 2:
				return 0
			}
			return dist.Prob(x)
		},
		accuracy: 1 / df,
	}, nil
}

func cauchyModel(s *sample, _ *Config) (*model, error) {
	location, scale := s.mean, s.std
	if scale == 0 {
		return nil, divisionByZero("scale (standard deviation)")
	}
	return &model{
		params: map[string]float64{"location": location, "scale": scale},
		point: func(x float64) float64 {
			z := (x - location) / scale
			return 1 / (math.Pi * scale * (1 + z*z))
		},
		accuracy: 1 / scale,
	}, nil
}

func studentsTModel(s *sample, _ *Config) (*model, error) {
	df := float64(s.n - 1)
	if df == 0 {
		return nil, divisionByZero("degrees of freedom")
	}
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return &model{
		params:   map[string]float64{"degreesOfFreedom": df},
		point:    dist.Prob,
		accuracy: 1 / df,
	}, nil
}

// nonNegative restricts a density with support [0, inf) to that support.
func nonNegative(pdf func(float64) float64) func(float64) float64 {
	return func(x float64) float64 {
		if x < 0 {
			return 0
		}
		return pdf(x)
	}
}
