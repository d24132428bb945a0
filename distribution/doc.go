// Package distribution evaluates probability distribution families over
// a numeric series.
//
// Sixteen families are supported, grouped by kind:
//
//	Continuous: Normal, Exponential, Uniform, Gamma, Log-Normal, Beta,
//	            Weibull, Chi-Square, Cauchy, T-Distribution
//	Discrete:   Binomial, Poisson, Geometric, Bernoulli,
//	            Negative Binomial, Hypergeometric
//
// # Fitting a Curve
//
// Fit derives each family's parameters from the series mean, population
// standard deviation, extremes or length, evaluates the density (or mass)
// at every value and reports an accuracy scalar:
//
//	curve, err := distribution.Fit(values, distribution.Exponential, nil)
//	// curve.Parameters["rate"] == 1/mean
//	// curve.Values[i] == rate * exp(-rate*values[i])
//	// curve.Accuracy == rate, rounded to four decimals
//
// The Normal family maps each value to its z-score rather than to a
// density. Accuracy is a fixed per-family formula, not a goodness-of-fit
// measure.
//
// # Fixed Parameters
//
// Gamma shape, Beta alpha/beta, Weibull shape and the Binomial, Negative
// Binomial and Hypergeometric parameters are not estimated. They come
// from Config:
//
//	cfg := distribution.DefaultConfig()
//	cfg.GammaShape = 3
//	curve, err := distribution.Fit(values, distribution.Gamma, cfg)
//
// # Selecting a Family
//
// Families are addressed by their display tags:
//
//	f, err := distribution.Select("Discrete", "negative binomial")
//
// # Errors
//
// A parameter that divides by a zero mean, standard deviation, range or
// degree of freedom fails with tabstat.ErrDivisionByZero. Any other
// non-finite parameter, curve point or accuracy fails with
// tabstat.ErrUndefined. Unknown tags fail with tabstat.ErrInvalidSelection.
package distribution
