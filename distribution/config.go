package distribution

import (
	"fmt"

	"github.com/sartorproj/tabstat"
)

// Config holds the fixed parameters of the families that are not
// estimated from the series. The defaults reproduce the reference
// outputs and should only be overridden deliberately.
type Config struct {
	GammaShape float64 // Gamma shape k (default: 2)

	BetaAlpha float64 // Beta alpha (default: 2)
	BetaBeta  float64 // Beta beta (default: 5)

	WeibullShape float64 // Weibull shape k (default: 1.5)

	BinomialTrials int     // Binomial number of trials (default: 10)
	BinomialP      float64 // Binomial success probability (default: 0.5)

	NegBinomialR int     // Negative binomial number of successes (default: 5)
	NegBinomialP float64 // Negative binomial success probability (default: 0.5)

	HyperPopulation int // Hypergeometric population size N (default: 50)
	HyperSuccesses  int // Hypergeometric success states K (default: 20)
	HyperDraws      int // Hypergeometric draws n (default: 10)
}

// DefaultConfig returns the default family parameters.
func DefaultConfig() *Config {
	return &Config{
		GammaShape:      2,
		BetaAlpha:       2,
		BetaBeta:        5,
		WeibullShape:    1.5,
		BinomialTrials:  10,
		BinomialP:       0.5,
		NegBinomialR:    5,
		NegBinomialP:    0.5,
		HyperPopulation: 50,
		HyperSuccesses:  20,
		HyperDraws:      10,
	}
}

// Validate checks that every parameter lies in its family's domain.
func (c *Config) Validate() error {
	switch {
	case !(c.GammaShape > 0):
		return invalidParam("gamma shape must be positive")
	case !(c.BetaAlpha > 0) || !(c.BetaBeta > 0):
		return invalidParam("beta alpha and beta must be positive")
	case !(c.WeibullShape > 0):
		return invalidParam("weibull shape must be positive")
	case c.BinomialTrials < 0:
		return invalidParam("binomial trials must not be negative")
	case !(c.BinomialP >= 0 && c.BinomialP <= 1):
		return invalidParam("binomial p must be within [0, 1]")
	case c.NegBinomialR < 1:
		return invalidParam("negative binomial r must be at least 1")
	case !(c.NegBinomialP > 0 && c.NegBinomialP < 1):
		return invalidParam("negative binomial p must be within (0, 1)")
	case c.HyperPopulation < 1:
		return invalidParam("hypergeometric population must be positive")
	case c.HyperSuccesses < 0 || c.HyperSuccesses > c.HyperPopulation:
		return invalidParam("hypergeometric successes must be within [0, population]")
	case c.HyperDraws < 0 || c.HyperDraws > c.HyperPopulation:
		return invalidParam("hypergeometric draws must be within [0, population]")
	}
	return nil
}

func invalidParam(msg string) error {
	return fmt.Errorf("%w: %s", tabstat.ErrInvalidParameter, msg)
}
