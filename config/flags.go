package config

import (
	"github.com/sartorproj/tabstat/analyzer"
	"github.com/sartorproj/tabstat/distribution"
	"github.com/sartorproj/tabstat/timeseries"
	"github.com/urfave/cli/v2"
)

var (
	defaultDistribution = distribution.DefaultConfig()
	defaultOptions      = analyzer.DefaultOptions()
)

// analysis flags
var (
	WindowFlag = cli.IntFlag{
		Name:  "window",
		Usage: "moving average window",
		Value: timeseries.DefaultWindow,
	}
	HorizonFlag = cli.IntFlag{
		Name:  "horizon",
		Usage: "number of forecast steps",
		Value: timeseries.DefaultHorizon,
	}
	MaxLagFlag = cli.IntFlag{
		Name:  "max-lag",
		Usage: "highest autocorrelation lag",
		Value: timeseries.DefaultMaxLag,
	}
	ThresholdFlag = cli.Float64Flag{
		Name:  "threshold",
		Usage: "largest difference of the split-half means still called stationary",
		Value: timeseries.DefaultThreshold,
	}
	CacheFlag = cli.IntFlag{
		Name:  "cache",
		Usage: "number of memoized analysis results (0 disables the cache)",
		Value: defaultOptions.CacheSize,
	}
	KindFlag = cli.StringFlag{
		Name:  "kind",
		Usage: "distribution kind (\"Continuous\" or \"Discrete\"); empty accepts any family",
	}
	ViewFlag = cli.StringFlag{
		Name:  "view",
		Usage: "time-series view, e.g. \"Moving Average\" or \"All Graphs\"",
		Value: string(analyzer.ViewOriginal),
	}
)

// input flags
var (
	DelimiterFlag = cli.StringFlag{
		Name:  "delimiter",
		Usage: "CSV field delimiter",
		Value: ",",
	}
)

// distribution parameter flags
var (
	GammaShapeFlag = cli.Float64Flag{
		Name:  "gamma-shape",
		Usage: "Gamma shape",
		Value: defaultDistribution.GammaShape,
	}
	BetaAlphaFlag = cli.Float64Flag{
		Name:  "beta-alpha",
		Usage: "Beta alpha",
		Value: defaultDistribution.BetaAlpha,
	}
	BetaBetaFlag = cli.Float64Flag{
		Name:  "beta-beta",
		Usage: "Beta beta",
		Value: defaultDistribution.BetaBeta,
	}
	WeibullShapeFlag = cli.Float64Flag{
		Name:  "weibull-shape",
		Usage: "Weibull shape",
		Value: defaultDistribution.WeibullShape,
	}
	BinomialTrialsFlag = cli.IntFlag{
		Name:  "binomial-trials",
		Usage: "Binomial number of trials",
		Value: defaultDistribution.BinomialTrials,
	}
	BinomialPFlag = cli.Float64Flag{
		Name:  "binomial-p",
		Usage: "Binomial success probability",
		Value: defaultDistribution.BinomialP,
	}
	NegBinomialRFlag = cli.IntFlag{
		Name:  "negbinomial-r",
		Usage: "Negative binomial number of successes",
		Value: defaultDistribution.NegBinomialR,
	}
	NegBinomialPFlag = cli.Float64Flag{
		Name:  "negbinomial-p",
		Usage: "Negative binomial success probability",
		Value: defaultDistribution.NegBinomialP,
	}
	HyperPopulationFlag = cli.IntFlag{
		Name:  "hyper-population",
		Usage: "Hypergeometric population size",
		Value: defaultDistribution.HyperPopulation,
	}
	HyperSuccessesFlag = cli.IntFlag{
		Name:  "hyper-successes",
		Usage: "Hypergeometric number of success states",
		Value: defaultDistribution.HyperSuccesses,
	}
	HyperDrawsFlag = cli.IntFlag{
		Name:  "hyper-draws",
		Usage: "Hypergeometric number of draws",
		Value: defaultDistribution.HyperDraws,
	}
)

// output and server flags
var (
	ChartFlag = cli.PathFlag{
		Name:  "chart",
		Usage: "write an HTML line chart of the result to this file",
	}
	PortFlag = cli.IntFlag{
		Name:    "port",
		Aliases: []string{"p"},
		Usage:   "HTTP listen port",
		Value:   8080,
	}
	MaxUploadFlag = cli.StringFlag{
		Name:  "max-upload",
		Usage: "largest accepted request body, e.g. \"32MB\"",
		Value: "32MB",
	}
)

// DistributionFlags are the fixed family parameters.
var DistributionFlags = []cli.Flag{
	&GammaShapeFlag,
	&BetaAlphaFlag,
	&BetaBetaFlag,
	&WeibullShapeFlag,
	&BinomialTrialsFlag,
	&BinomialPFlag,
	&NegBinomialRFlag,
	&NegBinomialPFlag,
	&HyperPopulationFlag,
	&HyperSuccessesFlag,
	&HyperDrawsFlag,
}

// TimeSeriesFlags are the time-series engine parameters.
var TimeSeriesFlags = []cli.Flag{
	&WindowFlag,
	&HorizonFlag,
	&MaxLagFlag,
	&ThresholdFlag,
}
