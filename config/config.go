// Package config builds the run configuration from command line flags.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/c2h5oh/datasize"
	"github.com/sartorproj/tabstat"
	"github.com/sartorproj/tabstat/analyzer"
	"github.com/sartorproj/tabstat/dataset"
	"github.com/sartorproj/tabstat/distribution"
	"github.com/sartorproj/tabstat/logger"
	"github.com/urfave/cli/v2"
)

// Config is the configuration of one tabstat run.
type Config struct {
	AppName     string
	CommandName string
	LogLevel    string

	Window    int
	Horizon   int
	MaxLag    int
	Threshold float64
	CacheSize int

	Delimiter    rune
	Distribution *distribution.Config

	ChartPath string
	Port      int
	MaxUpload datasize.ByteSize
}

// DefaultConfig returns the configuration used when no flag is set.
func DefaultConfig() *Config {
	opts := analyzer.DefaultOptions()
	return &Config{
		LogLevel:     "info",
		Window:       opts.Window,
		Horizon:      opts.Horizon,
		MaxLag:       opts.MaxLag,
		Threshold:    opts.Threshold,
		CacheSize:    opts.CacheSize,
		Delimiter:    ',',
		Distribution: distribution.DefaultConfig(),
		Port:         PortFlag.Value,
		MaxUpload:    32 * datasize.MB,
	}
}

// NewConfig creates the configuration from the flags set on ctx. Flags
// that are not set keep their defaults.
func NewConfig(ctx *cli.Context) (*Config, error) {
	cfg := DefaultConfig()
	if ctx.App != nil {
		cfg.AppName = ctx.App.HelpName
	}
	if ctx.Command != nil {
		cfg.CommandName = ctx.Command.Name
	}

	setString(ctx, logger.LogLevelFlag.Name, &cfg.LogLevel)

	setInt(ctx, WindowFlag.Name, &cfg.Window)
	setInt(ctx, HorizonFlag.Name, &cfg.Horizon)
	setInt(ctx, MaxLagFlag.Name, &cfg.MaxLag)
	setFloat(ctx, ThresholdFlag.Name, &cfg.Threshold)
	setInt(ctx, CacheFlag.Name, &cfg.CacheSize)

	d := cfg.Distribution
	setFloat(ctx, GammaShapeFlag.Name, &d.GammaShape)
	setFloat(ctx, BetaAlphaFlag.Name, &d.BetaAlpha)
	setFloat(ctx, BetaBetaFlag.Name, &d.BetaBeta)
	setFloat(ctx, WeibullShapeFlag.Name, &d.WeibullShape)
	setInt(ctx, BinomialTrialsFlag.Name, &d.BinomialTrials)
	setFloat(ctx, BinomialPFlag.Name, &d.BinomialP)
	setInt(ctx, NegBinomialRFlag.Name, &d.NegBinomialR)
	setFloat(ctx, NegBinomialPFlag.Name, &d.NegBinomialP)
	setInt(ctx, HyperPopulationFlag.Name, &d.HyperPopulation)
	setInt(ctx, HyperSuccessesFlag.Name, &d.HyperSuccesses)
	setInt(ctx, HyperDrawsFlag.Name, &d.HyperDraws)

	if ctx.IsSet(DelimiterFlag.Name) {
		delim, err := ParseDelimiter(ctx.String(DelimiterFlag.Name))
		if err != nil {
			return nil, err
		}
		cfg.Delimiter = delim
	}
	if ctx.IsSet(MaxUploadFlag.Name) {
		size, err := datasize.ParseString(ctx.String(MaxUploadFlag.Name))
		if err != nil {
			return nil, fmt.Errorf("%w: cannot parse --%s; %v", tabstat.ErrInvalidParameter, MaxUploadFlag.Name, err)
		}
		cfg.MaxUpload = size
	}
	if ctx.IsSet(ChartFlag.Name) {
		cfg.ChartPath = ctx.Path(ChartFlag.Name)
	}
	setInt(ctx, PortFlag.Name, &cfg.Port)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration.
func (cfg *Config) Validate() error {
	if err := cfg.AnalyzerOptions().Validate(); err != nil {
		return err
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", tabstat.ErrInvalidParameter, cfg.Port)
	}
	if cfg.MaxUpload == 0 {
		return fmt.Errorf("%w: --%s must be positive", tabstat.ErrInvalidParameter, MaxUploadFlag.Name)
	}
	return nil
}

// AnalyzerOptions returns the analyzer options of the configuration.
func (cfg *Config) AnalyzerOptions() *analyzer.Options {
	return &analyzer.Options{
		Window:       cfg.Window,
		Horizon:      cfg.Horizon,
		MaxLag:       cfg.MaxLag,
		Threshold:    cfg.Threshold,
		CacheSize:    cfg.CacheSize,
		Distribution: cfg.Distribution,
	}
}

// CSVOptions returns the CSV reader options of the configuration.
func (cfg *Config) CSVOptions() *dataset.CSVOptions {
	opts := dataset.DefaultCSVOptions()
	opts.Delimiter = cfg.Delimiter
	return opts
}

// ParseDelimiter parses a single-character CSV delimiter. "\t" and
// "tab" select a tab.
func ParseDelimiter(s string) (rune, error) {
	if s == `\t` || s == "tab" {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError || r == '"' || r == '\r' || r == '\n' {
		return 0, fmt.Errorf("%w: invalid delimiter %q", tabstat.ErrInvalidParameter, s)
	}
	return r, nil
}

func setString(ctx *cli.Context, name string, dst *string) {
	if ctx.IsSet(name) {
		*dst = ctx.String(name)
	}
}

func setInt(ctx *cli.Context, name string, dst *int) {
	if ctx.IsSet(name) {
		*dst = ctx.Int(name)
	}
}

func setFloat(ctx *cli.Context, name string, dst *float64) {
	if ctx.IsSet(name) {
		*dst = ctx.Float64(name)
	}
}
