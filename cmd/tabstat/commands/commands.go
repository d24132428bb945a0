// Package commands implements the tabstat command line.
package commands

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/sartorproj/tabstat/analyzer"
	"github.com/sartorproj/tabstat/config"
	"github.com/sartorproj/tabstat/dataset"
	"github.com/sartorproj/tabstat/distribution"
	"github.com/sartorproj/tabstat/logger"
	"github.com/sartorproj/tabstat/report"
	"github.com/urfave/cli/v2"
)

var DescribeCommand = cli.Command{
	Action:    describe,
	Name:      "describe",
	Usage:     "Prints descriptive statistics of numeric columns",
	ArgsUsage: "<csv-file> [<column>...]",
	Flags: []cli.Flag{
		&config.DelimiterFlag,
		&config.CacheFlag,
		&logger.LogLevelFlag,
	},
}

var DistributionCommand = cli.Command{
	Action:    fitDistribution,
	Name:      "distribution",
	Usage:     "Evaluates a distribution family at every value of a column",
	ArgsUsage: "<csv-file> <column> <family>",
	Flags: append([]cli.Flag{
		&config.KindFlag,
		&config.DelimiterFlag,
		&config.ChartFlag,
		&logger.LogLevelFlag,
	}, config.DistributionFlags...),
}

var TimeSeriesCommand = cli.Command{
	Action:    analyzeTimeSeries,
	Name:      "timeseries",
	Usage:     "Analyzes a value column against a date column",
	ArgsUsage: "<csv-file> <date-column> <value-column>",
	Flags: append([]cli.Flag{
		&config.ViewFlag,
		&config.DelimiterFlag,
		&config.ChartFlag,
		&logger.LogLevelFlag,
	}, config.TimeSeriesFlags...),
}

var FamiliesCommand = cli.Command{
	Action: listFamilies,
	Name:   "families",
	Usage:  "Lists the supported distribution families",
	Flags: []cli.Flag{
		&config.KindFlag,
	},
}

// setup creates the configuration, the logger, the analyzer and loads
// the table named by the first argument.
func setup(ctx *cli.Context, minArgs int) (*config.Config, *analyzer.Analyzer, *dataset.Table, error) {
	if ctx.Args().Len() < minArgs {
		return nil, nil, nil, fmt.Errorf("command requires %d argument(s): %s", minArgs, ctx.Command.ArgsUsage)
	}
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	log := logger.NewLogger(cfg.LogLevel, "tabstat")

	a, err := analyzer.New(cfg.AnalyzerOptions(), log)
	if err != nil {
		return nil, nil, nil, err
	}

	path := ctx.Args().First()
	table, err := dataset.LoadCSV(path, cfg.CSVOptions())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cannot load %s; %w", path, err)
	}
	log.Noticef("loaded %s: %d columns, %d rows", path, len(table.Headers), table.Len())
	return cfg, a, table, nil
}

// describe prints the summary of the selected columns, or of every
// column when none is given.
func describe(ctx *cli.Context) error {
	_, a, table, err := setup(ctx, 1)
	if err != nil {
		return err
	}

	columns := ctx.Args().Tail()
	var summaries []*analyzer.ColumnSummary
	if len(columns) == 0 {
		summaries, err = a.DescribeAll(ctx.Context, table)
		if err != nil {
			return err
		}
	} else {
		for _, column := range columns {
			s, err := a.Describe(table, column)
			if err != nil {
				return err
			}
			summaries = append(summaries, s)
		}
	}

	report.WriteSummaries(ctx.App.Writer, summaries)
	return nil
}

func fitDistribution(ctx *cli.Context) error {
	cfg, a, table, err := setup(ctx, 3)
	if err != nil {
		return err
	}

	args := ctx.Args()
	r, err := a.Distribution(table, args.Get(1), ctx.String(config.KindFlag.Name), args.Get(2))
	if err != nil {
		return err
	}

	report.WriteDistribution(ctx.App.Writer, r)
	return writeChart(cfg.ChartPath, report.DistributionChart(r))
}

func analyzeTimeSeries(ctx *cli.Context) error {
	cfg, a, table, err := setup(ctx, 3)
	if err != nil {
		return err
	}

	args := ctx.Args()
	view, err := analyzer.ParseView(ctx.String(config.ViewFlag.Name))
	if err != nil {
		return err
	}
	r, err := a.TimeSeries(table, analyzer.TimeSeriesRequest{
		DateColumn:  args.Get(1),
		ValueColumn: args.Get(2),
		View:        view,
	})
	if err != nil {
		return err
	}

	report.WriteTimeSeries(ctx.App.Writer, r)
	return writeChart(cfg.ChartPath, report.TimeSeriesChart(r))
}

func listFamilies(ctx *cli.Context) error {
	kinds := []distribution.Kind{distribution.Continuous, distribution.Discrete}
	if tag := ctx.String(config.KindFlag.Name); tag != "" {
		kind, err := distribution.ParseKind(tag)
		if err != nil {
			return err
		}
		kinds = []distribution.Kind{kind}
	}
	report.WriteFamilies(ctx.App.Writer, kinds...)
	return nil
}

// writeChart renders chart into path; an empty path writes nothing.
func writeChart(path string, chart components.Charter) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create chart file; %w", err)
	}
	if err := report.RenderChart(f, chart); err != nil {
		f.Close()
		return fmt.Errorf("cannot render chart; %w", err)
	}
	return f.Close()
}
