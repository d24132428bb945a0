package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sartorproj/tabstat/analyzer"
	"github.com/sartorproj/tabstat/api"
	"github.com/sartorproj/tabstat/config"
	"github.com/sartorproj/tabstat/logger"
	"github.com/urfave/cli/v2"
)

var ServeCommand = cli.Command{
	Action: serve,
	Name:   "serve",
	Usage:  "Serves the analyses over HTTP",
	Flags: append(append([]cli.Flag{
		&config.PortFlag,
		&config.MaxUploadFlag,
		&config.DelimiterFlag,
		&config.CacheFlag,
		&logger.LogLevelFlag,
	}, config.TimeSeriesFlags...), config.DistributionFlags...),
}

// serve runs the HTTP server until interrupted.
func serve(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "tabstat-api")

	a, err := analyzer.New(cfg.AnalyzerOptions(), log)
	if err != nil {
		return err
	}
	srv := api.NewServer(a, log, cfg.MaxUpload, cfg.CSVOptions())

	sigCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Noticef("max upload %s, cache %d results", cfg.MaxUpload.HumanReadable(), cfg.CacheSize)
	return srv.Serve(sigCtx, fmt.Sprintf(":%d", cfg.Port))
}
