package main

import (
	"log"
	"os"

	"github.com/sartorproj/tabstat/cmd/tabstat/commands"
	"github.com/urfave/cli/v2"
)

// TabStatApp data structure
var TabStatApp = cli.App{
	Name:     "Tabular Statistics",
	HelpName: "tabstat",
	Usage:    "descriptive statistics, distribution curves and time-series analysis of CSV columns",
	Commands: []*cli.Command{
		&commands.DescribeCommand,
		&commands.DistributionCommand,
		&commands.TimeSeriesCommand,
		&commands.FamiliesCommand,
		&commands.ServeCommand,
	},
}

// main implements tabstat cli.
func main() {
	if err := TabStatApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
