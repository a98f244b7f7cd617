package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/household/renderer"
	"github.com/google/subcommands"
)

type forecastCmd struct {
	date   string
	months int
}

func (*forecastCmd) Name() string     { return "forecast" }
func (*forecastCmd) Synopsis() string { return "project the cash balance month by month" }
func (*forecastCmd) Usage() string {
	return `hcs forecast [-m <months>] [-d <date>]

  Projects the monthly balance trajectory from income, spending,
  vesting inflows and goal outflows.
`
}

func (c *forecastCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.months, "m", 6, "Forecast horizon in months.")
	f.StringVar(&c.date, "d", "", "Date to forecast from, defaults to today.")
}

func (c *forecastCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.months < 1 {
		fmt.Fprintln(os.Stderr, "Error: the horizon must be at least one month.")
		return subcommands.ExitUsageError
	}
	on, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, err := loadSnapshot(on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading household: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ForecastMarkdown(s.Forecast(c.months)))
	return subcommands.ExitSuccess
}
