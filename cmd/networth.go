package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/household"
	"github.com/etnz/household/renderer"
	"github.com/google/subcommands"
)

type networthCmd struct {
	date     string
	years    int
	scenario string
}

func (*networthCmd) Name() string     { return "networth" }
func (*networthCmd) Synopsis() string { return "project net worth over the years" }
func (*networthCmd) Usage() string {
	return `hcs networth [-y <years>] [-s <scenario>] [-d <date>]

  Projects net worth by account category under a growth scenario
  (conservative, moderate or aggressive).
`
}

func (c *networthCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.years, "y", 10, "Projection horizon in years.")
	f.StringVar(&c.scenario, "s", "moderate", "Growth scenario: conservative, moderate or aggressive.")
	f.StringVar(&c.date, "d", "", "Date to project from, defaults to today.")
}

func (c *networthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.years < 1 {
		fmt.Fprintln(os.Stderr, "Error: the horizon must be at least one year.")
		return subcommands.ExitUsageError
	}
	sc, err := household.ParseScenario(c.scenario)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
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

	printMarkdown(renderer.NetWorthMarkdown(s.Project(sc, c.years)))
	return subcommands.ExitSuccess
}
