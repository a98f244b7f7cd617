package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/household/renderer"
	"github.com/google/subcommands"
)

type healthCmd struct {
	date string
}

func (*healthCmd) Name() string     { return "health" }
func (*healthCmd) Synopsis() string { return "score the household's financial health" }
func (*healthCmd) Usage() string {
	return `hcs health [-d <date>]

  Computes the 0-100 financial health score and its breakdown.
`
}

func (c *healthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date for the score, defaults to today.")
}

func (c *healthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.HealthMarkdown(s.Health()))
	return subcommands.ExitSuccess
}
