package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/household/renderer"
	"github.com/google/subcommands"
)

type alertsCmd struct {
	date string
}

func (*alertsCmd) Name() string     { return "alerts" }
func (*alertsCmd) Synopsis() string { return "show alerts and recommendations" }
func (*alertsCmd) Usage() string {
	return `hcs alerts [-d <date>]

  Evaluates the alert rules (overspending, thin emergency fund, blown
  budgets, lagging goals) and suggests actionable improvements.
`
}

func (c *alertsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date to evaluate, defaults to today.")
}

func (c *alertsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.AdviceMarkdown(s.Advice()))
	return subcommands.ExitSuccess
}
