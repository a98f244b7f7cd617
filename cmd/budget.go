package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/household/renderer"
	"github.com/google/subcommands"
)

type budgetCmd struct {
	date string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "track this month's budget against spending" }
func (*budgetCmd) Usage() string {
	return `hcs budget [-d <date>]

  Compares the month's spending with its budget. Without an explicit
  budget record, allocations are estimated from observed spending.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date selecting the month, defaults to today.")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.BudgetMarkdown(s.TrackBudgets()))
	return subcommands.ExitSuccess
}
