package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/household"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

type goalCmd struct {
	name       string
	target     float64
	current    float64
	targetDate string
	category   string
	desc       string
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "record a savings goal" }
func (*goalCmd) Usage() string {
	return `hcs goal -name <name> -target <amount> -by <date> [-current <amount>]

  Records a savings goal with a deadline. The forecast paces its
  remaining amount over the months until the target date.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the goal.")
	f.Float64Var(&c.target, "target", 0, "Target amount.")
	f.Float64Var(&c.current, "current", 0, "Amount already saved.")
	f.StringVar(&c.targetDate, "by", "", "Target date.")
	f.StringVar(&c.category, "category", "", "Goal category.")
	f.StringVar(&c.desc, "desc", "", "Free-text description.")
}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.target <= 0 || c.targetDate == "" {
		fmt.Fprintln(os.Stderr, "Error: -name, -target and -by are required.")
		return subcommands.ExitUsageError
	}
	by, err := household.ParseDate(c.targetDate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing target date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return appendRecords(household.Goal{
		ID:          uuid.NewString(),
		Name:        c.name,
		Target:      household.M(c.target, household.DefaultCurrency),
		Current:     household.M(c.current, household.DefaultCurrency),
		Created:     household.Today(),
		TargetDate:  by,
		Description: c.desc,
		Category:    c.category,
	})
}
