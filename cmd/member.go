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

type memberCmd struct {
	name   string
	income float64
	color  string
}

func (*memberCmd) Name() string     { return "member" }
func (*memberCmd) Synopsis() string { return "record a household member" }
func (*memberCmd) Usage() string {
	return `hcs member -name <name> [-income <monthly>] [-color <color>]

  Records a household member with a declared monthly income.
`
}

func (c *memberCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the member.")
	f.Float64Var(&c.income, "income", 0, "Declared monthly income.")
	f.StringVar(&c.color, "color", "", "Display color for the member.")
}

func (c *memberCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	return appendRecords(household.HouseholdMember{
		ID:            uuid.NewString(),
		Name:          c.name,
		MonthlyIncome: household.M(c.income, household.DefaultCurrency),
		Color:         c.color,
	})
}
