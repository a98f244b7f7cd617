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

type accountCmd struct {
	name    string
	kind    string
	balance float64
	member  string
	color   string
}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "record a financial account" }
func (*accountCmd) Usage() string {
	return `hcs account -name <name> -type <type> -balance <amount> [-member <id>]

  Records an account. Types: checking, savings, investment, retirement,
  vesting, other. Without -member the account is household-shared.
`
}

func (c *accountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the account.")
	f.StringVar(&c.kind, "type", "checking", "Account type.")
	f.Float64Var(&c.balance, "balance", 0, "Current balance.")
	f.StringVar(&c.member, "member", "", "Owning member id, empty for a shared account.")
	f.StringVar(&c.color, "color", "", "Display color for the account.")
}

func (c *accountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	kind, err := household.ParseAccountType(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return appendRecords(household.Account{
		ID:       uuid.NewString(),
		MemberID: c.member,
		Name:     c.name,
		Type:     kind,
		Balance:  household.M(c.balance, household.DefaultCurrency),
		Color:    c.color,
		Updated:  household.Today(),
	})
}
