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

type txCmd struct {
	account     string
	member      string
	date        string
	amount      float64
	description string
	category    string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "record a transaction" }
func (*txCmd) Usage() string {
	return `hcs tx -account <id> -amount <amount> [-date <date>] [-category <name>] [-desc <text>]

  Records a signed cash movement: positive amounts are inflows,
  negative amounts outflows.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account the transaction belongs to.")
	f.StringVar(&c.member, "member", "", "Member the transaction belongs to, optional.")
	f.StringVar(&c.date, "date", "", "Date of the transaction, defaults to today.")
	f.Float64Var(&c.amount, "amount", 0, "Signed amount: positive inflow, negative outflow.")
	f.StringVar(&c.description, "desc", "", "Free-text description.")
	f.StringVar(&c.category, "category", "", "Spending category.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		fmt.Fprintln(os.Stderr, "Error: -account is required.")
		return subcommands.ExitUsageError
	}
	date, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return appendRecords(household.Transaction{
		ID:          uuid.NewString(),
		AccountID:   c.account,
		MemberID:    c.member,
		Date:        date,
		Amount:      household.M(c.amount, household.DefaultCurrency),
		Description: c.description,
		Category:    c.category,
	})
}
