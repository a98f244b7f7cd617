package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/household"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

// importBankCmd imports transactions from a bank's JSON export. Every
// bank shapes its export differently, so the row and field locations
// are given as JSONPath expressions.
type importBankCmd struct {
	file     string
	account  string
	rows     string
	datePath string
	amount   string
	desc     string
	category string
}

func (*importBankCmd) Name() string     { return "import-bank" }
func (*importBankCmd) Synopsis() string { return "import transactions from a bank JSON export" }
func (*importBankCmd) Usage() string {
	return `hcs import-bank -f <export.json> -account <id> [-rows <jsonpath>] [-date <jsonpath>] [-amount <jsonpath>] [-desc <jsonpath>]

  Imports transactions from a bank export. The -rows path selects the
  array of transaction rows; -date, -amount and -desc select the fields
  within each row.

Usage Examples:
# Import with the default paths ($.transactions[*], $.date, $.amount, $.label).
$ hcs import-bank -f export.json -account a1
`
}

func (c *importBankCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Bank export file (JSON).")
	f.StringVar(&c.account, "account", "", "Account to import into.")
	f.StringVar(&c.rows, "rows", "$.transactions[*]", "JSONPath selecting the transaction rows.")
	f.StringVar(&c.datePath, "date", "$.date", "JSONPath selecting a row's date.")
	f.StringVar(&c.amount, "amount", "$.amount", "JSONPath selecting a row's amount.")
	f.StringVar(&c.desc, "desc", "$.label", "JSONPath selecting a row's description.")
	f.StringVar(&c.category, "category", "", "Category applied to every imported transaction.")
}

func (c *importBankCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" || c.account == "" {
		fmt.Fprintln(os.Stderr, "Error: -f and -account are required.")
		return subcommands.ExitUsageError
	}

	content, err := os.ReadFile(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	var jobj any
	if err := json.Unmarshal(content, &jobj); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	jrows, err := jsonpath.Get(c.rows, jobj)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error selecting rows with %q: %v\n", c.rows, err)
		return subcommands.ExitFailure
	}
	rows, ok := jrows.([]any)
	if !ok {
		// jsonpath is never clear about whether it returns a list or a
		// single answer: wrap a lone row.
		rows = []any{jrows}
	}

	var records []household.Record
	for i, row := range rows {
		tx, err := c.importRow(row)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error importing row %d: %v\n", i, err)
			return subcommands.ExitFailure
		}
		records = append(records, tx)
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no rows found to import.")
		return subcommands.ExitSuccess
	}
	return appendRecords(records...)
}

func (c *importBankCmd) importRow(row any) (household.Transaction, error) {
	var tx household.Transaction

	jdate, err := jsonpath.Get(c.datePath, row)
	if err != nil {
		return tx, fmt.Errorf("no date at %q: %w", c.datePath, err)
	}
	sdate, ok := jdate.(string)
	if !ok {
		return tx, fmt.Errorf("date at %q is not a string: %v", c.datePath, jdate)
	}
	date, err := household.ParseDate(sdate)
	if err != nil {
		return tx, err
	}

	jamount, err := jsonpath.Get(c.amount, row)
	if err != nil {
		return tx, fmt.Errorf("no amount at %q: %w", c.amount, err)
	}
	amount, ok := jamount.(float64)
	if !ok {
		// some exports write amounts as strings, with a comma decimal
		// separator
		samount, ok := jamount.(string)
		if !ok {
			return tx, fmt.Errorf("amount at %q is neither a number nor a string: %v", c.amount, jamount)
		}
		samount = strings.ReplaceAll(samount, ",", ".")
		amount, err = strconv.ParseFloat(samount, 64)
		if err != nil {
			return tx, fmt.Errorf("cannot read amount %q: %w", samount, err)
		}
	}

	desc := ""
	if jdesc, err := jsonpath.Get(c.desc, row); err == nil {
		if s, ok := jdesc.(string); ok {
			desc = s
		}
	}

	return household.Transaction{
		ID:          uuid.NewString(),
		AccountID:   c.account,
		Date:        date,
		Amount:      household.M(amount, household.DefaultCurrency),
		Description: desc,
		Category:    c.category,
	}, nil
}
