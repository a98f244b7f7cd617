// Package renderer turns engine reports into markdown documents.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/household"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the household totals as a markdown document.
func SummaryMarkdown(t *household.Totals) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Household Summary on %s", t.On))
	if !t.HasData {
		doc.PlainText("No records yet. Add members, accounts and transactions to get started.")
		return doc.String()
	}

	doc.PlainText(fmt.Sprintf("Net Worth: %s", t.NetWorth))

	doc.H2("This Month")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Income", t.Income.String()},
			{"Spending", t.Spending.String()},
			{"Savings", t.Income.Sub(t.Spending).SignedString()},
			{"Savings Rate", t.SavingsRate.String()},
		},
	})

	doc.H2("Holdings")
	doc.Table(md.TableSet{
		Header: []string{"Holding", "Value"},
		Rows: [][]string{
			{"Accounts", t.AccountBalance.String()},
			{"Assets", t.AssetValue.String()},
			{"Net Worth", t.NetWorth.String()},
		},
	})

	return doc.String()
}
