package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/household"
	md "github.com/nao1215/markdown"
)

// ForecastMarkdown renders a cash-flow forecast as markdown.
func ForecastMarkdown(f *household.CashFlowForecast) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Cash-Flow Forecast on %s", f.On))
	if len(f.Months) == 0 {
		doc.PlainText("Nothing to forecast over an empty horizon.")
		return doc.String()
	}

	doc.PlainText(fmt.Sprintf("Risk: %s. Projected balance in %s: %s.",
		f.Risk, f.Months[len(f.Months)-1].Month.Label(), f.FinalBalance))
	if f.NegativeMonths > 0 {
		doc.PlainText(fmt.Sprintf("%d of %d months run a negative balance.", f.NegativeMonths, f.Horizon))
	}

	rows := make([][]string, 0, len(f.Months))
	for _, p := range f.Months {
		balance := p.Balance.String()
		if p.IsNegative {
			balance += " (!)"
		}
		rows = append(rows, []string{
			p.Month.Label(),
			p.Income.String(),
			p.Expenses.String(),
			p.VestingInflow.SignedString(),
			p.GoalOutflow.SignedString(),
			p.NetCashFlow.SignedString(),
			balance,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Month", "Income", "Expenses", "Vesting", "Goals", "Net", "Balance"},
		Rows:   rows,
	})

	return doc.String()
}
