package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/household"
	md "github.com/nao1215/markdown"
)

// BudgetMarkdown renders a budget report as markdown. Usage is clamped
// to 100% for the bar-like display, the exact excess shows separately.
func BudgetMarkdown(r *household.BudgetReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Budget for %s", r.Month.Label()))
	if len(r.Categories) == 0 {
		doc.PlainText("No budget and no categorized spending this month.")
		return doc.String()
	}
	if r.Estimated {
		doc.PlainText("No budget is configured for this month; allocations are estimated from observed spending.")
	}
	doc.PlainText(fmt.Sprintf("Spent %s of %s allocated.", r.TotalSpent, r.TotalAllocated))

	rows := make([][]string, 0, len(r.Categories))
	for _, c := range r.Categories {
		usage := c.Usage
		if usage > 100 {
			usage = 100
		}
		over := "-"
		if c.Over.IsPositive() {
			over = c.Over.String()
		}
		rows = append(rows, []string{c.Category, c.Allocated.String(), c.Spent.String(), usage.String(), over, c.State.String()})
	}
	doc.Table(md.TableSet{
		Header: []string{"Category", "Allocated", "Spent", "Usage", "Over", "State"},
		Rows:   rows,
	})

	return doc.String()
}
