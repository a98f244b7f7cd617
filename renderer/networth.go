package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/household"
	md "github.com/nao1215/markdown"
)

// NetWorthMarkdown renders a net-worth projection as markdown.
func NetWorthMarkdown(p *household.NetWorthProjection) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Net-Worth Projection on %s", p.On))
	doc.PlainText(fmt.Sprintf("Scenario: %s over %d years. Current net worth: %s.",
		p.Scenario, p.Horizon, p.CurrentNetWorth))

	rows := make([][]string, 0, len(p.Years))
	for _, y := range p.Years {
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.On.Year()+y.Year),
			y.Value(household.CatChecking).String(),
			y.Value(household.CatSavings).String(),
			y.Value(household.CatInvestment).String(),
			y.Value(household.CatRetirement).String(),
			y.Value(household.CatRealEstate).String(),
			y.Value(household.CatOther).String(),
			y.Total.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Year", "Checking", "Savings", "Investment", "Retirement", "Real Estate", "Other", "Total"},
		Rows:   rows,
	})

	doc.H2("Milestones")
	milestones := []string{
		fmt.Sprintf("Annualized growth: %s", p.AnnualizedGrowth),
	}
	if p.DoublingYear > 0 {
		milestones = append(milestones, fmt.Sprintf("Net worth doubles in year %d", p.DoublingYear))
	}
	if p.MillionaireYear >= 0 {
		milestones = append(milestones, fmt.Sprintf("Millionaire in year %d", p.MillionaireYear))
	}
	doc.BulletList(milestones...)

	if len(p.TopCategories) > 0 {
		doc.H2("Final-Year Breakdown")
		rows := make([][]string, 0, len(p.TopCategories))
		for _, c := range p.TopCategories {
			rows = append(rows, []string{c.Category.String(), c.Value.String(), c.Share.String()})
		}
		doc.Table(md.TableSet{Header: []string{"Category", "Value", "Share"}, Rows: rows})
	}

	if len(p.Goals) > 0 {
		doc.H2("Goals")
		rows := make([][]string, 0, len(p.Goals))
		for _, g := range p.Goals {
			outlook := "on track"
			if !g.Achievable {
				outlook = "at risk"
			}
			rows = append(rows, []string{g.Goal, fmt.Sprintf("%d", p.On.Year()+g.TargetYear), g.Projected.String(), outlook})
		}
		doc.Table(md.TableSet{Header: []string{"Goal", "Target Year", "Projected Net Worth", "Outlook"}, Rows: rows})
	}

	return doc.String()
}
