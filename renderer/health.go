package renderer

import (
	"bytes"
	"fmt"
	"math"

	"github.com/etnz/household"
	md "github.com/nao1215/markdown"
)

// HealthMarkdown renders a financial health report as markdown.
func HealthMarkdown(r *household.HealthReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Financial Health on %s", r.On))
	doc.PlainText(fmt.Sprintf("Score: %d/100 (%s)", r.Score, r.Status))

	doc.H2("Breakdown")
	doc.Table(md.TableSet{
		Header: []string{"Component", "Metric", "Points"},
		Rows: [][]string{
			{"Savings rate", r.SavingsRate.String(), points(r.SavingsRatePoints, household.MaxSavingsRateScore)},
			{"Emergency fund", months(r.EmergencyMonths), points(r.EmergencyPoints, household.MaxEmergencyFundScore)},
			{"Net worth", fmt.Sprintf("%.1fx annual income", r.NetWorthRatio), points(r.NetWorthPoints, household.MaxNetWorthScore)},
			{"Goal progress", r.GoalProgress.String(), points(r.GoalPoints, household.MaxGoalScore)},
			{"Consistency", fmt.Sprintf("%s variance", r.SpendingVariance), points(r.ConsistencyPoints, household.MaxConsistencyScore)},
		},
	})

	return doc.String()
}

func points(got, max int) string { return fmt.Sprintf("%d/%d", got, max) }

func months(m float64) string {
	if math.IsInf(m, 1) {
		return "unlimited"
	}
	return fmt.Sprintf("%.1f months", m)
}
