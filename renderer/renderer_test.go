package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/household"
)

func newSnapshot(t *testing.T) *household.Snapshot {
	t.Helper()
	s := household.NewSnapshot(household.NewDate(2025, 6, 15))
	if err := s.Append(
		household.HouseholdMember{ID: "m1", Name: "Alice", MonthlyIncome: household.M(4000, "EUR")},
		household.Account{ID: "a1", MemberID: "m1", Name: "Checking", Type: household.Checking, Balance: household.M(12000, "EUR")},
		household.Transaction{ID: "t1", AccountID: "a1", Date: household.NewDate(2025, 6, 3), Amount: household.M(-1500, "EUR"), Category: "housing"},
		household.VestingSchedule{ID: "v1", Name: "Grant", Start: household.NewDate(2025, 1, 1), End: household.NewDate(2026, 1, 1), Monthly: household.M(500, "EUR")},
	); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	return s
}

func TestSummaryMarkdown(t *testing.T) {
	totals := newSnapshot(t).Totals()
	out := SummaryMarkdown(&totals)
	for _, want := range []string{"Household Summary on 2025-06-15", "This Month", "Net Worth"} {
		if !strings.Contains(out, want) {
			t.Errorf("SummaryMarkdown() missing %q in:\n%s", want, out)
		}
	}
}

func TestSummaryMarkdownEmpty(t *testing.T) {
	totals := household.NewSnapshot(household.NewDate(2025, 6, 15)).Totals()
	out := SummaryMarkdown(&totals)
	if !strings.Contains(out, "No records yet") {
		t.Errorf("SummaryMarkdown() of an empty snapshot = %q", out)
	}
}

func TestHealthMarkdown(t *testing.T) {
	out := HealthMarkdown(newSnapshot(t).Health())
	for _, want := range []string{"Financial Health", "Score:", "Emergency fund", "Breakdown"} {
		if !strings.Contains(out, want) {
			t.Errorf("HealthMarkdown() missing %q in:\n%s", want, out)
		}
	}
}

func TestForecastMarkdown(t *testing.T) {
	out := ForecastMarkdown(newSnapshot(t).Forecast(3))
	for _, want := range []string{"Cash-Flow Forecast", "Risk: low", "Jul 2025", "Sep 2025"} {
		if !strings.Contains(out, want) {
			t.Errorf("ForecastMarkdown() missing %q in:\n%s", want, out)
		}
	}
}

func TestNetWorthMarkdown(t *testing.T) {
	out := NetWorthMarkdown(newSnapshot(t).Project(household.Moderate, 5))
	for _, want := range []string{"Net-Worth Projection", "Scenario: moderate over 5 years", "2030", "Milestones"} {
		if !strings.Contains(out, want) {
			t.Errorf("NetWorthMarkdown() missing %q in:\n%s", want, out)
		}
	}
}

func TestBudgetMarkdown(t *testing.T) {
	out := BudgetMarkdown(newSnapshot(t).TrackBudgets())
	for _, want := range []string{"Budget for Jun 2025", "estimated from observed spending", "housing"} {
		if !strings.Contains(out, want) {
			t.Errorf("BudgetMarkdown() missing %q in:\n%s", want, out)
		}
	}
}

func TestAdviceMarkdown(t *testing.T) {
	out := AdviceMarkdown(newSnapshot(t).Advice())
	for _, want := range []string{"Alerts & Recommendations", "Alerts", "Recommendations"} {
		if !strings.Contains(out, want) {
			t.Errorf("AdviceMarkdown() missing %q in:\n%s", want, out)
		}
	}
}

func TestVestingMarkdown(t *testing.T) {
	s := newSnapshot(t)
	out := VestingMarkdown(s.On(), s.Schedules())
	for _, want := range []string{"Vesting on 2025-06-15", "Grant", "Vested"} {
		if !strings.Contains(out, want) {
			t.Errorf("VestingMarkdown() missing %q in:\n%s", want, out)
		}
	}
}
