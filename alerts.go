package household

import (
	"fmt"
	"math"
	"sort"
)

// Severity ranks an alert.
type Severity int

const (
	Info Severity = iota
	AlertWarning
	Critical
)

func (s Severity) String() string {
	switch s {
	case Critical:
		return "critical"
	case AlertWarning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Alert is a rule-triggered notification. Priority 1 is the most
// urgent.
type Alert struct {
	Priority int
	Severity Severity
	Code     string
	Message  string
}

// Recommendation is an actionable suggestion with an estimated
// monetary impact.
type Recommendation struct {
	Code   string
	Title  string
	Detail string
	Impact Money
}

// Advice is the alerts engine's output.
type Advice struct {
	On              Date
	HasData         bool
	Alerts          []Alert
	Recommendations []Recommendation
}

// Rule thresholds. Each is a product rule, named rather than inlined.
const (
	emergencyFundMinMonths  = 3.0  // below this, warn
	emergencyFundFullMonths = 6.0  // at or above this, the fund is fully funded
	savingsTargetRate       = 20.0 // percent, the boost-savings target
	savingsBoostFloor       = 10.0 // percent, below this other advice applies first
	categoryDominanceShare  = 0.30 // one category consuming more than this of total spend
	categoryReductionRatio  = 0.10 // suggested cut of a dominant category
	goalLagMonths           = 2.0  // months behind linear pace before alerting
	idleCashYield           = 0.03 // assumed annual yield on parked cash
	investAnnualReturn      = 0.07 // fixed assumption for surplus projections
	investHorizonYears      = 10
	maxRecommendations      = 4
)

// Advice evaluates every alert and recommendation rule over the
// snapshot. Rules are independent: each one reads the aggregates and
// emits at most one alert or recommendation.
func (s *Snapshot) Advice() *Advice {
	a := &Advice{On: s.on, HasData: s.HasData()}
	if !a.HasData {
		return a
	}

	totals := s.Totals()
	health := s.Health()
	budget := s.TrackBudgets()

	cashFlow := totals.Income.Sub(totals.Spending)

	// --- alerts ---

	if cashFlow.IsNegative() {
		a.Alerts = append(a.Alerts, Alert{
			Priority: 1,
			Severity: Critical,
			Code:     "negative-cash-flow",
			Message:  fmt.Sprintf("Spending exceeds income by %s this month", cashFlow.Neg()),
		})
	}

	if health.EmergencyMonths < emergencyFundMinMonths {
		a.Alerts = append(a.Alerts, Alert{
			Priority: 2,
			Severity: AlertWarning,
			Code:     "emergency-fund-low",
			Message:  fmt.Sprintf("Emergency fund covers %.1f months of spending, below the %d month minimum", health.EmergencyMonths, int(emergencyFundMinMonths)),
		})
	}

	if !budget.Estimated && budget.TotalAllocated.IsPositive() && budget.TotalSpent.GreaterThan(budget.TotalAllocated) {
		a.Alerts = append(a.Alerts, Alert{
			Priority: 3,
			Severity: AlertWarning,
			Code:     "budget-exceeded",
			Message:  fmt.Sprintf("Spending %s exceeds the %s budget of %s", budget.TotalSpent, budget.Month.Label(), budget.TotalAllocated),
		})
	}

	for _, g := range s.goals {
		if lag, ok := s.goalLag(g); ok && lag > goalLagMonths {
			a.Alerts = append(a.Alerts, Alert{
				Priority: 4,
				Severity: Info,
				Code:     "goal-behind",
				Message:  fmt.Sprintf("Goal %q is %.1f months behind its linear pace", g.Name, lag),
			})
		}
	}

	sort.SliceStable(a.Alerts, func(i, j int) bool { return a.Alerts[i].Priority < a.Alerts[j].Priority })

	// --- recommendations, in rule order, capped ---

	rate := float64(totals.SavingsRate)
	if rate >= savingsBoostFloor && rate < savingsTargetRate {
		opportunity := totals.Income.Mul(Q((savingsTargetRate - rate) / 100)).Mul(Q(12))
		a.Recommendations = append(a.Recommendations, Recommendation{
			Code:   "boost-savings",
			Title:  "Boost your savings rate",
			Detail: fmt.Sprintf("Raising the savings rate from %s to %.0f%% frees %s per year", totals.SavingsRate, savingsTargetRate, opportunity),
			Impact: opportunity,
		})
	}

	if health.EmergencyMonths >= emergencyFundMinMonths && health.EmergencyMonths < emergencyFundFullMonths {
		idle := s.liquidBalance().Sub(totals.Spending.Mul(Q(emergencyFundMinMonths)))
		if idle.IsPositive() {
			yield := idle.Mul(Q(idleCashYield))
			a.Recommendations = append(a.Recommendations, Recommendation{
				Code:   "optimize-idle-cash",
				Title:  "Put idle cash to work",
				Detail: fmt.Sprintf("%s beyond a %d month emergency fund could earn about %s per year in a better account", idle, int(emergencyFundMinMonths), yield),
				Impact: yield,
			})
		}
	}

	if dominant, ok := s.dominantCategory(totals.Spending); ok {
		saving := dominant.Amount.Mul(Q(categoryReductionRatio)).Mul(Q(12))
		a.Recommendations = append(a.Recommendations, Recommendation{
			Code:   "reduce-category",
			Title:  fmt.Sprintf("Reduce %s spending", dominant.Category),
			Detail: fmt.Sprintf("%s takes over %.0f%% of this month's spending; cutting it by 10%% saves about %s per year", dominant.Category, 100*categoryDominanceShare, saving),
			Impact: saving,
		})
	}

	if cashFlow.IsPositive() && health.EmergencyMonths >= emergencyFundFullMonths {
		future := compoundMonthly(cashFlow, investAnnualReturn, investHorizonYears)
		a.Recommendations = append(a.Recommendations, Recommendation{
			Code:   "invest-surplus",
			Title:  "Invest your monthly surplus",
			Detail: fmt.Sprintf("Investing %s per month at %.0f%% could grow to %s in %d years", cashFlow, 100*investAnnualReturn, future, investHorizonYears),
			Impact: future,
		})
	}

	if len(a.Recommendations) > maxRecommendations {
		a.Recommendations = a.Recommendations[:maxRecommendations]
	}
	return a
}

// goalLag returns how many months the goal trails a linear pace from
// its creation to its target date. It reports false when the goal has
// no creation date or no meaningful pace.
func (s *Snapshot) goalLag(g Goal) (float64, bool) {
	if g.Created.IsZero() || g.TargetDate.IsZero() || !g.Target.IsPositive() {
		return 0, false
	}
	total := g.TargetDate.MonthsSince(g.Created)
	if total <= 0 {
		return 0, false
	}
	elapsed := s.on.MonthsSince(g.Created)
	if elapsed <= 0 {
		return 0, false
	}
	if elapsed > total {
		elapsed = total
	}
	pace := g.Target.AsFloat() / float64(total) // euro per month
	expected := pace * float64(elapsed)
	lag := (expected - g.Current.AsFloat()) / pace
	return lag, true
}

// dominantCategory returns the category consuming more than the
// dominance share of this month's spending, if any.
func (s *Snapshot) dominantCategory(totalSpending Money) (CategorySpend, bool) {
	if !totalSpending.IsPositive() {
		return CategorySpend{}, false
	}
	for _, cs := range s.categorySpendIn(s.CurrentMonth()) {
		if cs.Amount.AsFloat() > categoryDominanceShare*totalSpending.AsFloat() {
			return cs, true
		}
	}
	return CategorySpend{}, false
}

// compoundMonthly returns the future value of a constant monthly
// contribution compounded monthly at an annual rate.
func compoundMonthly(monthly Money, annualRate float64, years int) Money {
	r := annualRate / 12
	n := float64(12 * years)
	factor := (math.Pow(1+r, n) - 1) / r
	return M(monthly.AsFloat()*factor, DefaultCurrency)
}
