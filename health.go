package household

import "math"

// HealthStatus is the overall status label derived from the total score.
type HealthStatus int

const (
	Poor HealthStatus = iota
	Fair
	Good
	Excellent
)

func (h HealthStatus) String() string {
	switch h {
	case Excellent:
		return "excellent"
	case Good:
		return "good"
	case Fair:
		return "fair"
	case Poor:
		return "poor"
	default:
		return "unknown"
	}
}

// Status bands over the total score.
const (
	excellentThreshold = 80
	goodThreshold      = 65
	fairThreshold      = 45
)

// Sub-score caps. The five sub-scores are independently capped and
// summed, not averaged.
const (
	MaxSavingsRateScore   = 25
	MaxEmergencyFundScore = 20
	MaxNetWorthScore      = 20
	MaxGoalScore          = 15
	MaxConsistencyScore   = 20
)

// HealthReport is the scorer's output: a composite score in [0,100]
// with its five sub-scores and the metrics behind them.
type HealthReport struct {
	On      Date
	HasData bool

	Score  int
	Status HealthStatus

	SavingsRate       Percent
	SavingsRatePoints int

	// EmergencyMonths is the liquid balance expressed in months of
	// current spending.
	EmergencyMonths float64
	EmergencyPoints int

	// NetWorthRatio is net worth over annual income.
	NetWorthRatio  float64
	NetWorthPoints int

	GoalProgress Percent
	GoalPoints   int

	// SpendingVariance is the percentage change between the current and
	// prior month's spending.
	SpendingVariance  Percent
	ConsistencyPoints int
}

// Health scores the snapshot's financial health. The rule is
// deterministic and order-independent: each sub-score depends only on
// the snapshot, never on another sub-score.
func (s *Snapshot) Health() *HealthReport {
	r := &HealthReport{On: s.on, HasData: s.HasData()}
	totals := s.Totals()

	r.SavingsRate = totals.SavingsRate
	r.SavingsRatePoints = savingsRatePoints(r.SavingsRate)

	r.EmergencyMonths = emergencyMonths(s.liquidBalance(), totals.Spending)
	r.EmergencyPoints = emergencyPoints(r.EmergencyMonths)

	r.NetWorthRatio = netWorthRatio(totals.NetWorth, totals.Income)
	r.NetWorthPoints = netWorthPoints(r.NetWorthRatio)

	r.GoalProgress = s.averageGoalProgress()
	r.GoalPoints = goalPoints(r.GoalProgress, len(s.goals))

	r.SpendingVariance = s.spendingVariance()
	r.ConsistencyPoints = consistencyPoints(r.SpendingVariance)

	r.Score = r.SavingsRatePoints + r.EmergencyPoints + r.NetWorthPoints +
		r.GoalPoints + r.ConsistencyPoints
	r.Status = statusOf(r.Score)
	return r
}

func statusOf(score int) HealthStatus {
	switch {
	case score >= excellentThreshold:
		return Excellent
	case score >= goodThreshold:
		return Good
	case score >= fairThreshold:
		return Fair
	default:
		return Poor
	}
}

func savingsRatePoints(rate Percent) int {
	switch {
	case rate >= 20:
		return 25
	case rate >= 15:
		return 20
	case rate >= 10:
		return 15
	case rate >= 5:
		return 10
	case rate >= 0:
		return 5
	default:
		return 0
	}
}

// emergencyMonths returns the liquid balance in months of spending.
// With zero spending the fund is effectively unbounded: any liquidity
// covers forever.
func emergencyMonths(liquid, monthlySpending Money) float64 {
	if !monthlySpending.IsPositive() {
		if liquid.IsPositive() {
			return math.Inf(1)
		}
		return 0
	}
	return liquid.AsFloat() / monthlySpending.AsFloat()
}

func emergencyPoints(months float64) int {
	switch {
	case months >= 6:
		return 20
	case months >= 3:
		return 15
	case months >= 1:
		return 10
	case months >= 0.5:
		return 5
	default:
		return 0
	}
}

func netWorthRatio(netWorth, monthlyIncome Money) float64 {
	annual := monthlyIncome.Mul(Q(12))
	if !annual.IsPositive() {
		return 0
	}
	return netWorth.AsFloat() / annual.AsFloat()
}

func netWorthPoints(ratio float64) int {
	switch {
	case ratio >= 2:
		return 20
	case ratio >= 1:
		return 15
	case ratio >= 0.5:
		return 10
	case ratio >= 0.1:
		return 5
	default:
		return 0
	}
}

// averageGoalProgress returns the mean clamped progress across all
// goals, 0 when there are none.
func (s *Snapshot) averageGoalProgress() Percent {
	if len(s.goals) == 0 {
		return 0
	}
	var sum Percent
	for _, g := range s.goals {
		sum += g.Progress()
	}
	return sum / Percent(len(s.goals))
}

func goalPoints(progress Percent, goals int) int {
	if goals == 0 {
		return 0
	}
	switch {
	case progress >= 80:
		return 15
	case progress >= 60:
		return 12
	case progress >= 40:
		return 9
	case progress >= 20:
		return 6
	default:
		return 3
	}
}

// spendingVariance compares the current month's spending with the
// prior month's, falling back to a historical monthly summary when the
// prior month has no transactions.
func (s *Snapshot) spendingVariance() Percent {
	current := s.spendingIn(s.CurrentMonth())
	prevMonth := s.CurrentMonth().Next(-1)
	previous := s.spendingIn(prevMonth)
	if previous.IsZero() {
		if h, ok := s.summaryFor(prevMonth); ok {
			previous = h.Spending
		}
	}
	if !previous.IsPositive() {
		if current.IsZero() {
			return 0
		}
		return 100
	}
	diff := current.Sub(previous).Abs()
	return Percent(100 * diff.AsFloat() / previous.AsFloat())
}

func consistencyPoints(variance Percent) int {
	switch {
	case variance <= 5:
		return 20
	case variance <= 10:
		return 15
	case variance <= 20:
		return 10
	case variance <= 30:
		return 5
	default:
		return 0
	}
}
