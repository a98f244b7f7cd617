package household

// RiskLevel classifies a forecast by how many months run a negative
// true balance.
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
)

func (r RiskLevel) String() string {
	switch r {
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	default:
		return "unknown"
	}
}

// MonthlyProjection is one projected month of the cash-flow forecast.
//
// Balance is the running balance floored at 0 for display. IsNegative
// reports the sign of the true, unfloored balance: the floor never
// corrupts the state carried into the next month.
type MonthlyProjection struct {
	Month         Month
	Income        Money
	Expenses      Money
	VestingInflow Money
	GoalOutflow   Money
	NetCashFlow   Money
	Balance       Money
	IsNegative    bool
}

// CashFlowForecast is the forecaster's output over a whole horizon.
type CashFlowForecast struct {
	On             Date
	Horizon        int
	HasData        bool
	Months         []MonthlyProjection
	NegativeMonths int
	Risk           RiskLevel
	FinalBalance   Money // displayed (floored) balance of the last month
}

// minimum number of historical monthly summaries before the forecaster
// trusts them to imply a trend.
const trendMinSummaries = 3

// Forecast projects the monthly balance trajectory forward
// horizonMonths months, combining recurring income and spending,
// vesting inflows and goal-driven outflows.
func (s *Snapshot) Forecast(horizonMonths int) *CashFlowForecast {
	f := &CashFlowForecast{On: s.on, Horizon: horizonMonths, HasData: s.HasData()}
	if horizonMonths <= 0 {
		return f
	}

	totals := s.Totals()
	baseIncome := totals.Income
	baseExpenses := totals.Spending
	incomeDrift, spendingDrift := s.monthlyDrift()

	current := s.CurrentMonth()
	outflows := s.goalOutflows()

	trueBalance := totals.AccountBalance
	f.Months = make([]MonthlyProjection, 0, horizonMonths)
	for i := 1; i <= horizonMonths; i++ {
		month := current.Next(i)

		p := MonthlyProjection{Month: month}
		p.Income = baseIncome.Add(incomeDrift.Mul(Q(i - 1)))
		p.Expenses = baseExpenses.Add(spendingDrift.Mul(Q(i - 1)))
		if p.Income.IsNegative() {
			p.Income = M(0, DefaultCurrency)
		}
		if p.Expenses.IsNegative() {
			p.Expenses = M(0, DefaultCurrency)
		}

		p.VestingInflow = M(0, DefaultCurrency)
		for _, v := range s.schedules {
			p.VestingInflow = p.VestingInflow.Add(v.InflowForMonth(month))
		}

		p.GoalOutflow = M(0, DefaultCurrency)
		for _, o := range outflows {
			if !month.After(o.due) {
				p.GoalOutflow = p.GoalOutflow.Add(o.monthly)
			}
		}

		p.NetCashFlow = p.Income.Add(p.VestingInflow).Sub(p.Expenses).Sub(p.GoalOutflow)
		trueBalance = trueBalance.Add(p.NetCashFlow)

		p.IsNegative = trueBalance.IsNegative()
		if p.IsNegative {
			f.NegativeMonths++
			p.Balance = M(0, DefaultCurrency)
		} else {
			p.Balance = trueBalance
		}
		f.Months = append(f.Months, p)
	}

	f.FinalBalance = f.Months[len(f.Months)-1].Balance
	switch {
	case f.NegativeMonths > horizonMonths/2:
		f.Risk = RiskHigh
	case f.NegativeMonths > 0:
		f.Risk = RiskMedium
	default:
		f.Risk = RiskLow
	}
	return f
}

// goalOutflow is a goal's constant saving pace until its target month.
type goalOutflow struct {
	monthly Money
	due     Month
}

// goalOutflows derives, for each active unfunded goal, the monthly
// outflow remaining/max(1, months until target). Past target dates
// clamp to a single month rather than a negative pace.
func (s *Snapshot) goalOutflows() []goalOutflow {
	current := s.CurrentMonth()
	var flows []goalOutflow
	for _, g := range s.goals {
		remaining := g.Remaining()
		if remaining.IsZero() || g.TargetDate.IsZero() {
			continue
		}
		due := MonthOf(g.TargetDate)
		if due.Before(current) {
			// Already due: the engine never projects catch-up for the past.
			continue
		}
		months := MonthsBetween(current, due)
		if months < 1 {
			months = 1
		}
		flows = append(flows, goalOutflow{monthly: remaining.Div(Q(months)), due: due})
	}
	return flows
}

// monthlyDrift derives an income and spending drift from the historical
// monthly summaries: the mean month-over-month delta of each series.
// With fewer than trendMinSummaries records both drifts are zero and
// the forecast holds the base totals constant.
func (s *Snapshot) monthlyDrift() (income, spending Money) {
	income = M(0, DefaultCurrency)
	spending = M(0, DefaultCurrency)
	n := len(s.history)
	if n < trendMinSummaries {
		return income, spending
	}
	first, last := s.history[0], s.history[n-1]
	span := Q(n - 1)
	income = last.Income.Sub(first.Income).Div(span)
	spending = last.Spending.Sub(first.Spending).Div(span)
	return income, spending
}
