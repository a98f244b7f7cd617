package household

// The aggregator computes the base totals everything else depends on.
//
// Income uses the larger of declared and observed income. This is a
// product rule with no derivation behind it: when transaction history
// disagrees with declared salaries, the engine refuses to understate
// income. It is kept here as an explicit policy rather than a silent
// max buried in the arithmetic.

// Totals is the aggregator's output: a plain numeric snapshot of the
// household's current month.
type Totals struct {
	On      Date
	HasData bool

	// DeclaredIncome is the sum of member monthly incomes; ObservedIncome
	// the sum of this month's positive transactions. Income is the larger
	// of the two.
	DeclaredIncome Money
	ObservedIncome Money
	Income         Money

	// Spending is the absolute sum of this month's negative transactions.
	Spending Money

	AccountBalance Money
	AssetValue     Money
	NetWorth       Money

	// SavingsRate is (income-spending)/income as a percentage, 0 when
	// income is 0.
	SavingsRate Percent
}

// Totals aggregates the snapshot into base totals. It is a pure
// function of the snapshot: no side effects, deterministic.
func (s *Snapshot) Totals() Totals {
	t := Totals{On: s.on, HasData: s.HasData()}

	month := s.CurrentMonth()
	t.DeclaredIncome = s.declaredIncome()
	t.ObservedIncome = s.incomeIn(month)
	t.Income = incomeFloor(t.DeclaredIncome, t.ObservedIncome)
	t.Spending = s.spendingIn(month)

	t.AccountBalance = M(0, DefaultCurrency)
	for _, a := range s.accounts {
		t.AccountBalance = t.AccountBalance.Add(a.Balance)
	}
	t.AssetValue = M(0, DefaultCurrency)
	for _, a := range s.assets {
		t.AssetValue = t.AssetValue.Add(a.Value)
	}
	t.NetWorth = t.AccountBalance.Add(t.AssetValue)

	t.SavingsRate = savingsRate(t.Income, t.Spending)
	return t
}

// incomeFloor resolves declared versus observed income to the larger of
// the two.
func incomeFloor(declared, observed Money) Money {
	if observed.GreaterThan(declared) {
		return observed
	}
	return declared
}

// savingsRate returns (income-spending)/income as a percentage,
// guarded to 0 when income is zero.
func savingsRate(income, spending Money) Percent {
	if !income.IsPositive() {
		return 0
	}
	return Percent(100 * income.Sub(spending).AsFloat() / income.AsFloat())
}

// MonthlySavings returns income minus spending, floored at zero; the
// amount available for projection contributions.
func (t Totals) MonthlySavings() Money {
	saved := t.Income.Sub(t.Spending)
	if saved.IsNegative() {
		return M(0, DefaultCurrency)
	}
	return saved
}
