package household

// BudgetState classifies a category's budget usage.
type BudgetState int

const (
	OnTrack BudgetState = iota
	Warning
	OverBudget
)

func (b BudgetState) String() string {
	switch b {
	case OnTrack:
		return "on-track"
	case Warning:
		return "warning"
	case OverBudget:
		return "over-budget"
	default:
		return "unknown"
	}
}

// warningUsage is the usage band above which a category is flagged
// before any overspend occurs. Overspend itself is detected on the
// exact decimal amounts, not on the percentage.
const warningUsage = 80

// estimatedBudgetBuffer pads observed spending when synthesizing
// budgets: estimated budget = observed spend x 1.2. A product rule
// kept as a named constant.
var estimatedBudgetBuffer = Q(1.2)

// estimatedBudgetCategories caps how many top spending categories get a
// synthesized budget.
const estimatedBudgetCategories = 6

// CategoryStatus compares one category's budget against its actual
// spending. Usage is not clamped here: Over carries the exact
// spent-allocated excess, display clamping is the renderer's business.
type CategoryStatus struct {
	Category  string
	Allocated Money
	Spent     Money
	Over      Money // spent - allocated when spent > allocated, else 0
	Usage     Percent
	State     BudgetState
	Estimated bool
}

// BudgetReport is the budget tracker's output for the current month.
type BudgetReport struct {
	On      Date
	Month   Month
	HasData bool
	// Estimated is true when no explicit budget exists for the month and
	// the categories were synthesized from observed spending.
	Estimated      bool
	TotalAllocated Money
	TotalSpent     Money
	Categories     []CategoryStatus
}

// TrackBudgets compares the current month's budget, explicit or
// synthesized, against actual category spending.
func (s *Snapshot) TrackBudgets() *BudgetReport {
	month := s.CurrentMonth()
	r := &BudgetReport{
		On:             s.on,
		Month:          month,
		HasData:        s.HasData(),
		TotalAllocated: M(0, DefaultCurrency),
		TotalSpent:     s.spendingIn(month),
	}

	spends := s.categorySpendIn(month)
	spent := func(category string) Money {
		for _, cs := range spends {
			if cs.Category == category {
				return cs.Amount
			}
		}
		return M(0, DefaultCurrency)
	}

	if budget, ok := s.budgetFor(month); ok {
		r.TotalAllocated = budget.Total
		for _, bc := range budget.Categories {
			r.Categories = append(r.Categories, categoryStatus(bc.Category, bc.Allocated, spent(bc.Category), false))
		}
		return r
	}

	// No explicit budget: synthesize one from the top spending
	// categories, flagged so consumers can tell real from estimated.
	r.Estimated = true
	top := spends
	if len(top) > estimatedBudgetCategories {
		top = top[:estimatedBudgetCategories]
	}
	for _, cs := range top {
		allocated := cs.Amount.Mul(estimatedBudgetBuffer)
		r.TotalAllocated = r.TotalAllocated.Add(allocated)
		r.Categories = append(r.Categories, categoryStatus(cs.Category, allocated, cs.Amount, true))
	}
	return r
}

// categoryStatus builds one category's status, guarding the usage
// division against a zero allocation.
func categoryStatus(category string, allocated, spent Money, estimated bool) CategoryStatus {
	cs := CategoryStatus{
		Category:  category,
		Allocated: allocated,
		Spent:     spent,
		Over:      M(0, DefaultCurrency),
		Estimated: estimated,
	}
	if allocated.IsPositive() {
		cs.Usage = Percent(100 * spent.Ratio(allocated).AsFloat())
	} else if spent.IsPositive() {
		cs.Usage = 100
	}
	if spent.GreaterThan(allocated) {
		cs.Over = spent.Sub(allocated)
	}
	switch {
	case cs.Over.IsPositive():
		cs.State = OverBudget
	case cs.Usage > warningUsage:
		cs.State = Warning
	default:
		cs.State = OnTrack
	}
	return cs
}
