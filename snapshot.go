package household

import (
	"fmt"
	"sort"
)

// Snapshot is an immutable point-in-time view of all household records.
// Every calculator in this package is a stateless function of a
// Snapshot: it performs no I/O and keeps no state between calls, so
// re-invocation with identical inputs yields identical outputs.
//
// The snapshot's date fixes the "current month" window. All month
// bucketing uses UTC calendar months.
type Snapshot struct {
	on           Date
	members      []HouseholdMember
	accounts     []Account
	transactions []Transaction
	assets       []Asset
	goals        []Goal
	schedules    []VestingSchedule
	budgets      []Budget
	history      []MonthlySummary
}

// NewSnapshot creates an empty snapshot dated on. A zero date means today.
func NewSnapshot(on Date) *Snapshot {
	if on.IsZero() {
		on = Today()
	}
	return &Snapshot{on: on}
}

// On returns the date of the snapshot.
func (s *Snapshot) On() Date { return s.on }

// Append validates records and adds them to the snapshot. Transactions
// are kept in chronological order and monthly summaries in month order.
func (s *Snapshot) Append(records ...Record) error {
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("invalid %s record: %w", r.What(), err)
		}
		switch v := r.(type) {
		case HouseholdMember:
			s.members = append(s.members, v)
		case Account:
			s.accounts = append(s.accounts, v)
		case Transaction:
			s.transactions = append(s.transactions, v)
		case Asset:
			s.assets = append(s.assets, v)
		case Goal:
			s.goals = append(s.goals, v)
		case VestingSchedule:
			s.schedules = append(s.schedules, v)
		case Budget:
			s.budgets = append(s.budgets, v)
		case MonthlySummary:
			s.history = append(s.history, v)
		default:
			return fmt.Errorf("unsupported record type %T", r)
		}
	}
	sort.SliceStable(s.transactions, func(i, j int) bool {
		if s.transactions[i].Date != s.transactions[j].Date {
			return s.transactions[i].Date.Before(s.transactions[j].Date)
		}
		return s.transactions[i].ID < s.transactions[j].ID
	})
	sort.SliceStable(s.history, func(i, j int) bool {
		return s.history[i].Month.Before(s.history[j].Month)
	})
	return nil
}

// Read accessors. The returned slices are the snapshot's own storage
// and must be treated as read-only.

func (s *Snapshot) Members() []HouseholdMember   { return s.members }
func (s *Snapshot) Accounts() []Account          { return s.accounts }
func (s *Snapshot) Transactions() []Transaction  { return s.transactions }
func (s *Snapshot) Assets() []Asset              { return s.assets }
func (s *Snapshot) Goals() []Goal                { return s.goals }
func (s *Snapshot) Schedules() []VestingSchedule { return s.schedules }
func (s *Snapshot) Budgets() []Budget            { return s.budgets }
func (s *Snapshot) History() []MonthlySummary    { return s.history }

// HasData reports whether the snapshot holds any record at all. Empty
// snapshots produce well-defined zero results, never errors; the flag
// lets the presentation distinguish "no data" from "zero value".
func (s *Snapshot) HasData() bool {
	return len(s.members)+len(s.accounts)+len(s.transactions)+
		len(s.assets)+len(s.goals)+len(s.schedules)+
		len(s.budgets)+len(s.history) > 0
}

// CurrentMonth returns the calendar month containing the snapshot date.
func (s *Snapshot) CurrentMonth() Month { return MonthOf(s.on) }

// --- window helpers ---

// incomeIn sums positive transaction amounts dated in month m.
// Zero-dated transactions never reach here (Validate rejects them).
func (s *Snapshot) incomeIn(m Month) Money {
	total := M(0, DefaultCurrency)
	for _, t := range s.transactions {
		if m.Contains(t.Date) && t.Amount.IsPositive() {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// spendingIn sums the absolute value of negative transaction amounts
// dated in month m.
func (s *Snapshot) spendingIn(m Month) Money {
	total := M(0, DefaultCurrency)
	for _, t := range s.transactions {
		if m.Contains(t.Date) && t.Amount.IsNegative() {
			total = total.Add(t.Amount.Neg())
		}
	}
	return total
}

// CategorySpend is one category's observed spending in a month.
type CategorySpend struct {
	Category string
	Amount   Money
}

// categorySpendIn buckets month m's spending by category label, sorted
// by descending amount then by name so the output is deterministic.
// Uncategorized spending buckets under "uncategorized".
func (s *Snapshot) categorySpendIn(m Month) []CategorySpend {
	buckets := make(map[string]Money)
	for _, t := range s.transactions {
		if !m.Contains(t.Date) || !t.Amount.IsNegative() {
			continue
		}
		cat := t.Category
		if cat == "" {
			cat = "uncategorized"
		}
		buckets[cat] = buckets[cat].Add(t.Amount.Neg())
	}
	spends := make([]CategorySpend, 0, len(buckets))
	for cat, amount := range buckets {
		spends = append(spends, CategorySpend{Category: cat, Amount: amount})
	}
	sort.Slice(spends, func(i, j int) bool {
		if !spends[i].Amount.Equal(spends[j].Amount) {
			return spends[i].Amount.GreaterThan(spends[j].Amount)
		}
		return spends[i].Category < spends[j].Category
	})
	return spends
}

// declaredIncome sums the members' declared monthly incomes.
func (s *Snapshot) declaredIncome() Money {
	total := M(0, DefaultCurrency)
	for _, m := range s.members {
		total = total.Add(m.MonthlyIncome)
	}
	return total
}

// liquidBalance sums balances of liquid (checking and savings) accounts.
func (s *Snapshot) liquidBalance() Money {
	total := M(0, DefaultCurrency)
	for _, a := range s.accounts {
		if a.Type.IsLiquid() {
			total = total.Add(a.Balance)
		}
	}
	return total
}

// budgetFor returns the explicit budget configured for month m, if any.
func (s *Snapshot) budgetFor(m Month) (Budget, bool) {
	for _, b := range s.budgets {
		if b.Month == m {
			return b, true
		}
	}
	return Budget{}, false
}

// summaryFor returns the historical monthly summary for m, if any.
func (s *Snapshot) summaryFor(m Month) (MonthlySummary, bool) {
	for _, h := range s.history {
		if h.Month == m {
			return h, true
		}
	}
	return MonthlySummary{}, false
}
