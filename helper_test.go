package household

import "testing"

// EUR is a helper for tests to create euro money from const.
func EUR(v float64) Money { return M(v, "EUR") }

// jun15 is the fixed snapshot date used across tests.
var jun15 = NewDate(2025, 6, 15)

// newTestSnapshot builds a typical household on the fixed date: two
// members, three accounts, a month of transactions, one asset.
func newTestSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	s := NewSnapshot(jun15)
	if err := s.Append(
		HouseholdMember{ID: "m1", Name: "Alice", MonthlyIncome: EUR(3000)},
		HouseholdMember{ID: "m2", Name: "Bob", MonthlyIncome: EUR(2000)},
		Account{ID: "a1", MemberID: "m1", Name: "Joint checking", Type: Checking, Balance: EUR(4000)},
		Account{ID: "a2", Name: "Rainy day", Type: Savings, Balance: EUR(8000)},
		Account{ID: "a3", MemberID: "m2", Name: "Broker", Type: Investment, Balance: EUR(15000)},
		Asset{ID: "as1", Name: "Car", Category: "vehicle", Value: EUR(9000), PurchaseValue: EUR(14000)},
		Transaction{ID: "t1", AccountID: "a1", Date: NewDate(2025, 6, 2), Amount: EUR(-1200), Category: "housing"},
		Transaction{ID: "t2", AccountID: "a1", Date: NewDate(2025, 6, 5), Amount: EUR(-600), Category: "groceries"},
		Transaction{ID: "t3", AccountID: "a1", Date: NewDate(2025, 6, 9), Amount: EUR(-300), Category: "leisure"},
		Transaction{ID: "t4", AccountID: "a1", Date: NewDate(2025, 6, 1), Amount: EUR(2800), Description: "salary"},
		// prior month, for consistency scoring
		Transaction{ID: "t5", AccountID: "a1", Date: NewDate(2025, 5, 7), Amount: EUR(-2000), Category: "housing"},
	); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	return s
}
