package household

import "testing"

func TestSnapshotAppendRejectsInvalid(t *testing.T) {
	s := NewSnapshot(jun15)
	if err := s.Append(Account{Name: "No id", Type: Checking, Balance: EUR(10)}); err == nil {
		t.Errorf("Append() accepted an account without an id")
	}
	if err := s.Append(Transaction{ID: "t1", AccountID: "a1", Amount: EUR(-5)}); err == nil {
		t.Errorf("Append() accepted a transaction without a date")
	}
	// An out-of-range type must be stopped here: past this point the
	// projector indexes its category table by it.
	if err := s.Append(Account{ID: "a1", Name: "Mystery", Type: AccountType(9), Balance: EUR(10)}); err == nil {
		t.Errorf("Append() accepted an account with an out-of-range type")
	}
	if err := s.Append(Account{ID: "a2", Name: "Mystery", Type: AccountType(-1), Balance: EUR(10)}); err == nil {
		t.Errorf("Append() accepted an account with a negative type")
	}
	if s.HasData() {
		t.Errorf("HasData() = true after rejected appends")
	}
}

func TestSnapshotSortsTransactions(t *testing.T) {
	s := NewSnapshot(jun15)
	if err := s.Append(
		Transaction{ID: "t2", AccountID: "a1", Date: NewDate(2025, 6, 9), Amount: EUR(-1)},
		Transaction{ID: "t3", AccountID: "a1", Date: NewDate(2025, 6, 2), Amount: EUR(-1)},
		Transaction{ID: "t1", AccountID: "a1", Date: NewDate(2025, 6, 2), Amount: EUR(-1)},
	); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	want := []string{"t1", "t3", "t2"} // date order, id breaks the tie
	for i, tx := range s.Transactions() {
		if tx.ID != want[i] {
			t.Errorf("Transactions()[%d].ID = %q, want %q", i, tx.ID, want[i])
		}
	}
}

func TestCategorySpendOrdering(t *testing.T) {
	s := NewSnapshot(jun15)
	if err := s.Append(
		Transaction{ID: "t1", AccountID: "a1", Date: NewDate(2025, 6, 1), Amount: EUR(-50), Category: "books"},
		Transaction{ID: "t2", AccountID: "a1", Date: NewDate(2025, 6, 2), Amount: EUR(-200), Category: "groceries"},
		Transaction{ID: "t3", AccountID: "a1", Date: NewDate(2025, 6, 3), Amount: EUR(-50), Category: "games"},
		Transaction{ID: "t4", AccountID: "a1", Date: NewDate(2025, 6, 4), Amount: EUR(-100), Category: "groceries"},
	); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	spends := s.categorySpendIn(NewMonth(2025, 6))
	want := []string{"groceries", "books", "games"} // amount desc, then name
	for i, w := range want {
		if spends[i].Category != w {
			t.Errorf("categorySpendIn()[%d] = %q, want %q", i, spends[i].Category, w)
		}
	}
	if got, wantAmount := spends[0].Amount, EUR(300); !got.Equal(wantAmount) {
		t.Errorf("groceries amount = %v, want %v", got, wantAmount)
	}
}
