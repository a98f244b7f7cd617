package cmd

import (
	"path/filepath"
	"testing"

	"github.com/etnz/household"
	"github.com/google/subcommands"
)

// useTempFile points the global household file at a temp location for
// the duration of one test.
func useTempFile(t *testing.T) {
	t.Helper()
	old := *snapshotFile
	*snapshotFile = filepath.Join(t.TempDir(), "household.jsonl")
	t.Cleanup(func() { *snapshotFile = old })
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	useTempFile(t)
	s, err := loadSnapshot(household.NewDate(2025, 6, 15))
	if err != nil {
		t.Fatalf("loadSnapshot() error = %v", err)
	}
	if s.HasData() {
		t.Errorf("loadSnapshot() of a missing file has data")
	}
}

func TestAppendAndReload(t *testing.T) {
	useTempFile(t)
	member := household.HouseholdMember{ID: "m1", Name: "Alice", MonthlyIncome: household.M(3000, "EUR")}
	account := household.Account{ID: "a1", MemberID: "m1", Name: "Checking", Type: household.Checking, Balance: household.M(500, "EUR")}

	if status := appendRecords(member, account); status != subcommands.ExitSuccess {
		t.Fatalf("appendRecords() = %v, want success", status)
	}
	// A second append must not clobber the first.
	tx := household.Transaction{ID: "t1", AccountID: "a1", Date: household.NewDate(2025, 6, 3), Amount: household.M(-25, "EUR")}
	if status := appendRecords(tx); status != subcommands.ExitSuccess {
		t.Fatalf("appendRecords() = %v, want success", status)
	}

	s, err := loadSnapshot(household.NewDate(2025, 6, 15))
	if err != nil {
		t.Fatalf("loadSnapshot() error = %v", err)
	}
	if got, want := len(s.Members()), 1; got != want {
		t.Errorf("len(Members()) = %d, want %d", got, want)
	}
	if got, want := len(s.Accounts()), 1; got != want {
		t.Errorf("len(Accounts()) = %d, want %d", got, want)
	}
	if got, want := len(s.Transactions()), 1; got != want {
		t.Errorf("len(Transactions()) = %d, want %d", got, want)
	}
}

func TestParseDateFlag(t *testing.T) {
	on, err := parseDateFlag("2025-6-3")
	if err != nil {
		t.Fatalf("parseDateFlag() error = %v", err)
	}
	if got, want := on, household.NewDate(2025, 6, 3); got != want {
		t.Errorf("parseDateFlag() = %v, want %v", got, want)
	}
	if _, err := parseDateFlag("not a date"); err == nil {
		t.Errorf("parseDateFlag() accepted an invalid date")
	}
	today, err := parseDateFlag("")
	if err != nil || today.IsZero() {
		t.Errorf("parseDateFlag(\"\") = %v, %v, want today", today, err)
	}
}
