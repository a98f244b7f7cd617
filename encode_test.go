package household

import (
	"bytes"
	"strings"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s := newTestSnapshot(t)
	if err := s.Append(
		Goal{ID: "g1", Name: "Holiday", Target: EUR(3000), Current: EUR(500), Created: NewDate(2025, 1, 1), TargetDate: NewDate(2025, 12, 31)},
		sched,
		Budget{Month: NewMonth(2025, 6), Total: EUR(2500), Categories: []BudgetCategory{
			{Category: "housing", Allocated: EUR(1300)},
		}},
		MonthlySummary{Month: NewMonth(2025, 5), Income: EUR(5000), Spending: EUR(2000), Savings: EUR(3000), NetWorth: EUR(33000)},
	); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, s); err != nil {
		t.Fatalf("EncodeSnapshot() error = %v", err)
	}

	encoded := buf.String()
	decoded, err := DecodeSnapshot(&buf, s.On())
	if err != nil {
		t.Fatalf("DecodeSnapshot() error = %v", err)
	}

	// The decoded snapshot must re-encode byte for byte: the format is
	// canonical.
	var again bytes.Buffer
	if err := EncodeSnapshot(&again, decoded); err != nil {
		t.Fatalf("EncodeSnapshot() of decoded error = %v", err)
	}
	if got, want := again.String(), encoded; got != want {
		t.Errorf("re-encoded snapshot differs:\ngot:\n%s\nwant:\n%s", got, want)
	}

	// And the engine must see the same world.
	got, want := decoded.Totals(), s.Totals()
	if !got.NetWorth.Equal(want.NetWorth) || !got.Income.Equal(want.Income) || !got.Spending.Equal(want.Spending) {
		t.Errorf("decoded Totals() = %+v, want %+v", got, want)
	}
}

func TestDecodeSnapshotLenient(t *testing.T) {
	// Bare numeric amounts read as the default currency and blank lines
	// are skipped.
	input := strings.Join([]string{
		`{"record":"member","id":"m1","name":"Alice","monthlyIncome":2500}`,
		``,
		`{"record":"account","id":"a1","name":"Checking","type":"checking","balance":1000}`,
		`{"record":"transaction","id":"t1","account":"a1","date":"2025-6-3","amount":-42.50}`,
	}, "\n")

	s, err := DecodeSnapshot(strings.NewReader(input), jun15)
	if err != nil {
		t.Fatalf("DecodeSnapshot() error = %v", err)
	}
	if got, want := s.Members()[0].MonthlyIncome, EUR(2500); !got.Equal(want) {
		t.Errorf("MonthlyIncome = %v, want %v", got, want)
	}
	if got, want := s.Accounts()[0].Balance, EUR(1000); !got.Equal(want) {
		t.Errorf("Balance = %v, want %v", got, want)
	}
	tx := s.Transactions()[0]
	if got, want := tx.Amount, EUR(-42.50); !got.Equal(want) {
		t.Errorf("Amount = %v, want %v", got, want)
	}
	if got, want := tx.Date, NewDate(2025, 6, 3); got != want {
		t.Errorf("Date = %v, want %v", got, want)
	}
}

func TestDecodeSnapshotRejectsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown record type", `{"record":"wallet","id":"w1"}`},
		{"not json", `account a1 1000`},
		{"invalid record", `{"record":"account","id":"","name":"Checking","type":"checking","balance":100}`},
		{"bad amount", `{"record":"member","id":"m1","name":"Alice","monthlyIncome":"lots"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeSnapshot(strings.NewReader(tt.input), jun15); err == nil {
				t.Errorf("DecodeSnapshot() accepted malformed input %q", tt.input)
			}
		})
	}
}

func TestValidateRecords(t *testing.T) {
	member := HouseholdMember{ID: "m1", Name: "Alice", MonthlyIncome: EUR(1000)}
	account := Account{ID: "a1", MemberID: "m1", Name: "Checking", Type: Checking, Balance: EUR(100)}

	if err := ValidateRecords(
		member, account,
		Transaction{ID: "t1", AccountID: "a1", MemberID: "m1", Date: jun15, Amount: EUR(-10)},
	); err != nil {
		t.Errorf("ValidateRecords() error = %v, want nil", err)
	}

	err := ValidateRecords(
		member, account,
		Transaction{ID: "t1", AccountID: "nope", Date: jun15, Amount: EUR(-10)},
	)
	if err == nil {
		t.Errorf("ValidateRecords() accepted a transaction against an unknown account")
	}

	err = ValidateRecords(
		member,
		Account{ID: "a2", MemberID: "ghost", Name: "Stray", Type: Savings, Balance: EUR(0)},
	)
	if err == nil {
		t.Errorf("ValidateRecords() accepted an account owned by an unknown member")
	}
}
