package household

import (
	"encoding/json"
	"testing"
)

func TestMoneyArithmetic(t *testing.T) {
	if got, want := EUR(10.50).Add(EUR(4.25)), EUR(14.75); !got.Equal(want) {
		t.Errorf("Add() = %v, want %v", got, want)
	}
	if got, want := EUR(10).Sub(EUR(12)), EUR(-2); !got.Equal(want) {
		t.Errorf("Sub() = %v, want %v", got, want)
	}
	if got, want := EUR(100).Mul(Q(1.2)), EUR(120); !got.Equal(want) {
		t.Errorf("Mul() = %v, want %v", got, want)
	}
	if got, want := EUR(1200).Div(Q(6)), EUR(200); !got.Equal(want) {
		t.Errorf("Div() = %v, want %v", got, want)
	}
	if got, want := EUR(1200).Ratio(EUR(1000)), Q(1.2); !got.Equal(want) {
		t.Errorf("Ratio() = %v, want %v", got, want)
	}
}

func TestMoneyWeakCurrency(t *testing.T) {
	// A zero Money with no currency adopts the other operand's.
	var zero Money
	sum := zero.Add(EUR(5))
	if got, want := sum.Currency(), "EUR"; got != want {
		t.Errorf("Currency() = %q, want %q", got, want)
	}
	if !sum.Equal(EUR(5)) {
		t.Errorf("Add() = %v, want %v", sum, EUR(5))
	}
}

func TestMoneyCurrencyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Add() across currencies did not panic")
		}
	}()
	M(1, "EUR").Add(M(1, "USD"))
}

func TestMoneyJSON(t *testing.T) {
	tests := []struct {
		name string
		in   Money
		want string
	}{
		{"default currency is implicit", EUR(1200), `{"amount":1200}`},
		{"cents", EUR(42.50), `{"amount":42.5}`},
		{"foreign currency is explicit", M(100, "USD"), `{"currency":"USD","amount":100}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("Marshal() = %s, want %s", b, tt.want)
			}
			var back Money
			if err := json.Unmarshal(b, &back); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if !back.Equal(tt.in) {
				t.Errorf("round trip = %v, want %v", back, tt.in)
			}
		})
	}

	// A bare number parses in the default currency.
	var bare Money
	if err := json.Unmarshal([]byte(`99.9`), &bare); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !bare.Equal(EUR(99.9)) {
		t.Errorf("bare number = %v, want %v", bare, EUR(99.9))
	}
}
