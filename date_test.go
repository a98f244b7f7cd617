package household

import "testing"

func TestMonthsSince(t *testing.T) {
	tests := []struct {
		name  string
		start Date
		on    Date
		want  int
	}{
		{"same day", NewDate(2025, 1, 15), NewDate(2025, 1, 15), 0},
		{"one day short of a month", NewDate(2025, 1, 15), NewDate(2025, 2, 14), 0},
		{"exactly one month", NewDate(2025, 1, 15), NewDate(2025, 2, 15), 1},
		{"mid second month", NewDate(2025, 1, 15), NewDate(2025, 3, 20), 2},
		{"across a year", NewDate(2024, 11, 1), NewDate(2025, 2, 1), 3},
		{"before start", NewDate(2025, 6, 1), NewDate(2025, 4, 1), -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.on.MonthsSince(tt.start); got != tt.want {
				t.Errorf("MonthsSince(%s, %s) = %d, want %d", tt.on, tt.start, got, tt.want)
			}
		})
	}
}

func TestMonthArithmetic(t *testing.T) {
	m := NewMonth(2025, 11)
	if got, want := m.Next(3).String(), "2026-02"; got != want {
		t.Errorf("Next(3) = %s, want %s", got, want)
	}
	if got, want := m.Next(-11).String(), "2024-12"; got != want {
		t.Errorf("Next(-11) = %s, want %s", got, want)
	}
	if got, want := m.Start(), NewDate(2025, 11, 1); got != want {
		t.Errorf("Start() = %s, want %s", got, want)
	}
	if got, want := m.End(), NewDate(2025, 11, 30); got != want {
		t.Errorf("End() = %s, want %s", got, want)
	}
	if !m.Contains(NewDate(2025, 11, 30)) || m.Contains(NewDate(2025, 12, 1)) {
		t.Errorf("Contains() does not respect the month boundary")
	}
}

func TestMonthsBetween(t *testing.T) {
	a := NewMonth(2025, 6)
	if got, want := MonthsBetween(a, NewMonth(2026, 1)), 7; got != want {
		t.Errorf("MonthsBetween() = %d, want %d", got, want)
	}
	if got, want := MonthsBetween(a, NewMonth(2025, 3)), -3; got != want {
		t.Errorf("MonthsBetween() backwards = %d, want %d", got, want)
	}
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2025-07")
	if err != nil {
		t.Fatalf("ParseMonth() error = %v", err)
	}
	if got, want := m, NewMonth(2025, 7); got != want {
		t.Errorf("ParseMonth() = %v, want %v", got, want)
	}
	if _, err := ParseMonth("July 2025"); err == nil {
		t.Errorf("ParseMonth() accepted an invalid month")
	}
}

func TestMonthOfNormalizesDay(t *testing.T) {
	// Feb 30 normalizes into March, and its month must follow.
	d := NewDate(2025, 2, 30)
	if got, want := MonthOf(d), NewMonth(2025, 3); got != want {
		t.Errorf("MonthOf(%s) = %v, want %v", d, got, want)
	}
}
