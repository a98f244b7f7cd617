package household

import "testing"

// sched is a two-year schedule: 1000 per month with a 5000 cliff
// releasing after six months.
var sched = VestingSchedule{
	ID:          "v1",
	Name:        "Grant 2025",
	Start:       NewDate(2025, 1, 1),
	End:         NewDate(2027, 1, 1),
	Monthly:     EUR(1000),
	Cliff:       EUR(5000),
	CliffMonths: 6,
}

func TestVestingStatusOn(t *testing.T) {
	if got, want := sched.TotalMonths(), 24; got != want {
		t.Fatalf("TotalMonths() = %d, want %d", got, want)
	}
	if got, want := sched.TotalValue(), EUR(29000); !got.Equal(want) {
		t.Fatalf("TotalValue() = %v, want %v", got, want)
	}

	tests := []struct {
		name     string
		on       Date
		vested   Money
		unvested Money
		cliff    bool
	}{
		{"before start", NewDate(2024, 12, 1), EUR(0), EUR(29000), false},
		{"at start", NewDate(2025, 1, 1), EUR(0), EUR(29000), false},
		// Five months in: 5 x 1000, cliff still locked.
		{"month before cliff", NewDate(2025, 6, 1), EUR(5000), EUR(24000), false},
		// Six months in: 6 x 1000 plus the 5000 cliff.
		{"cliff month", NewDate(2025, 7, 1), EUR(11000), EUR(18000), true},
		{"fully vested", NewDate(2027, 1, 1), EUR(29000), EUR(0), true},
		{"long after end", NewDate(2030, 1, 1), EUR(29000), EUR(0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := sched.StatusOn(tt.on)
			if !st.Vested.Equal(tt.vested) {
				t.Errorf("Vested = %v, want %v", st.Vested, tt.vested)
			}
			if !st.Unvested.Equal(tt.unvested) {
				t.Errorf("Unvested = %v, want %v", st.Unvested, tt.unvested)
			}
			if st.CliffReleased != tt.cliff {
				t.Errorf("CliffReleased = %v, want %v", st.CliffReleased, tt.cliff)
			}
			if got, want := st.Vested.Add(st.Unvested), sched.TotalValue(); !got.Equal(want) {
				t.Errorf("Vested + Unvested = %v, want %v", got, want)
			}
		})
	}
}

func TestVestingMonotonic(t *testing.T) {
	// For a fixed schedule the vested amount never decreases over time.
	prev := EUR(-1)
	for d := NewDate(2024, 10, 1); d.Before(NewDate(2027, 6, 1)); d = d.Add(17) {
		vested := sched.StatusOn(d).Vested
		if vested.LessThan(prev) {
			t.Fatalf("vested decreased from %v to %v at %s", prev, vested, d)
		}
		prev = vested
	}
}

func TestVestingCliffLongerThanSchedule(t *testing.T) {
	// A cliff period past the end clamps to the final month instead of
	// never releasing.
	v := VestingSchedule{
		ID:          "v2",
		Start:       NewDate(2025, 1, 1),
		End:         NewDate(2025, 7, 1),
		Monthly:     EUR(100),
		Cliff:       EUR(1000),
		CliffMonths: 12,
	}
	st := v.StatusOn(NewDate(2025, 7, 1))
	if !st.CliffReleased {
		t.Fatalf("CliffReleased = false at the end of the schedule")
	}
	if got, want := st.Vested, v.TotalValue(); !got.Equal(want) {
		t.Errorf("Vested = %v, want %v", got, want)
	}
}

func TestVestingInflowForMonth(t *testing.T) {
	tests := []struct {
		name string
		m    Month
		want Money
	}{
		{"before start", NewMonth(2024, 12), EUR(0)},
		{"first month", NewMonth(2025, 1), EUR(1000)},
		{"ordinary month", NewMonth(2025, 4), EUR(1000)},
		// The cliff lands six months after the start.
		{"cliff month", NewMonth(2025, 7), EUR(6000)},
		{"last month", NewMonth(2027, 1), EUR(1000)},
		{"after end", NewMonth(2027, 2), EUR(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sched.InflowForMonth(tt.m); !got.Equal(tt.want) {
				t.Errorf("InflowForMonth(%s) = %v, want %v", tt.m, got, tt.want)
			}
		})
	}
}
