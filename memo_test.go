package household

import "testing"

func TestSnapshotKey(t *testing.T) {
	a := newTestSnapshot(t)
	b := newTestSnapshot(t)

	keyA, err := SnapshotKey(a)
	if err != nil {
		t.Fatalf("SnapshotKey() error = %v", err)
	}
	keyB, err := SnapshotKey(b)
	if err != nil {
		t.Fatalf("SnapshotKey() error = %v", err)
	}
	if keyA != keyB {
		t.Errorf("identical snapshots hash to different keys: %d != %d", keyA, keyB)
	}

	if err := b.Append(
		Transaction{ID: "t9", AccountID: "a1", Date: NewDate(2025, 6, 20), Amount: EUR(-10), Category: "leisure"},
	); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	keyB, err = SnapshotKey(b)
	if err != nil {
		t.Fatalf("SnapshotKey() error = %v", err)
	}
	if keyA == keyB {
		t.Errorf("snapshots with different content share a key")
	}
}

func TestMemo(t *testing.T) {
	var m Memo[int]
	calls := 0
	compute := func() int { calls++; return calls * 10 }

	if got, want := m.Get(1, compute), 10; got != want {
		t.Errorf("Get(1) = %d, want %d", got, want)
	}
	// Same key: cached, compute must not run again.
	if got, want := m.Get(1, compute), 10; got != want {
		t.Errorf("Get(1) again = %d, want %d", got, want)
	}
	if calls != 1 {
		t.Errorf("compute ran %d times, want 1", calls)
	}
	// New key: recompute.
	if got, want := m.Get(2, compute), 20; got != want {
		t.Errorf("Get(2) = %d, want %d", got, want)
	}
	m.Invalidate()
	if got, want := m.Get(2, compute), 30; got != want {
		t.Errorf("Get(2) after Invalidate() = %d, want %d", got, want)
	}
}

func TestMemoWithSnapshotKey(t *testing.T) {
	s := newTestSnapshot(t)
	key, err := SnapshotKey(s)
	if err != nil {
		t.Fatalf("SnapshotKey() error = %v", err)
	}

	var memo Memo[*HealthReport]
	calls := 0
	report := memo.Get(key, func() *HealthReport { calls++; return s.Health() })
	again := memo.Get(key, func() *HealthReport { calls++; return s.Health() })
	if calls != 1 {
		t.Errorf("compute ran %d times, want 1", calls)
	}
	if report != again {
		t.Errorf("cached report differs from the original")
	}
}
