package household

import (
	"bytes"
	"fmt"

	"github.com/mitchellh/hashstructure/v2"
)

// The engine recomputes everything from scratch on each call, so a
// caller that re-derives on every snapshot change is expected to
// memoize, keyed on a content hash of the snapshot. SnapshotKey and
// Memo provide that caller-side cache.

// SnapshotKey returns a content hash of the snapshot: its date and the
// canonical encoding of every record. Two snapshots with identical
// content share a key.
func SnapshotKey(s *Snapshot) (uint64, error) {
	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, s); err != nil {
		return 0, fmt.Errorf("could not encode snapshot for hashing: %w", err)
	}
	key, err := hashstructure.Hash(struct {
		On      string
		Records string
	}{On: s.on.String(), Records: buf.String()}, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, fmt.Errorf("could not hash snapshot: %w", err)
	}
	return key, nil
}

// Memo caches one computed value per key. When the key changes the
// cached value is discarded and recomputed; identical keys return the
// cached value without calling compute.
//
// A Memo is not safe for concurrent use; the engine is single-threaded
// by design.
type Memo[T any] struct {
	key   uint64
	value T
	valid bool
}

// Get returns the cached value for key, computing and caching it first
// when the key is new or has changed.
func (m *Memo[T]) Get(key uint64, compute func() T) T {
	if m.valid && m.key == key {
		return m.value
	}
	m.key = key
	m.value = compute()
	m.valid = true
	return m.value
}

// Invalidate drops the cached value.
func (m *Memo[T]) Invalidate() {
	var zero T
	m.key = 0
	m.value = zero
	m.valid = false
}
