package lattice

import "cmp"

// Redactable is a write-once-ish cell that supports permanent removal.
// A tombstoned cell absorbs any value joined into it — redaction can never
// be undone by replaying old live values. Two live cells with different
// content resolve by byte-order maximum: the lexicographically greater
// value wins. The tie-break only matters when two writers race on the
// same cell, which the surrounding schema avoids by device-partitioned
// keys; it exists to keep join total and deterministic.
//
// The zero value (live, empty) is bottom.
type Redactable[T cmp.Ordered] struct {
	Redacted bool `cbor:"0,keyasint,omitempty"`
	Value    T    `cbor:"1,keyasint,omitempty"`
}

// Live wraps v in a live cell.
func Live[T cmp.Ordered](v T) Redactable[T] { return Redactable[T]{Value: v} }

// Tombstone returns the absorbing redacted cell.
func Tombstone[T cmp.Ordered]() Redactable[T] { return Redactable[T]{Redacted: true} }

// Join: tombstone dominates; live values resolve by byte-order maximum.
func (r Redactable[T]) Join(o Redactable[T]) Redactable[T] {
	if r.Redacted || o.Redacted {
		return Tombstone[T]()
	}
	if o.Value > r.Value {
		return o
	}
	return r
}

// PartialCompare: the tombstone is the top element; live cells follow the
// byte order of their content. The order is total, matching Join.
func (r Redactable[T]) PartialCompare(o Redactable[T]) Ordering {
	switch {
	case r.Redacted && o.Redacted:
		return Equal
	case r.Redacted:
		return Greater
	case o.Redacted:
		return Less
	default:
		return orderingFromCmp(cmp.Compare(r.Value, o.Value))
	}
}
