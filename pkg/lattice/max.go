package lattice

import "cmp"

// Max is a monotonic maximum register: join keeps the greater of the two
// values. The zero value of T is bottom, so Max counters must only ever
// grow — decrementing a published Max is a protocol violation that merge
// cannot detect.
type Max[T cmp.Ordered] struct {
	Value T `cbor:"0,keyasint,omitempty"`
}

// MaxOf wraps v in a Max register.
func MaxOf[T cmp.Ordered](v T) Max[T] { return Max[T]{Value: v} }

// Join returns the register holding the greater value.
func (m Max[T]) Join(o Max[T]) Max[T] {
	if o.Value > m.Value {
		return o
	}
	return m
}

// PartialCompare is total for Max: the underlying order of T.
func (m Max[T]) PartialCompare(o Max[T]) Ordering {
	return orderingFromCmp(cmp.Compare(m.Value, o.Value))
}
