package lattice

// GuardedPair is a value guarded by an ordered, joinable guard. The side
// with the strictly greater guard wins in full — its value replaces the
// other side's value entirely, so a dominating guard supersedes stale
// state. Only when the guards are equal do the values themselves join.
//
// With a totally ordered guard such as Max this behaves like a
// last-writer-wins register whose "time" is itself a lattice. If the
// guards are incomparable (possible only with a partially ordered guard
// type) both guard and value join, which keeps the operation total and
// lawful.
type GuardedPair[G Value[G], V Value[V]] struct {
	Guard G `cbor:"0,keyasint,omitempty"`
	Value V `cbor:"1,keyasint,omitempty"`
}

// Join resolves by guard order first, value join only on equal guards.
func (p GuardedPair[G, V]) Join(o GuardedPair[G, V]) GuardedPair[G, V] {
	switch p.Guard.PartialCompare(o.Guard) {
	case Greater:
		return p
	case Less:
		return o
	case Equal:
		return GuardedPair[G, V]{Guard: p.Guard, Value: p.Value.Join(o.Value)}
	default:
		return GuardedPair[G, V]{Guard: p.Guard.Join(o.Guard), Value: p.Value.Join(o.Value)}
	}
}

// PartialCompare orders pairs by guard; values are consulted only when the
// guards are equal. This agrees with Join: a dominated pair is wholly below
// the dominating one regardless of its value.
func (p GuardedPair[G, V]) PartialCompare(o GuardedPair[G, V]) Ordering {
	switch g := p.Guard.PartialCompare(o.Guard); g {
	case Equal:
		return p.Value.PartialCompare(o.Value)
	default:
		return g
	}
}
