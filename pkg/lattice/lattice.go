// Package lattice implements join-semilattice building blocks for
// coordination-free replication.
//
// A join semilattice is a value type with a merge operation that is
// idempotent, commutative and associative, and a bottom element that is
// the identity of the merge:
//
//	join(x, x) = x
//	join(x, y) = join(y, x)
//	join(join(x, y), z) = join(x, join(y, z))
//	join(bottom, x) = x
//
// Any set of replicas that only ever publishes grown versions of its own
// state converges under these laws no matter the order, grouping or
// repetition of merges. The join induces a partial order:
//
//	x <= y  iff  join(x, y) = y
//
// Zero values are bottom throughout this package: a nil GSet or GMap, a
// zero Max, a zero GuardedPair and a zero (live, empty) Redactable are all
// valid join identities, so missing state never needs special-casing.
//
// Product types built from these primitives get their fieldwise Join and
// PartialCompare generated by cmd/latticegen; see that command for the
// derivation rules.
package lattice

// Joinable is the merge half of the semilattice contract. Implementations
// must be idempotent, commutative and associative, with the zero value as
// identity. Join must not mutate either operand.
type Joinable[T any] interface {
	Join(T) T
}

// Value is the full semilattice contract: a Joinable that also exposes the
// induced partial order. PartialCompare must agree with Join:
// x.PartialCompare(y) == Less or Equal exactly when x.Join(y) equals y.
type Value[T any] interface {
	Joinable[T]
	PartialCompare(T) Ordering
}
