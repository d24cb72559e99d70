package lattice

// Vote is an attributed poll: one monotonic counter per voter. Each
// voter's counter residue modulo some small n encodes that voter's current
// opinion; bumping the counter past the next multiple changes the opinion
// without ever decreasing the counter, so votes stay Max-joinable.
//
// Join merges ballots voter-wise and never consults the modulus — the
// modulus belongs to display, not to merge.
type Vote[A comparable] struct {
	Ballots GMap[A, Max[uint64]] `cbor:"0,keyasint,omitempty"`
}

// Ballot returns a single-voter vote carrying the raw counter.
func Ballot[A comparable](voter A, counter uint64) Vote[A] {
	return Vote[A]{Ballots: MapOf(voter, MaxOf(counter))}
}

// Join merges the underlying ballot maps.
func (v Vote[A]) Join(o Vote[A]) Vote[A] {
	return Vote[A]{Ballots: v.Ballots.Join(o.Ballots)}
}

// PartialCompare compares the underlying ballot maps.
func (v Vote[A]) PartialCompare(o Vote[A]) Ordering {
	return v.Ballots.PartialCompare(o.Ballots)
}

// Aggregate folds the current per-voter residues modulo n into an n-length
// histogram: slot i counts the voters whose counter is congruent to i.
// Display-only; merging aggregated histograms is not meaningful.
func (v Vote[A]) Aggregate(n uint64) []uint64 {
	hist := make([]uint64, n)
	for _, c := range v.Ballots {
		hist[c.Value%n]++
	}
	return hist
}
