package lattice

// GSet is a grow-only set: join is set union, the partial order is set
// inclusion. nil is bottom (the empty set).
type GSet[T comparable] map[T]struct{}

// SetOf builds a GSet from the given elements.
func SetOf[T comparable](elems ...T) GSet[T] {
	s := make(GSet[T], len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

// Add returns the set with e present, allocating if the set is nil.
// The receiver may be mutated; callers must use the returned value.
func (s GSet[T]) Add(e T) GSet[T] {
	if s == nil {
		s = GSet[T]{}
	}
	s[e] = struct{}{}
	return s
}

// Clone returns a copy sharing no structure with the receiver; nil for
// the empty set.
func (s GSet[T]) Clone() GSet[T] {
	if len(s) == 0 {
		return nil
	}
	out := make(GSet[T], len(s))
	for e := range s {
		out[e] = struct{}{}
	}
	return out
}

// Has reports whether e is in the set.
func (s GSet[T]) Has(e T) bool {
	_, ok := s[e]
	return ok
}

// Join returns the union of both sets without mutating either.
func (s GSet[T]) Join(o GSet[T]) GSet[T] {
	if len(o) == 0 {
		return s
	}
	if len(s) == 0 {
		return o
	}
	out := make(GSet[T], len(s)+len(o))
	for e := range s {
		out[e] = struct{}{}
	}
	for e := range o {
		out[e] = struct{}{}
	}
	return out
}

// PartialCompare implements set inclusion: subsets are Less, supersets
// Greater, overlapping-but-distinct sets Incomparable.
func (s GSet[T]) PartialCompare(o GSet[T]) Ordering {
	extra, missing := false, false
	for e := range s {
		if !o.Has(e) {
			extra = true
			break
		}
	}
	for e := range o {
		if !s.Has(e) {
			missing = true
			break
		}
	}
	switch {
	case extra && missing:
		return Incomparable
	case extra:
		return Greater
	case missing:
		return Less
	default:
		return Equal
	}
}
