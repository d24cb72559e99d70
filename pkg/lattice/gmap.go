package lattice

// GMap is a grow-only map: keys only accumulate, and values under shared
// keys merge with their own join. An absent key stands for the bottom of
// the value type, which makes nil a valid bottom map and lets replicas
// exchange sparse state.
type GMap[K comparable, V Value[V]] map[K]V

// MapOf builds a single-entry GMap. Useful for join-assigning one entry
// into a larger map.
func MapOf[K comparable, V Value[V]](k K, v V) GMap[K, V] {
	return GMap[K, V]{k: v}
}

// Upsert returns the map with v joined into the entry at k, allocating if
// the map is nil. The receiver may be mutated; callers must use the
// returned value.
func (m GMap[K, V]) Upsert(k K, v V) GMap[K, V] {
	if m == nil {
		m = GMap[K, V]{}
	}
	if cur, ok := m[k]; ok {
		m[k] = cur.Join(v)
	} else {
		m[k] = v
	}
	return m
}

// Clone returns a shallow copy: a fresh map holding the same values; nil
// for the empty map. Enough to decouple from a writer that mutates via
// Upsert, which only ever replaces entries.
func (m GMap[K, V]) Clone() GMap[K, V] {
	if len(m) == 0 {
		return nil
	}
	out := make(GMap[K, V], len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Join returns the key union of both maps, joining values under shared
// keys. Neither operand is mutated.
func (m GMap[K, V]) Join(o GMap[K, V]) GMap[K, V] {
	if len(o) == 0 {
		return m
	}
	if len(m) == 0 {
		return o
	}
	out := make(GMap[K, V], len(m)+len(o))
	for k, v := range m {
		out[k] = v
	}
	for k, v := range o {
		if cur, ok := out[k]; ok {
			out[k] = cur.Join(v)
		} else {
			out[k] = v
		}
	}
	return out
}

// PartialCompare compares maps pointwise, treating absent keys as bottom.
func (m GMap[K, V]) PartialCompare(o GMap[K, V]) Ordering {
	acc := Equal
	for k, v := range m {
		ov, ok := o[k]
		if !ok {
			// o is missing a key: on this coordinate m is above bottom
			// unless the value itself is bottom-equivalent; key presence
			// alone counts as growth.
			acc = Combine(acc, Greater)
		} else {
			acc = Combine(acc, v.PartialCompare(ov))
		}
		if acc == Incomparable {
			return Incomparable
		}
	}
	for k := range o {
		if _, ok := m[k]; !ok {
			acc = Combine(acc, Less)
			if acc == Incomparable {
				return Incomparable
			}
		}
	}
	return acc
}
