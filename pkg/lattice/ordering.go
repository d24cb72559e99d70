package lattice

// Ordering is the result of comparing two lattice values. Unlike a total
// order, two values may be Incomparable: neither contains the other.
type Ordering int

const (
	Incomparable Ordering = iota
	Less
	Equal
	Greater
)

// String returns the ordering name for diagnostics.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "Incomparable"
	}
}

// Combine folds per-field orderings into the ordering of a product value:
//
//   - all Equal                          => Equal
//   - all Equal-or-Less, at least one Less    => Less
//   - all Equal-or-Greater, at least one Greater => Greater
//   - any disagreement or incomparable field  => Incomparable
//
// Combine of no arguments is Equal, so fieldless products compare Equal.
func Combine(fields ...Ordering) Ordering {
	acc := Equal
	for _, f := range fields {
		switch {
		case f == Incomparable:
			return Incomparable
		case acc == Equal:
			acc = f
		case f == Equal || f == acc:
			// direction unchanged
		default:
			return Incomparable
		}
	}
	return acc
}

// orderingFromCmp lifts a total-order comparison result (-1, 0, +1) into
// an Ordering.
func orderingFromCmp(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}
