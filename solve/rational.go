package solve

import "fmt"

// rational is an exact, unreduced fraction used for the expected-
// eliminations heuristic (spec.md §4.4). Arithmetic must stay exact
// (never floating point) so that tie-breaks between codes are
// deterministic and reproducible.
type rational struct {
	num, den int64
}

func newRational(num, den int64) rational {
	if den == 0 {
		return rational{num: 0, den: 1}
	}
	return rational{num: num, den: den}
}

func zeroRational() rational {
	return rational{num: 0, den: 1}
}

// add returns r+other, via cross-multiplication; it does not reduce the
// result, which is unnecessary at the magnitudes this solver deals with.
func (r rational) add(other rational) rational {
	return rational{
		num: r.num*other.den + other.num*r.den,
		den: r.den * other.den,
	}
}

// less reports whether r < other.
func (r rational) less(other rational) bool {
	return r.num*other.den < other.num*r.den
}

func (r rational) String() string {
	return fmt.Sprintf("%d/%d", r.num, r.den)
}
