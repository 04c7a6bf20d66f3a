// Package code implements the 125-element code space: three-digit codes
// over {1..5} and the operations the constraint catalog is built from.
package code

import "fmt"

// Digit is a single code position value, always in [1,5].
type Digit = int

// Symbol identifies one of the three code positions.
type Symbol int

const (
	Triangle Symbol = iota
	Square
	Circle
)

// symbolGlyphs holds the display glyph for each Symbol, matching the
// original puzzle's card notation.
var symbolGlyphs = [3]string{"▲", "■", "●"}

func (s Symbol) String() string {
	return symbolGlyphs[s]
}

// AllSymbols returns the three symbols in fixed ordinal order.
func AllSymbols() []Symbol {
	return []Symbol{Triangle, Square, Circle}
}

// AllSymbolPairs returns every unordered pair of distinct symbols, in the
// order (Triangle,Square), (Triangle,Circle), (Square,Circle).
func AllSymbolPairs() [][2]Symbol {
	all := AllSymbols()
	pairs := make([][2]Symbol, 0, 3)
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			pairs = append(pairs, [2]Symbol{all[i], all[j]})
		}
	}
	return pairs
}

// Code is an ordered triple of digits (triangle, square, circle).
type Code struct {
	digits [3]Digit
}

// New builds a Code from its three digits, each expected to be in [1,5].
func New(triangle, square, circle Digit) Code {
	return Code{digits: [3]Digit{triangle, square, circle}}
}

// NumCodes is the size of the code universe: 5^3.
const NumCodes = 125

// All returns all 125 codes in lexicographic order on (triangle, square,
// circle). The returned slice's index i always satisfies All()[i].Index() == i.
func All() []Code {
	codes := make([]Code, 0, NumCodes)
	for t := 1; t <= 5; t++ {
		for s := 1; s <= 5; s++ {
			for c := 1; c <= 5; c++ {
				codes = append(codes, New(t, s, c))
			}
		}
	}
	return codes
}

// Index returns the canonical dense index of the code, in [0,124].
func (c Code) Index() int {
	return 25*(c.digits[0]-1) + 5*(c.digits[1]-1) + (c.digits[2] - 1)
}

// At returns the digit at the given symbol's position.
func (c Code) At(s Symbol) Digit {
	return c.digits[s]
}

// Count returns how many of the three digits satisfy pred.
func (c Code) Count(pred func(Digit) bool) int {
	n := 0
	for _, d := range c.digits {
		if pred(d) {
			n++
		}
	}
	return n
}

// Sum returns the sum of the three digits.
func (c Code) Sum() int {
	return c.digits[0] + c.digits[1] + c.digits[2]
}

// NumDistinct returns the count of distinct digit values among the three
// positions (1, 2, or 3).
func (c Code) NumDistinct() int {
	seen := map[Digit]struct{}{}
	for _, d := range c.digits {
		seen[d] = struct{}{}
	}
	return len(seen)
}

// CountAdjacent returns how many of the two adjacent digit pairs
// (triangle,square) and (square,circle) satisfy pred.
func (c Code) CountAdjacent(pred func(a, b Digit) bool) int {
	n := 0
	if pred(c.digits[0], c.digits[1]) {
		n++
	}
	if pred(c.digits[1], c.digits[2]) {
		n++
	}
	return n
}

func (c Code) String() string {
	return fmt.Sprintf("%d%d%d", c.digits[0], c.digits[1], c.digits[2])
}

// Equal reports whether two codes hold the same three digits.
func (c Code) Equal(other Code) bool {
	return c.digits == other.digits
}
