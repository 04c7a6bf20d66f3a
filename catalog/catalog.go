// Package catalog is the static card/constraint library the solver core
// treats as an external collaborator (spec.md §6): a pure lookup from
// small integer IDs to the constraints and cards of the puzzle. It holds
// no solver state and is safe to call from any number of goroutines.
package catalog

import (
	"fmt"

	"github.com/brunnerant/turing-machine-game-solver/code"
	"github.com/brunnerant/turing-machine-game-solver/constraint"
)

const (
	tri = code.Triangle
	squ = code.Square
	cir = code.Circle
)

// primitive bundles a human-readable name with the predicate it denotes,
// mirroring the catalog's card notation (e.g. "▲=1", "#distinct=2").
type primitive struct {
	name string
	pred func(code.Code) bool
}

func cons(name string, pred func(code.Code) bool) primitive {
	return primitive{name: name, pred: pred}
}

func eqv(s code.Symbol, v int) primitive {
	return cons(fmt.Sprintf("%s=%d", s, v), func(c code.Code) bool { return c.At(s) == v })
}

func ltv(s code.Symbol, v int) primitive {
	return cons(fmt.Sprintf("%s<%d", s, v), func(c code.Code) bool { return c.At(s) < v })
}

func gtv(s code.Symbol, v int) primitive {
	return cons(fmt.Sprintf("%s>%d", s, v), func(c code.Code) bool { return c.At(s) > v })
}

func eqs(s1, s2 code.Symbol) primitive {
	return cons(fmt.Sprintf("%s=%s", s1, s2), func(c code.Code) bool { return c.At(s1) == c.At(s2) })
}

func lts(s1, s2 code.Symbol) primitive {
	return cons(fmt.Sprintf("%s<%s", s1, s2), func(c code.Code) bool { return c.At(s1) < c.At(s2) })
}

func gts(s1, s2 code.Symbol) primitive {
	return cons(fmt.Sprintf("%s>%s", s1, s2), func(c code.Code) bool { return c.At(s1) > c.At(s2) })
}

func otherTwo(s code.Symbol) (code.Symbol, code.Symbol) {
	var rest []code.Symbol
	for _, other := range code.AllSymbols() {
		if other != s {
			rest = append(rest, other)
		}
	}
	return rest[0], rest[1]
}

// smallest is the non-strict "s is less than or equal to both others".
func smallest(s code.Symbol) primitive {
	s2, s3 := otherTwo(s)
	return cons(fmt.Sprintf("%s≤%s%s", s, s2, s3), func(c code.Code) bool {
		return c.At(s) <= c.At(s2) && c.At(s) <= c.At(s3)
	})
}

// biggest is the non-strict "s is greater than or equal to both others".
func biggest(s code.Symbol) primitive {
	s2, s3 := otherTwo(s)
	return cons(fmt.Sprintf("%s≥%s%s", s, s2, s3), func(c code.Code) bool {
		return c.At(s) >= c.At(s2) && c.At(s) >= c.At(s3)
	})
}

func strictlySmallest(s code.Symbol) primitive {
	s2, s3 := otherTwo(s)
	return cons(fmt.Sprintf("%s<%s%s", s, s2, s3), func(c code.Code) bool {
		return c.At(s) < c.At(s2) && c.At(s) < c.At(s3)
	})
}

func strictlyBiggest(s code.Symbol) primitive {
	s2, s3 := otherTwo(s)
	return cons(fmt.Sprintf("%s>%s%s", s, s2, s3), func(c code.Code) bool {
		return c.At(s) > c.At(s2) && c.At(s) > c.At(s3)
	})
}

func numv(v, n int) primitive {
	return cons(fmt.Sprintf("#%d=%d", v, n), func(c code.Code) bool {
		return c.Count(func(d code.Digit) bool { return d == v }) == n
	})
}

func even(d code.Digit) bool { return d%2 == 0 }
func odd(d code.Digit) bool  { return d%2 != 0 }

func evens(s code.Symbol) primitive {
	return cons(fmt.Sprintf("even(%s)", s), func(c code.Code) bool { return even(c.At(s)) })
}

func odds(s code.Symbol) primitive {
	return cons(fmt.Sprintf("odd(%s)", s), func(c code.Code) bool { return odd(c.At(s)) })
}

func numEven(n int) primitive {
	return cons(fmt.Sprintf("#even=%d", n), func(c code.Code) bool { return c.Count(even) == n })
}

func numDistinct(n int) primitive {
	return cons(fmt.Sprintf("#distinct=%d", n), func(c code.Code) bool { return c.NumDistinct() == n })
}

func numStepsUp(n int) primitive {
	return cons(fmt.Sprintf("#steps-up=%d", n), func(c code.Code) bool {
		return c.CountAdjacent(func(a, b code.Digit) bool { return a+1 == b }) == n
	})
}

func numSteps(n int) primitive {
	return cons(fmt.Sprintf("#steps=%d", n), func(c code.Code) bool {
		up := c.CountAdjacent(func(a, b code.Digit) bool { return a+1 == b })
		down := c.CountAdjacent(func(a, b code.Digit) bool { return a-1 == b })
		max := up
		if down > max {
			max = down
		}
		return max == n
	})
}

// ConstraintFromID returns the name and constraint for one of the 145
// primitive constraint IDs. It panics on an unknown ID, matching the
// catalog's nature as a closed, load-time-validated data set.
func ConstraintFromID(id int) (string, constraint.Constraint) {
	p := primitiveFromID(id)
	return p.name, constraint.New(p.pred)
}

func primitiveFromID(id int) primitive {
	switch {
	case id >= 1 && id <= 5:
		return eqv(tri, id)
	case id >= 6 && id <= 10:
		return eqv(squ, id-5)
	case id >= 11 && id <= 15:
		return eqv(cir, id-10)
	case id >= 16 && id <= 18:
		return gtv(tri, id-15)
	case id >= 19 && id <= 21:
		return gtv(squ, id-18)
	case id >= 22 && id <= 24:
		return gtv(cir, id-21)
	case id >= 25 && id <= 27:
		return ltv(tri, id-22)
	case id >= 28 && id <= 30:
		return ltv(squ, id-25)
	case id >= 31 && id <= 33:
		return ltv(cir, id-28)
	case id == 34:
		return evens(tri)
	case id == 35:
		return evens(squ)
	case id == 36:
		return evens(cir)
	case id == 37:
		return odds(tri)
	case id == 38:
		return odds(squ)
	case id == 39:
		return odds(cir)
	case id >= 40 && id <= 42:
		return numv(1, id-40)
	case id >= 43 && id <= 45:
		return numv(2, id-43)
	case id >= 46 && id <= 48:
		return numv(3, id-46)
	case id >= 49 && id <= 51:
		return numv(4, id-49)
	case id >= 52 && id <= 54:
		return numv(5, id-52)
	case id == 55:
		return cons("even(▲+■+●)", func(c code.Code) bool { return even(c.Sum()) })
	case id == 56:
		return cons("odd(▲+■+●)", func(c code.Code) bool { return odd(c.Sum()) })
	case id >= 57 && id <= 59:
		divisor := id - 54
		return cons(fmt.Sprintf("▲+■+●=%dn", divisor), func(c code.Code) bool { return c.Sum()%divisor == 0 })
	case id >= 60 && id <= 66:
		target := id - 54
		return cons(fmt.Sprintf("▲+■+●=%d", target), func(c code.Code) bool { return c.Sum() == target })
	case id >= 67 && id <= 73:
		threshold := id - 61
		return cons(fmt.Sprintf("▲+■+●>%d", threshold), func(c code.Code) bool { return c.Sum() > threshold })
	case id >= 74 && id <= 80:
		threshold := id - 68
		return cons(fmt.Sprintf("▲+■+●<%d", threshold), func(c code.Code) bool { return c.Sum() < threshold })
	case id == 81:
		return cons("#distinct≠2", func(c code.Code) bool { return c.NumDistinct() != 2 })
	case id == 82:
		return numDistinct(2)
	case id == 83:
		return numStepsUp(0)
	case id == 84:
		return numStepsUp(1)
	case id >= 85 && id <= 88:
		return numEven(id - 85)
	case id == 89:
		return eqs(tri, squ)
	case id == 90:
		return eqs(tri, cir)
	case id == 91:
		return eqs(squ, cir)
	case id == 92:
		return gts(tri, squ)
	case id == 93:
		return gts(tri, cir)
	case id == 94:
		return gts(squ, tri)
	case id == 95:
		return gts(squ, cir)
	case id == 96:
		return gts(cir, tri)
	case id == 97:
		return gts(cir, squ)
	case id >= 98 && id <= 102:
		target := id - 94
		return cons(fmt.Sprintf("▲+■=%d", target), func(c code.Code) bool { return c.At(tri)+c.At(squ) == target })
	case id >= 103 && id <= 107:
		target := id - 99
		return cons(fmt.Sprintf("▲+●=%d", target), func(c code.Code) bool { return c.At(tri)+c.At(cir) == target })
	case id >= 108 && id <= 112:
		target := id - 104
		return cons(fmt.Sprintf("■+●=%d", target), func(c code.Code) bool { return c.At(squ)+c.At(cir) == target })
	case id == 113:
		return strictlyBiggest(tri)
	case id == 114:
		return strictlyBiggest(squ)
	case id == 115:
		return strictlyBiggest(cir)
	case id == 116:
		return strictlySmallest(tri)
	case id == 117:
		return strictlySmallest(squ)
	case id == 118:
		return strictlySmallest(cir)
	case id >= 119 && id <= 121:
		return numDistinct(id - 118)
	case id >= 122 && id <= 124:
		return numSteps(id - 122)
	case id == 125:
		return biggest(tri)
	case id == 126:
		return biggest(squ)
	case id == 127:
		return biggest(cir)
	case id == 128:
		return smallest(tri)
	case id == 129:
		return smallest(squ)
	case id == 130:
		return smallest(cir)
	case id == 131:
		return cons("#even>#odd", func(c code.Code) bool { return c.Count(even) > c.Count(odd) })
	case id == 132:
		return cons("#odd>#even", func(c code.Code) bool { return c.Count(odd) > c.Count(even) })
	case id == 133:
		return cons("▲<■<●", func(c code.Code) bool {
			return c.CountAdjacent(func(a, b code.Digit) bool { return a < b }) == 2
		})
	case id == 134:
		return cons("▲>■>●", func(c code.Code) bool {
			return c.CountAdjacent(func(a, b code.Digit) bool { return a > b }) == 2
		})
	case id == 135:
		return cons("not(▲<■<●|▲>■>●)", func(c code.Code) bool {
			up := c.CountAdjacent(func(a, b code.Digit) bool { return a < b })
			down := c.CountAdjacent(func(a, b code.Digit) bool { return a > b })
			return up != 2 && down != 2
		})
	case id == 136:
		return cons("▲+■>6", func(c code.Code) bool { return c.At(tri)+c.At(squ) > 6 })
	case id == 137:
		return cons("▲+■<6", func(c code.Code) bool { return c.At(tri)+c.At(squ) < 6 })
	case id == 138:
		return gtv(squ, 4)
	case id == 139:
		return lts(tri, squ)
	case id == 140:
		return lts(tri, cir)
	case id == 141:
		return lts(squ, cir)
	case id == 142:
		return gtv(tri, 4)
	case id == 143:
		return gtv(cir, 4)
	case id == 144:
		return lts(squ, tri)
	case id == 145:
		return eqs(squ, tri)
	default:
		panic(fmt.Sprintf("catalog: constraint %d is unknown", id))
	}
}

// CardFromID returns the ordered, non-empty list of constraints making up
// one of the 48 cards. It panics on an unknown ID.
func CardFromID(id int) []constraint.Constraint {
	ids, ok := cardConstraintIDs[id]
	if ok {
		cs := make([]constraint.Constraint, len(ids))
		for i, cid := range ids {
			_, cs[i] = ConstraintFromID(cid)
		}
		return cs
	}

	switch id {
	case 24:
		// Not expressible via the shared ID table: num_steps_up(2) has
		// no primitive ID of its own.
		return []constraint.Constraint{
			constraint.New(numStepsUp(2).pred),
			constraint.New(numStepsUp(1).pred),
			constraint.New(numStepsUp(0).pred),
		}
	default:
		panic(fmt.Sprintf("catalog: card %d is unknown", id))
	}
}

var cardConstraintIDs = map[int][]int{
	1:  {1, 16},
	2:  {25, 3, 18},
	3:  {28, 8, 21},
	4:  {29, 9, 138},
	5:  {34, 37},
	6:  {35, 38},
	7:  {36, 39},
	8:  {40, 41, 42},
	9:  {46, 47, 48},
	10: {49, 50, 51},
	11: {139, 89, 92},
	12: {140, 90, 93},
	13: {141, 91, 95},
	14: {116, 117, 118},
	15: {113, 114, 115},
	16: {131, 132},
	17: {85, 86, 87, 88},
	18: {55, 56},
	19: {137, 100, 136},
	20: {119, 120, 121},
	21: {81, 82},
	22: {133, 134, 135},
	23: {74, 60, 67},
	// 24 is built directly; see CardFromID.
	25: {122, 123, 124},
	26: {25, 28, 31},
	27: {26, 29, 32},
	28: {1, 6, 11},
	29: {3, 8, 13},
	30: {4, 9, 14},
	31: {16, 19, 22},
	32: {18, 21, 24},
	33: {34, 37, 35, 38, 36, 39},
	34: {128, 129, 130},
	35: {125, 126, 127},
	36: {57, 58, 59},
	37: {98, 103, 108},
	38: {100, 105, 110},
	39: {1, 16, 6, 19, 11, 22},
	40: {25, 3, 18, 28, 8, 21, 31, 13, 24},
	41: {26, 4, 142, 29, 9, 138, 32, 14, 143},
	42: {116, 113, 117, 114, 118, 115},
	43: {139, 140, 89, 90, 92, 93},
	44: {144, 141, 145, 91, 94, 95},
	45: {40, 41, 42, 46, 47, 48},
	46: {46, 47, 48, 49, 50, 51},
	// Reproduced verbatim from the original catalog, including its
	// repeated 41: card 47 does not reference constraint 42.
	47: {40, 41, 41, 49, 50, 51},
	48: {139, 89, 92, 140, 90, 93, 141, 91, 95},
}
