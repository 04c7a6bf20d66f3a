// Package constraint implements the 125-bit membership set that
// represents a single verifier predicate, plus its small originating
// "group tag" (the card the constraint was drawn from).
package constraint

import (
	"github.com/brunnerant/turing-machine-game-solver/bitset"
	"github.com/brunnerant/turing-machine-game-solver/code"
)

// NoGroup marks a constraint whose group tag hasn't been assigned yet.
const NoGroup = -1

// Constraint is a predicate over the 125-code universe, represented as a
// membership bitset (see package bitset), plus the group tag of the card
// it was drawn from.
type Constraint struct {
	members bitset.Set
	Group   int
}

// New builds a Constraint from a predicate over codes, in O(125).
// The resulting constraint has no group tag assigned.
func New(pred func(code.Code) bool) Constraint {
	c := Constraint{Group: NoGroup}
	for _, cd := range code.All() {
		if pred(cd) {
			c.members.Insert(cd.Index())
		}
	}
	return c
}

// WithGroup returns a copy of c tagged with the given group.
func (c Constraint) WithGroup(group int) Constraint {
	c.Group = group
	return c
}

// Accepts reports whether the constraint's predicate holds for cd.
func (c Constraint) Accepts(cd code.Code) bool {
	return c.members.Contains(cd.Index())
}

// Intersect returns the conjunction of c and other. The group tag of the
// result is unspecified (NoGroup); callers that need a tag supply one
// explicitly via WithGroup.
func (c Constraint) Intersect(other Constraint) Constraint {
	return Constraint{members: c.members.And(other.members), Group: NoGroup}
}

// Inter folds Intersect over cs, starting from the all-ones top element.
// Inter() with no arguments returns Top.
func Inter(cs ...Constraint) Constraint {
	result := Top()
	for _, c := range cs {
		result = result.Intersect(c)
	}
	return result
}

// Top is the logical top element: the constraint accepting every code.
func Top() Constraint {
	var c Constraint
	c.Group = NoGroup
	for i := 0; i < code.NumCodes; i++ {
		c.members.Insert(i)
	}
	return c
}

// Bottom is the logical bottom element: the constraint accepting no code.
func Bottom() Constraint {
	return Constraint{Group: NoGroup}
}

// NumSolutions returns the number of codes the constraint accepts.
func (c Constraint) NumSolutions() int {
	return c.members.Len()
}

// HasUniqueSolution reports whether exactly one code satisfies c.
func (c Constraint) HasUniqueSolution() bool {
	return c.NumSolutions() == 1
}

// Solution returns the unique code accepted by c and true, or the zero
// Code and false if c does not have exactly one solution.
func (c Constraint) Solution() (code.Code, bool) {
	if !c.HasUniqueSolution() {
		return code.Code{}, false
	}
	return code.All()[c.members.Lowest()], true
}

// IsSupersetOf reports whether every code accepted by other is also
// accepted by c.
func (c Constraint) IsSupersetOf(other Constraint) bool {
	return c.members.IsSupersetOf(other.members)
}

// Equal reports whether c and other accept exactly the same codes
// (group tags are not compared).
func (c Constraint) Equal(other Constraint) bool {
	return c.members == other.members
}
