package constraint

import (
	"testing"

	"github.com/brunnerant/turing-machine-game-solver/code"
)

func TestNewIsFaithfulToPredicate(t *testing.T) {
	pred := func(c code.Code) bool { return c.At(code.Triangle) == 3 }
	c := New(pred)

	for _, cd := range code.All() {
		if c.Accepts(cd) != pred(cd) {
			t.Fatalf("%s: Accepts()=%v, predicate=%v", cd, c.Accepts(cd), pred(cd))
		}
	}
}

func TestIntersectIsConjunction(t *testing.T) {
	a := New(func(c code.Code) bool { return c.At(code.Triangle) > 2 })
	b := New(func(c code.Code) bool { return c.At(code.Square) == 1 })
	inter := a.Intersect(b)

	for _, cd := range code.All() {
		expected := a.Accepts(cd) && b.Accepts(cd)
		if inter.Accepts(cd) != expected {
			t.Fatalf("%s: intersect mismatch", cd)
		}
	}
}

func TestHasUniqueSolution(t *testing.T) {
	target := code.New(1, 2, 3)
	c := New(func(cd code.Code) bool { return cd.Equal(target) })

	if !c.HasUniqueSolution() {
		t.Fatalf("expected unique solution")
	}
	sol, ok := c.Solution()
	if !ok || !sol.Equal(target) {
		t.Fatalf("expected solution %s, got %s (ok=%v)", target, sol, ok)
	}
	if c.NumSolutions() != 1 {
		t.Fatalf("expected NumSolutions()==1, got %d", c.NumSolutions())
	}
}

func TestTopAndBottom(t *testing.T) {
	top := Top()
	if top.NumSolutions() != code.NumCodes {
		t.Fatalf("expected top to accept all %d codes, accepts %d", code.NumCodes, top.NumSolutions())
	}

	bottom := Bottom()
	if bottom.NumSolutions() != 0 {
		t.Fatalf("expected bottom to accept no codes, accepts %d", bottom.NumSolutions())
	}
}

func TestIsSupersetOf(t *testing.T) {
	narrow := New(func(c code.Code) bool { return c.At(code.Triangle) == 1 })
	wide := New(func(c code.Code) bool { return c.At(code.Triangle) <= 2 })

	if !wide.IsSupersetOf(narrow) {
		t.Fatalf("expected wide to be a superset of narrow")
	}
	if narrow.IsSupersetOf(wide) && !narrow.Equal(wide) {
		t.Fatalf("narrow should not be a superset of a strictly wider constraint")
	}
}

func TestInter(t *testing.T) {
	a := New(func(c code.Code) bool { return c.At(code.Triangle) >= 3 })
	b := New(func(c code.Code) bool { return c.At(code.Square) >= 3 })
	cc := New(func(c code.Code) bool { return c.At(code.Circle) >= 3 })

	got := Inter(a, b, cc)
	for _, cd := range code.All() {
		expected := a.Accepts(cd) && b.Accepts(cd) && cc.Accepts(cd)
		if got.Accepts(cd) != expected {
			t.Fatalf("%s: Inter mismatch", cd)
		}
	}

	if !Inter().Equal(Top()) {
		t.Fatalf("Inter() with no arguments should equal Top()")
	}
}

func TestWithGroup(t *testing.T) {
	c := New(func(code.Code) bool { return true }).WithGroup(2)
	if c.Group != 2 {
		t.Fatalf("expected group 2, got %d", c.Group)
	}
}
