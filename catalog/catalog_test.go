package catalog

import (
	"testing"

	"github.com/brunnerant/turing-machine-game-solver/code"
)

func TestAllConstraintIDsResolve(t *testing.T) {
	for id := 1; id <= 145; id++ {
		name, c := ConstraintFromID(id)
		if name == "" {
			t.Fatalf("constraint %d has empty name", id)
		}
		if c.NumSolutions() == 0 {
			t.Fatalf("constraint %d (%s) accepts no codes", id, name)
		}
	}
}

func TestAllCardIDsResolve(t *testing.T) {
	for id := 1; id <= 48; id++ {
		card := CardFromID(id)
		if len(card) == 0 {
			t.Fatalf("card %d is empty", id)
		}
	}
}

func TestConstraintFromIDSemantics(t *testing.T) {
	testcases := []struct {
		id       int
		code     code.Code
		expected bool
	}{
		{1, code.New(1, 1, 1), true},   // ▲=1
		{1, code.New(2, 1, 1), false},  // ▲=1
		{16, code.New(2, 1, 1), true},  // ▲>1
		{34, code.New(2, 1, 1), true},  // even(▲)
		{34, code.New(1, 1, 1), false}, // even(▲)
		{82, code.New(1, 2, 1), true},  // #distinct=2
		{82, code.New(1, 2, 3), false}, // #distinct=2
	}

	for _, tc := range testcases {
		_, c := ConstraintFromID(tc.id)
		if got := c.Accepts(tc.code); got != tc.expected {
			t.Fatalf("constraint %d on %s: expected %v, got %v", tc.id, tc.code, tc.expected, got)
		}
	}
}

func TestCard1IsBinaryChoice(t *testing.T) {
	card := CardFromID(1)
	if len(card) != 2 {
		t.Fatalf("expected card 1 to have 2 constraints, got %d", len(card))
	}
	// ▲=1 and ▲>1 partition the code space exactly.
	c := code.New(1, 3, 4)
	if card[0].Accepts(c) == card[1].Accepts(c) {
		t.Fatalf("expected exactly one of card 1's constraints to accept %s", c)
	}
}
