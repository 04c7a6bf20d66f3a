package problem

import (
	"testing"

	"github.com/brunnerant/turing-machine-game-solver/code"
	"github.com/brunnerant/turing-machine-game-solver/constraint"
)

func constant(accept bool) constraint.Constraint {
	return constraint.New(func(code.Code) bool { return accept })
}

func TestNormalModeOnePoolPerCard(t *testing.T) {
	cardA := Card{constant(true), constant(false)}
	cardB := Card{constant(true)}
	p := New([]Card{cardA, cardB}, Normal)

	if p.NumVerifiers() != 2 {
		t.Fatalf("expected 2 verifiers, got %d", p.NumVerifiers())
	}

	pools := p.VerifierPools()
	if len(pools) != 2 {
		t.Fatalf("expected 2 pools, got %d", len(pools))
	}
	if pools[0].Len() != 2 || pools[1].Len() != 1 {
		t.Fatalf("unexpected pool sizes: %d, %d", pools[0].Len(), pools[1].Len())
	}
	for _, c := range pools[0].Constraints {
		if c.Group != 0 {
			t.Fatalf("expected group 0, got %d", c.Group)
		}
	}
	for _, c := range pools[1].Constraints {
		if c.Group != 1 {
			t.Fatalf("expected group 1, got %d", c.Group)
		}
	}
}

func TestExtremeModePairsCards(t *testing.T) {
	cards := []Card{
		{constant(true)},
		{constant(true), constant(false)},
		{constant(true)},
	}
	p := New(cards, Extreme)

	if p.NumVerifiers() != 2 {
		t.Fatalf("expected ceil(3/2)=2 verifiers, got %d", p.NumVerifiers())
	}

	pools := p.VerifierPools()
	if pools[0].Len() != 3 {
		t.Fatalf("expected first pool to concatenate cards 0+1 (3 constraints), got %d", pools[0].Len())
	}
	if pools[1].Len() != 1 {
		t.Fatalf("expected second (odd, half-size) pool to have 1 constraint, got %d", pools[1].Len())
	}
	for _, c := range pools[0].Constraints {
		if c.Group != 0 {
			t.Fatalf("expected group 0 for pool 0, got %d", c.Group)
		}
	}
}

func TestNightmareModeSharesMasterPoolButTagsOriginalCard(t *testing.T) {
	cards := []Card{
		{constant(true)},
		{constant(true), constant(false)},
		{constant(true)},
	}
	p := New(cards, Nightmare)

	if p.NumVerifiers() != 3 {
		t.Fatalf("expected 3 verifiers, got %d", p.NumVerifiers())
	}

	pools := p.VerifierPools()
	for _, pool := range pools {
		if pool.Len() != 4 {
			t.Fatalf("expected every verifier to see all 4 constraints, got %d", pool.Len())
		}
	}

	groups := map[int]bool{}
	for _, c := range pools[0].Constraints {
		groups[c.Group] = true
	}
	if len(groups) != 3 {
		t.Fatalf("expected constraints tagged with 3 distinct original card indices, got %d", len(groups))
	}

	// Pools must be independent copies: mutating one must not affect another.
	pools[0].Retain(func(constraint.Constraint) bool { return false })
	if pools[1].Len() != 4 {
		t.Fatalf("expected pool 1 to be unaffected by mutating pool 0, got %d", pools[1].Len())
	}
}

func TestPoolRetain(t *testing.T) {
	pool := Pool{Constraints: []constraint.Constraint{constant(true), constant(false), constant(true)}}
	pool.Retain(func(c constraint.Constraint) bool { return c.Accepts(code.New(1, 1, 1)) })
	if pool.Len() != 2 {
		t.Fatalf("expected 2 constraints retained, got %d", pool.Len())
	}
}
