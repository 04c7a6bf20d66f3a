// Package problem turns a list of cards and a game mode into the ordered
// list of per-verifier candidate-constraint pools the solver works from.
package problem

import (
	"fmt"

	"github.com/brunnerant/turing-machine-game-solver/constraint"
)

// Mode selects how cards are distributed across verifiers.
type Mode int

const (
	// Normal assigns one card to each verifier.
	Normal Mode = iota
	// Extreme pairs consecutive cards into a single verifier each.
	Extreme
	// Nightmare exposes every card's constraints to every verifier; only
	// the eventual selection's group tags distinguish which card a
	// verifier's hidden constraint actually came from.
	Nightmare
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Extreme:
		return "extreme"
	case Nightmare:
		return "nightmare"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Card is an ordered, non-empty list of mutually exclusive constraints,
// exactly one of which is the card's hidden truth in a given problem.
type Card []constraint.Constraint

// Problem is the ordered list of cards plus the mode they're played
// under. Cards and constraints are immutable after loading.
type Problem struct {
	Cards []Card
	Mode  Mode
}

// New builds a Problem from its cards and mode.
func New(cards []Card, mode Mode) Problem {
	return Problem{Cards: cards, Mode: mode}
}

// Pool is the ordered, mutable set of candidate constraints still in play
// for one verifier. Pools shrink monotonically during solving; a pool of
// size one means the verifier's hidden constraint is known.
type Pool struct {
	Constraints []constraint.Constraint
}

// Len returns the number of constraints still in the pool.
func (p *Pool) Len() int {
	return len(p.Constraints)
}

// Retain keeps only the constraints for which keep returns true,
// preserving order. It is a no-op if every constraint is kept.
func (p *Pool) Retain(keep func(constraint.Constraint) bool) {
	kept := p.Constraints[:0]
	for _, c := range p.Constraints {
		if keep(c) {
			kept = append(kept, c)
		}
	}
	p.Constraints = kept
}

// Clone returns an independent copy of the pool.
func (p *Pool) Clone() Pool {
	cp := make([]constraint.Constraint, len(p.Constraints))
	copy(cp, p.Constraints)
	return Pool{Constraints: cp}
}

// NumVerifiers returns how many verifier pools the problem produces under
// its mode: len(Cards) for Normal and Nightmare, ceil(len(Cards)/2) for
// Extreme.
func (p Problem) NumVerifiers() int {
	switch p.Mode {
	case Extreme:
		return (len(p.Cards) + 1) / 2
	default:
		return len(p.Cards)
	}
}

// VerifierPools builds the ordered list of per-verifier candidate pools
// for the problem, per spec.md §4.3:
//
//   - Normal: each card becomes one pool, group-tagged with the
//     verifier's own index.
//   - Extreme: cards are grouped into consecutive pairs; each pair's
//     constraints are concatenated into one pool, group-tagged with the
//     pool's verifier index.
//   - Nightmare: all cards' constraints are unioned into a single master
//     pool, each constraint keeping its *originating card's* index as
//     its group tag; every verifier then receives an independent copy of
//     that master pool.
func (p Problem) VerifierPools() []Pool {
	switch p.Mode {
	case Extreme:
		return p.extremePools()
	case Nightmare:
		return p.nightmarePools()
	default:
		return p.normalPools()
	}
}

func (p Problem) normalPools() []Pool {
	pools := make([]Pool, len(p.Cards))
	for i, card := range p.Cards {
		pools[i] = Pool{Constraints: tagGroup(card, i)}
	}
	return pools
}

func (p Problem) extremePools() []Pool {
	numVerifiers := p.NumVerifiers()
	pools := make([]Pool, numVerifiers)
	for v := 0; v < numVerifiers; v++ {
		var merged []constraint.Constraint
		for _, card := range p.Cards[2*v : min(2*v+2, len(p.Cards))] {
			merged = append(merged, card...)
		}
		pools[v] = Pool{Constraints: tagGroup(merged, v)}
	}
	return pools
}

func (p Problem) nightmarePools() []Pool {
	var master []constraint.Constraint
	for cardIdx, card := range p.Cards {
		master = append(master, tagGroup(card, cardIdx)...)
	}

	pools := make([]Pool, len(p.Cards))
	for v := range pools {
		cp := make([]constraint.Constraint, len(master))
		copy(cp, master)
		pools[v] = Pool{Constraints: cp}
	}
	return pools
}

func tagGroup(cs []constraint.Constraint, group int) []constraint.Constraint {
	tagged := make([]constraint.Constraint, len(cs))
	for i, c := range cs {
		tagged[i] = c.WithGroup(group)
	}
	return tagged
}
