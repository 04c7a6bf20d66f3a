package solve

import (
	"github.com/brunnerant/turing-machine-game-solver/constraint"
	"github.com/brunnerant/turing-machine-game-solver/problem"
)

// Impossible is returned when elimination drives one or more verifier
// pools to empty: the answers collected so far are inconsistent with any
// globally valid assignment.
type Impossible struct {
	VerifierIndices []int
}

func (e *Impossible) Error() string {
	return "no globally valid assignment is consistent with the given answers"
}

// eliminate prunes every pool to the constraints that participate in at
// least one globally valid assignment (spec.md §4.5), iterating to a
// fixed point. It mutates pools in place.
func eliminate(pools []problem.Pool) error {
	for {
		changed, err := eliminateOnce(pools)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
	}
}

// eliminateOnce performs a single elimination pass: it marks every
// constraint that participates in at least one valid assignment, then
// drops everything unmarked. It reports whether anything was dropped.
func eliminateOnce(pools []problem.Pool) (bool, error) {
	witnessed := make([][]bool, len(pools))
	for i, p := range pools {
		witnessed[i] = make([]bool, p.Len())
	}

	w := &witness{pools: pools, witnessed: witnessed}
	w.search(0, nil, nil, nil)

	changed := false
	emptyPools := []int{}
	for i := range pools {
		before := pools[i].Len()
		keepIdx := 0
		pools[i].Retain(func(constraint.Constraint) bool {
			keep := witnessed[i][keepIdx]
			keepIdx++
			return keep
		})
		if pools[i].Len() != before {
			changed = true
		}
		if pools[i].Len() == 0 {
			emptyPools = append(emptyPools, i)
		}
	}

	if len(emptyPools) > 0 {
		return changed, &Impossible{VerifierIndices: emptyPools}
	}
	return changed, nil
}

// witness carries the recursion state for the Cartesian-product search
// over pool index selections.
type witness struct {
	pools     []problem.Pool
	witnessed [][]bool
}

// search enumerates index tuples across pools[poolIdx:], given the
// constraints/groups/indices already chosen for pools[:poolIdx].
func (w *witness) search(poolIdx int, chosen []constraint.Constraint, chosenGroups []int, chosenIdx []int) {
	if poolIdx == len(w.pools) {
		w.considerAssignment(chosen, chosenIdx)
		return
	}

	for idx, c := range w.pools[poolIdx].Constraints {
		// Condition 2 (distinct group tags) is checked before the
		// expensive intersection test, per spec.md §4.5.
		conflict := false
		for _, g := range chosenGroups {
			if g == c.Group {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}

		w.search(poolIdx+1,
			append(chosen, c),
			append(chosenGroups, c.Group),
			append(chosenIdx, idx))
	}
}

// considerAssignment checks conditions 1 and 3 for a fully-chosen tuple
// and, if valid, marks every participating constraint as witnessed.
func (w *witness) considerAssignment(chosen []constraint.Constraint, chosenIdx []int) {
	inter := constraint.Inter(chosen...)
	if !inter.HasUniqueSolution() {
		return
	}

	for i := range chosen {
		others := make([]constraint.Constraint, 0, len(chosen)-1)
		for j, c := range chosen {
			if j != i {
				others = append(others, c)
			}
		}
		otherInter := constraint.Inter(others...)
		if chosen[i].IsSupersetOf(otherInter) {
			// Non-redundancy violated: chosen[i] contributes nothing.
			return
		}
	}

	for poolIdx, idx := range chosenIdx {
		w.witnessed[poolIdx][idx] = true
	}
}
