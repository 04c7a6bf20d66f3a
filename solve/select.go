package solve

import (
	"github.com/brunnerant/turing-machine-game-solver/code"
	"github.com/brunnerant/turing-machine-game-solver/problem"
)

// expectedEliminations computes E(P,c) = 2*n0*n1/(n0+n1), the twice-
// expected size of the eliminated subset under a uniform prior over the
// pool's constraints, averaged over the two possible answers. The
// factor of two is intentional (spec.md §4.4) and must be kept for
// tie-breaking to match reference behavior.
func expectedEliminations(p problem.Pool, c code.Code) rational {
	var n0, n1 int64
	for _, cons := range p.Constraints {
		if cons.Accepts(c) {
			n1++
		} else {
			n0++
		}
	}
	if n0+n1 == 0 {
		return zeroRational()
	}
	return newRational(2*n0*n1, n0+n1)
}

// bestQuestion scores every code by the sum of its three largest
// per-pool expected-elimination values and returns the maximizer. Ties
// are broken in favor of the lexicographically largest code, matching
// the reference's stable-sort-then-pop-last tie-break (spec.md §4.6).
func bestQuestion(pools []problem.Pool) code.Code {
	var best code.Code
	var bestScore rational
	first := true

	for _, c := range code.All() {
		score := topThreeSum(pools, c)
		if first || !score.less(bestScore) {
			best = c
			bestScore = score
			first = false
		}
	}
	return best
}

// topThreeSum returns the sum of the three largest expectedEliminations
// values across pools for the given code (fewer than three pools: sums
// all of them).
func topThreeSum(pools []problem.Pool, c code.Code) rational {
	elims := make([]rational, len(pools))
	for i, p := range pools {
		elims[i] = expectedEliminations(p, c)
	}

	// Selection of the three largest values; pool count is always small
	// so a simple partial selection sort is clearer than a full sort.
	n := len(elims)
	top := 3
	if top > n {
		top = n
	}
	for i := 0; i < top; i++ {
		maxIdx := i
		for j := i + 1; j < n; j++ {
			if elims[maxIdx].less(elims[j]) {
				maxIdx = j
			}
		}
		elims[i], elims[maxIdx] = elims[maxIdx], elims[i]
	}

	sum := zeroRational()
	for i := 0; i < top; i++ {
		sum = sum.add(elims[i])
	}
	return sum
}

// bestVerifierForQuestion returns the index of the pool with the largest
// expected elimination for code c, or -1 if every pool's expected
// elimination is zero. Ties return the smallest index (first-maximum,
// per spec.md §4.6/§9's resolution of the reference's ambiguous
// max_by_key tie behavior).
func bestVerifierForQuestion(pools []problem.Pool, c code.Code) int {
	best := -1
	var bestVal rational
	for i, p := range pools {
		val := expectedEliminations(p, c)
		if best == -1 || bestVal.less(val) {
			best = i
			bestVal = val
		}
	}
	if best != -1 && bestVal.num == 0 {
		return -1
	}
	return best
}
