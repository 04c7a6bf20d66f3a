// Package solve implements the deduction engine: cross-verifier
// elimination, the expected-eliminations question selector, the round
// driver, and the Solver façade (spec.md §§4.4-4.8).
package solve

import (
	"github.com/rs/zerolog"

	"github.com/brunnerant/turing-machine-game-solver/code"
	"github.com/brunnerant/turing-machine-game-solver/constraint"
	"github.com/brunnerant/turing-machine-game-solver/problem"
	"github.com/brunnerant/turing-machine-game-solver/verifier"
)

// Solver owns all mutable state for a single deduction: the vector of
// per-verifier pools, the queried codes in order, and the per-round
// verifier→answer maps. A Solver is not re-entrant: one Solve() call
// owns the state throughout, and no aliasing to its internals is
// exposed beyond the read-only accessors below.
type Solver struct {
	pools     []problem.Pool
	oracle    verifier.Verifier
	log       zerolog.Logger
	questions []code.Code
	answers   []map[int]bool
}

// New builds a Solver from a Problem and the oracle it will query.
// Logging defaults to a no-op logger; use WithLogger to attach one.
func New(p problem.Problem, oracle verifier.Verifier) *Solver {
	return &Solver{
		pools:  p.VerifierPools(),
		oracle: oracle,
		log:    zerolog.Nop(),
	}
}

// WithLogger attaches a structured logger for round-by-round progress
// and returns the Solver for chaining.
func (s *Solver) WithLogger(log zerolog.Logger) *Solver {
	s.log = log
	return s
}

// Pools returns the current per-verifier candidate pools. The slice and
// its contents must not be mutated by callers.
func (s *Solver) Pools() []problem.Pool {
	return s.pools
}

// Questions returns the codes queried so far, in order.
func (s *Solver) Questions() []code.Code {
	return s.questions
}

// Answers returns, for each queried code in order, the verifier→answer
// map collected that round.
func (s *Solver) Answers() []map[int]bool {
	return s.answers
}

// NumRounds returns the number of distinct codes queried so far.
func (s *Solver) NumRounds() int {
	return len(s.questions)
}

// NumQuestions returns the total number of yes/no answers collected so
// far, across all rounds.
func (s *Solver) NumQuestions() int {
	n := 0
	for _, a := range s.answers {
		n += len(a)
	}
	return n
}

// HasSolution reports the deduced code once every pool has shrunk to a
// single constraint and their intersection pins down exactly one code.
// It returns (nil, nil) while the deduction is still in progress, and a
// *MultipleSolutions error if the problem was ill-posed.
func (s *Solver) HasSolution() (*code.Code, error) {
	known := make([]constraint.Constraint, 0, len(s.pools))
	for _, p := range s.pools {
		if p.Len() != 1 {
			return nil, nil
		}
		known = append(known, p.Constraints[0])
	}

	inter := constraint.Inter(known...)
	if sol, ok := inter.Solution(); ok {
		return &sol, nil
	}

	candidates := make([]code.Code, 0)
	for _, c := range code.All() {
		if inter.Accepts(c) {
			candidates = append(candidates, c)
		}
	}
	return nil, &MultipleSolutions{Candidates: candidates}
}

// Round plays a single round (spec.md §4.7): pick the best question,
// query up to three verifiers with it (stopping early once further
// questions carry no expected information), and re-run elimination
// after each answer. The queried code and its answers are recorded only
// if at least one verifier was actually asked.
func (s *Solver) Round() error {
	c := bestQuestion(s.pools)
	asked := map[int]bool{}

	var roundErr error
	for i := 0; i < 3; i++ {
		v := bestVerifierForQuestion(s.pools, c)
		if v == -1 {
			break
		}

		answer := s.oracle.Accepts(v, c)
		s.pools[v].Retain(func(cons constraint.Constraint) bool {
			return cons.Accepts(c) == answer
		})
		asked[v] = answer

		s.log.Debug().
			Str("code", c.String()).
			Int("verifier", v).
			Bool("answer", answer).
			Int("pool_size", s.pools[v].Len()).
			Msg("verifier answered")

		if err := eliminate(s.pools); err != nil {
			roundErr = err
			break
		}
	}

	if len(asked) > 0 {
		s.questions = append(s.questions, c)
		s.answers = append(s.answers, asked)
	}
	return roundErr
}

// Solve runs elimination once, then plays rounds until a unique solution
// is found, returning it. It returns an *Impossible or *MultipleSolutions
// error if the deduction fails.
func (s *Solver) Solve() (code.Code, error) {
	if err := eliminate(s.pools); err != nil {
		return code.Code{}, err
	}

	for {
		if sol, err := s.HasSolution(); err != nil {
			return code.Code{}, err
		} else if sol != nil {
			return *sol, nil
		}

		if err := s.Round(); err != nil {
			return code.Code{}, err
		}

		s.log.Info().
			Int("round", s.NumRounds()).
			Int("questions", s.NumQuestions()).
			Msg("round complete")
	}
}
