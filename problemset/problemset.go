// Package problemset loads Turing Machine puzzle definitions from JSON,
// the embodiment spec.md §6 describes: a problem's mode, its cards, the
// ground-truth constraint behind each card ("laws"), the intended
// solution code, and two difficulty-tracking fields carried over from
// the original's data/games.json fixture (bin/test.rs). It is pure data
// loading; it never constructs a Solver itself.
package problemset

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/brunnerant/turing-machine-game-solver/catalog"
	"github.com/brunnerant/turing-machine-game-solver/code"
	"github.com/brunnerant/turing-machine-game-solver/constraint"
	"github.com/brunnerant/turing-machine-game-solver/problem"
	"github.com/brunnerant/turing-machine-game-solver/verifier"
)

//go:embed testdata/games.json
var bundledCorpus embed.FS

// Entry is one puzzle definition as it appears in a games.json corpus.
type Entry struct {
	Mode           string `json:"mode"`
	Cards          []int  `json:"cards"`
	Laws           []int  `json:"laws"`
	Solution       [3]int `json:"solution"`
	Difficulty     string `json:"difficulty"`
	NumQuestionsAI int    `json:"num-questions-ai"`
}

// ParseMode translates a JSON mode string into a problem.Mode.
func ParseMode(s string) (problem.Mode, error) {
	switch s {
	case "normal":
		return problem.Normal, nil
	case "extreme":
		return problem.Extreme, nil
	case "nightmare":
		return problem.Nightmare, nil
	default:
		return 0, fmt.Errorf("problemset: unknown mode %q", s)
	}
}

// Problem builds the problem.Problem this entry describes, loading every
// card by ID from the catalog.
func (e Entry) Problem() (problem.Problem, error) {
	mode, err := ParseMode(e.Mode)
	if err != nil {
		return problem.Problem{}, err
	}

	cards := make([]problem.Card, len(e.Cards))
	for i, id := range e.Cards {
		cards[i] = catalog.CardFromID(id)
	}
	return problem.New(cards, mode), nil
}

// GroundTruth builds the verifier.Automatic oracle matching this entry's
// declared "laws": the constraint ID each verifier's hidden truth
// actually is.
func (e Entry) GroundTruth() verifier.Automatic {
	truths := make([]verifier.Constraint, len(e.Laws))
	for i, id := range e.Laws {
		_, c := catalog.ConstraintFromID(id)
		truths[i] = c
	}
	return verifier.NewAutomatic(truths)
}

// Solution returns the code this entry declares as the intended answer.
func (e Entry) Solution() code.Code {
	return code.New(e.Solution[0], e.Solution[1], e.Solution[2])
}

// QuestionBudget returns the entry's reference AI question count
// (num-questions-ai), adjusted per spec.md §6: non-Normal
// modes get a 1.5x soft budget (rounded up), since verifiers answer less
// informatively when cards are paired or shared.
func (e Entry) QuestionBudget() int {
	mode, err := ParseMode(e.Mode)
	if err != nil || mode == problem.Normal {
		return e.NumQuestionsAI
	}
	return int(math.Ceil(float64(e.NumQuestionsAI) * 1.5))
}

// GroundTruthConstraint is a convenience wrapper resolving a catalog
// constraint ID to its name and constraint.Constraint, for callers that
// want the name alongside the predicate (e.g. for display labels).
func GroundTruthConstraint(id int) (string, constraint.Constraint) {
	return catalog.ConstraintFromID(id)
}

// Load reads a JSON array of Entry from path.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decode(f)
}

// LoadBundled returns the small regression corpus bundled with this
// module (testdata/games.json): hand-built entries in the shape of the
// original's data/games.json fixture.
func LoadBundled() ([]Entry, error) {
	f, err := bundledCorpus.Open("testdata/games.json")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decode(f)
}

func decode(r io.Reader) ([]Entry, error) {
	var entries []Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("problemset: decoding corpus: %w", err)
	}
	return entries, nil
}
