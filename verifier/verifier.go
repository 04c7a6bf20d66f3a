// Package verifier implements the external oracle the round driver
// queries for yes/no answers (spec.md §4.8): a single-method capability
// plus its two canonical implementations.
package verifier

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/brunnerant/turing-machine-game-solver/code"
)

// Verifier answers whether the hidden constraint behind verifierIndex
// accepts the given code.
type Verifier interface {
	Accepts(verifierIndex int, c code.Code) bool
}

// Constraint is the minimal predicate surface Automatic needs; it is
// satisfied by constraint.Constraint without this package importing it
// directly, keeping verifier decoupled from the bitset representation.
type Constraint interface {
	Accepts(c code.Code) bool
}

// Automatic is a scripted oracle backed by one ground-truth constraint
// per verifier. It is used for regression testing and batch evaluation
// (spec.md §4.8); it never blocks.
type Automatic struct {
	GroundTruth []Constraint
}

// NewAutomatic builds an Automatic oracle from the ground-truth
// constraint of each verifier, in verifier order.
func NewAutomatic(groundTruth []Constraint) Automatic {
	return Automatic{GroundTruth: groundTruth}
}

// Accepts implements Verifier.
func (a Automatic) Accepts(verifierIndex int, c code.Code) bool {
	return a.GroundTruth[verifierIndex].Accepts(c)
}

// Interactive prompts a human for each answer, reading lines from In and
// writing prompts to Out. Labels is used to render each verifier's label
// (e.g. a letter or card description) in the prompt.
type Interactive struct {
	In     *bufio.Reader
	Out    io.Writer
	Labels []string
}

// NewInteractive builds an Interactive oracle over in/out, labeling
// verifiers with the given strings (typically their card letters).
func NewInteractive(in io.Reader, out io.Writer, labels []string) *Interactive {
	return &Interactive{In: bufio.NewReader(in), Out: out, Labels: labels}
}

// Accepts implements Verifier: it prints a yes/no prompt for the given
// verifier and code, and parses the reply. Unparseable replies are
// re-prompted.
func (iv *Interactive) Accepts(verifierIndex int, c code.Code) bool {
	label := fmt.Sprintf("verifier %d", verifierIndex)
	if verifierIndex < len(iv.Labels) {
		label = iv.Labels[verifierIndex]
	}

	for {
		fmt.Fprintf(iv.Out, "%s, code %s — answer [y/n] > ", label, c)
		line, err := iv.In.ReadString('\n')
		if err != nil && line == "" {
			// No more input available; treat as a "no" rather than
			// blocking forever, since the oracle must always answer.
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		default:
			fmt.Fprintln(iv.Out, "please answer y or n")
		}
	}
}
