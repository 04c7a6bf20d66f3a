package verifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brunnerant/turing-machine-game-solver/code"
	"github.com/brunnerant/turing-machine-game-solver/constraint"
)

func TestAutomaticDelegatesToGroundTruth(t *testing.T) {
	isOne := constraint.New(func(c code.Code) bool { return c.At(code.Triangle) == 1 })
	isTwo := constraint.New(func(c code.Code) bool { return c.At(code.Triangle) == 2 })

	auto := NewAutomatic([]Constraint{isOne, isTwo})

	require.True(t, auto.Accepts(0, code.New(1, 3, 3)))
	require.False(t, auto.Accepts(0, code.New(2, 3, 3)))
	require.True(t, auto.Accepts(1, code.New(2, 3, 3)))
}

func TestInteractiveParsesYesNo(t *testing.T) {
	in := strings.NewReader("maybe\ny\nn\n")
	var out strings.Builder

	iv := NewInteractive(in, &out, []string{"A", "B"})

	require.True(t, iv.Accepts(0, code.New(1, 2, 3)))
	require.False(t, iv.Accepts(1, code.New(1, 2, 3)))
	require.Contains(t, out.String(), "A, code")
	require.Contains(t, out.String(), "please answer y or n")
}

func TestInteractiveExhaustedInputDefaultsToNo(t *testing.T) {
	in := strings.NewReader("")
	var out strings.Builder
	iv := NewInteractive(in, &out, nil)

	require.False(t, iv.Accepts(0, code.New(1, 1, 1)))
}
