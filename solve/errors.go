package solve

import (
	"fmt"
	"strings"

	"github.com/brunnerant/turing-machine-game-solver/code"
)

// MultipleSolutions is returned when every verifier pool has shrunk to a
// single constraint but their intersection still accepts more than one
// code: the problem itself was ill-posed (spec.md §7).
type MultipleSolutions struct {
	Candidates []code.Code
}

func (e *MultipleSolutions) Error() string {
	codes := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		codes[i] = c.String()
	}
	return fmt.Sprintf("multiple solutions remain: %s", strings.Join(codes, ", "))
}
