// Package display renders a Solver's progress as a human-readable table,
// the same role the teacher's cli package plays for a chess position
// (cli/cli.go's FormatPosition), but built on a table-rendering library
// instead of a hand-rolled strings.Builder grid.
package display

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/brunnerant/turing-machine-game-solver/solve"
)

// PrintState renders the solver's round-by-round history: one header
// column per verifier (labeled, or "verifier N" if no labels are given),
// one row per question asked so far, showing a checked box, a crossed
// box, or an empty box per verifier depending on whether it was asked that round and
// how it answered, followed by a trailing "pool size" row.
func PrintState(w io.Writer, s *solve.Solver, labels []string) {
	pools := s.Pools()
	questions := s.Questions()
	answers := s.Answers()

	header := make([]string, len(pools)+1)
	header[0] = "code"
	for i := range pools {
		header[i+1] = verifierLabel(labels, i)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_CENTER)

	for round, c := range questions {
		row := make([]string, len(pools)+1)
		row[0] = c.String()
		for v := range pools {
			row[v+1] = "☐"
			if answer, asked := answers[round][v]; asked {
				if answer {
					row[v+1] = "☑" // ☑
				} else {
					row[v+1] = "☒" // ☒
				}
			}
		}
		table.Append(row)
	}

	sizes := make([]string, len(pools)+1)
	sizes[0] = "pool size"
	for v, p := range pools {
		sizes[v+1] = strconv.Itoa(p.Len())
	}
	table.SetFooter(sizes)

	table.Render()
}

func verifierLabel(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return "verifier " + strconv.Itoa(i)
}
