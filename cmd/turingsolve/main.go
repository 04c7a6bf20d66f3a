// Command turingsolve runs the deduction engine against a card set given
// on the command line, either interactively (prompting a human for each
// verifier's answer) or, with --problems, against a loaded problem file's
// declared ground truth — replacing the teacher's flag-based debugging
// tool (internal/perft/perft.go) and the original's src/bin/test.rs
// batch harness / src/main.rs demo with a single Cobra command.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/brunnerant/turing-machine-game-solver/catalog"
	"github.com/brunnerant/turing-machine-game-solver/display"
	"github.com/brunnerant/turing-machine-game-solver/problem"
	"github.com/brunnerant/turing-machine-game-solver/problemset"
	"github.com/brunnerant/turing-machine-game-solver/solve"
	"github.com/brunnerant/turing-machine-game-solver/verifier"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		modeFlag    string
		cardIDs     []int
		autoFlag    bool
		problemPath string
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "turingsolve",
		Short: "Solve a Turing Machine verifier-card deduction puzzle",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := zerolog.Nop()
			if verbose {
				log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).With().Timestamp().Logger()
			}

			if problemPath != "" {
				return runFromProblemFile(cmd, problemPath, log)
			}
			return runFromCards(cmd, modeFlag, cardIDs, autoFlag, log)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&modeFlag, "mode", "normal", "game mode: normal, extreme, or nightmare")
	flags.IntSliceVar(&cardIDs, "cards", nil, "card IDs to load from the built-in catalog, in verifier order")
	flags.BoolVar(&autoFlag, "auto", false, "rejected together with --cards (no ground truth is known for a card list); --problems runs always answer from ground truth")
	flags.StringVar(&problemPath, "problems", "", "path to a JSON problem/regression file (see problemset.Entry); runs every entry, answering from its declared ground truth")
	flags.BoolVar(&verbose, "verbose", false, "log round-by-round solver progress")

	return cmd
}

func runFromCards(cmd *cobra.Command, modeName string, cardIDs []int, auto bool, log zerolog.Logger) error {
	if len(cardIDs) == 0 {
		return fmt.Errorf("--cards is required when --problems is not given")
	}

	mode, err := problemset.ParseMode(modeName)
	if err != nil {
		return err
	}

	cards := make([]problem.Card, len(cardIDs))
	labels := make([]string, len(cardIDs))
	for i, id := range cardIDs {
		cards[i] = catalog.CardFromID(id)
		labels[i] = fmt.Sprintf("card %d", id)
	}
	p := problem.New(cards, mode)

	var oracle verifier.Verifier
	if auto {
		return fmt.Errorf("--auto requires --problems with declared ground truth; use --problems for regression runs")
	}
	oracle = verifier.NewInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), labels)

	s := solve.New(p, oracle).WithLogger(log)
	sol, err := s.Solve()
	if err != nil {
		return err
	}

	display.PrintState(cmd.OutOrStdout(), s, labels)
	fmt.Fprintf(cmd.OutOrStdout(), "solution: %s (%d rounds, %d questions)\n", sol, s.NumRounds(), s.NumQuestions())
	return nil
}

func runFromProblemFile(cmd *cobra.Command, path string, log zerolog.Logger) error {
	entries, err := problemset.Load(path)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()

	for i, e := range entries {
		p, err := e.Problem()
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}

		s := solve.New(p, e.GroundTruth()).WithLogger(log)
		sol, err := s.Solve()
		if err != nil {
			fmt.Fprintf(out, "%-10s %-10s FAILED: %v\n", e.Mode, e.Difficulty, err)
			continue
		}

		status := "ok"
		if budget := e.QuestionBudget(); s.NumQuestions() > budget {
			status = fmt.Sprintf("over budget (%d > %d)", s.NumQuestions(), budget)
		}
		match := "match"
		if !sol.Equal(e.Solution()) {
			match = fmt.Sprintf("MISMATCH expected %s", e.Solution())
		}
		fmt.Fprintf(out, "%-10s %-10s rounds=%d questions=%d %s %s\n",
			e.Mode, e.Difficulty, s.NumRounds(), s.NumQuestions(), status, match)
	}
	return nil
}
