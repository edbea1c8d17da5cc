// Command seqalign aligns two sequences from the command line and prints
// the score matrix and, on request, the recovered alignments.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/render"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "seqalign:", err)
		os.Exit(1)
	}
}

// cliFlags collects every flag value before preset merging.
type cliFlags struct {
	preset        string
	showAlignment bool
	verbose       bool

	run RunSpec
}

func newRootCmd() *cobra.Command {
	var flags cliFlags

	cmd := &cobra.Command{
		Use:   "seqalign",
		Short: "Pairwise sequence alignment (Needleman–Wunsch / Smith–Waterman)",
		Long: `seqalign computes the optimal global or local alignment of two
sequences under a linear gap model, optionally weighted by a PAM250 or
BLOSUM62 substitution table. The full score matrix is always printed;
pass --alignment to also print the recovered alignment(s).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAlign(cmd, &flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.run.Seq1, "seq1", "", "first sequence, any case")
	f.StringVar(&flags.run.Seq2, "seq2", "", "second sequence, any case")
	f.Float64Var(&flags.run.Match, "match", 1, "weight of a match")
	f.Float64Var(&flags.run.Mismatch, "mismatch", -1, "weight of a mismatch")
	f.Float64Var(&flags.run.Gap, "gap", -1, "weight of a gap")
	f.StringVar(&flags.run.Weights, "weights", "", `substitution table: "pam" or "blosum"`)
	f.BoolVar(&flags.run.Local, "local", false, "local (Smith–Waterman) instead of global alignment")
	f.BoolVar(&flags.showAlignment, "alignment", false, "print the recovered alignment(s)")
	f.StringVar(&flags.preset, "preset", "", "YAML file with run parameters; explicit flags override it")
	f.BoolVar(&flags.verbose, "verbose", false, "debug logging")

	return cmd
}

func runAlign(cmd *cobra.Command, flags *cliFlags) error {
	logger := newLogger(flags.verbose)

	spec := flags.run
	if flags.preset != "" {
		preset, err := LoadRunSpec(flags.preset)
		if err != nil {
			return err
		}
		spec = mergeRunSpec(cmd, preset, flags.run)
		logger.Debug("preset loaded", "path", flags.preset)
	}
	if spec.Seq1 == "" || spec.Seq2 == "" {
		return fmt.Errorf("both --seq1 and --seq2 are required (flag or preset)")
	}

	opts := align.Options{
		Match:    spec.Match,
		Mismatch: spec.Mismatch,
		Gap:      spec.Gap,
		Table:    spec.Weights,
	}
	if spec.Local {
		opts.Mode = align.Local
	}

	logger.Info("alignment started",
		"seq1", spec.Seq1, "seq2", spec.Seq2,
		"match", spec.Match, "mismatch", spec.Mismatch, "gap", spec.Gap,
		"weights", spec.Weights, "mode", opts.Mode.String())

	matrix, result, err := align.Align(spec.Seq1, spec.Seq2, &opts)
	if err != nil {
		return err
	}
	logger.Info("alignment finished", "score", matrix.Score(), "alignments", len(result))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, render.MatrixString(matrix))
	if flags.showAlignment {
		fmt.Fprint(out, render.ResultString(result))
	}

	return nil
}

// newLogger builds the stderr slog logger; --verbose lowers it to debug.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
