// Package align computes optimal pairwise alignments of two symbol
// sequences by full-matrix dynamic programming.
//
// 🚀 What does it do?
//
//	Two classic recurrences over one (n+1)×(m+1) score matrix:
//	  • Global (Needleman–Wunsch): both sequences aligned end to end;
//	    the border encodes contiguous leading gaps and traceback starts
//	    at the bottom-right corner.
//	  • Local (Smith–Waterman): best-scoring substrings; every cell is
//	    clamped at 0 and traceback starts from every cell attaining the
//	    matrix maximum, stopping at the first zero cell.
//
// Scores come from a Scheme: scalar match/mismatch/gap weights plus a
// substitution table (submat.Table) whose contribution is added to every
// pair and gap score. A pair the table does not cover is an error, never
// a silent zero.
//
// ✨ Key properties:
//   - linear gap model, full O(N·M) time and memory
//   - per-cell move tags captured at fill time, so traceback never
//     re-compares floating-point sums
//   - deterministic tie-break: diagonal over left over up
//   - all tied local maxima reported, one alignment per start cell
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqalign/align"
//
//	opts := align.DefaultOptions()
//	opts.Mode = align.Local
//	opts.Match, opts.Mismatch, opts.Gap = 3, -3, -2
//
//	matrix, result, err := align.Align("TGTTACGG", "GGTTGACTA", &opts)
//	if err != nil {
//	  // handle submat.ErrUnknownTable, submat.ErrUnknownSymbol, align.ErrBadMode
//	}
//	for start, pair := range result {
//	  fmt.Println(start, pair.Seq1, pair.Seq2)
//	}
//	_ = matrix // full score table, read-only after Fill
//
// Complexity:
//
//	Time   = O(N·M) fill + O(k·(N+M)) traceback for k start cells
//	Memory = O(N·M)
package align
