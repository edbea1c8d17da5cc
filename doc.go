// Package seqalign computes optimal pairwise alignments of symbol
// sequences — biological or otherwise — with classic dynamic programming.
//
// 🚀 What is seqalign?
//
//	A small, focused library implementing the two textbook recurrences:
//		• Global alignment: Needleman–Wunsch, end-to-end over both sequences
//		• Local alignment:  Smith–Waterman, best-scoring substrings
//	under a linear gap model, with an optional PAM/BLOSUM-style
//	substitution table layered on top of scalar match/mismatch/gap weights.
//
// ✨ Why choose seqalign?
//
//   - Minimal API – one Options struct, one Align call, plain data out
//   - Exact semantics – full O(N·M) matrix, all tied local maxima reported
//   - Honest errors – unknown tables and missing symbol pairs fail loudly
//   - Batteries included – embedded PAM250 & BLOSUM62, renderer, CLI
//
// Everything is organized under three subpackages plus a command:
//
//	align/        — scoring scheme, alignment matrix, traceback, results
//	submat/       — substitution-table loading, parsing and zero tables
//	render/       — matrix dumps and alignment pretty-printing
//	cmd/seqalign/ — command-line front end
//
// Quick ASCII example:
//
//	    G C A - T G C U
//	    |   |   | . | .
//	    G - A T T A C A
//
//	a global alignment of GCATGCU against GATTACA, score 0.
//
// Dive into the per-package docs for the recurrences, tie-break rules and
// worked examples.
//
//	go get github.com/katalvlaran/seqalign
package seqalign
