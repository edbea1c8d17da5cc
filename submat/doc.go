// Package submat loads and serves substitution-score tables for pairwise
// sequence alignment.
//
// 🚀 What is a substitution table?
//
//	A symmetric symbol×symbol lookup giving a pairwise affinity score
//	beyond a flat match/mismatch scalar. The classic examples — PAM and
//	BLOSUM families — encode how likely one amino acid is to substitute
//	for another over evolutionary time.
//
// ✨ Key features:
//   - embedded, ready-to-use PAM250 and BLOSUM62 tables (Load)
//   - whitespace-delimited text parser for custom tables (Parse)
//   - synthesized all-zero tables scoped to an observed alphabet (Zero)
//   - strict lookups: a pair outside the table is an error, never a
//     silent zero (ErrUnknownSymbol)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqalign/submat"
//
//	tbl, err := submat.Load("blosum")
//	if err != nil {
//	  // handle ErrUnknownTable
//	}
//	s, err := tbl.Score('W', 'F') // 1 under BLOSUM62
//
// Tables are immutable once constructed and safe for concurrent reads.
package submat
