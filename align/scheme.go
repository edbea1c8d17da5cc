package align

import "github.com/katalvlaran/seqalign/submat"

// Scheme resolves the score of aligning two symbols, or one symbol against
// a gap. Scalar weights and the substitution table always combine: the
// table contributes an additive term to every score the recurrence uses.
// A Scheme is read-only after construction and shared by fill and every
// traceback derived from the same matrix.
type Scheme struct {
	Match    float64
	Mismatch float64
	Gap      float64

	table *submat.Table
}

// NewScheme builds a Scheme over the given table. The table must not be
// nil; pass submat.Zero(...) when no substitution scoring is wanted.
func NewScheme(match, mismatch, gap float64, table *submat.Table) *Scheme {
	return &Scheme{Match: match, Mismatch: mismatch, Gap: gap, table: table}
}

// Table returns the substitution table backing this scheme.
func (s *Scheme) Table() *submat.Table { return s.table }

// PairScore scores aligning symbol a against symbol b:
// Match + sub(a,b) when they are equal, Mismatch + sub(a,b) otherwise.
// A pair outside the table propagates submat.ErrUnknownSymbol.
func (s *Scheme) PairScore(a, b byte) (float64, error) {
	sub, err := s.table.Score(a, b)
	if err != nil {
		return 0, err
	}
	if a == b {
		return s.Match + sub, nil
	}

	return s.Mismatch + sub, nil
}

// GapScore scores aligning symbol x against a gap: Gap + sub(x,'-').
// The table is symmetric, so sub(x,'-') and sub('-',x) agree.
func (s *Scheme) GapScore(x byte) (float64, error) {
	sub, err := s.table.Score(x, submat.Gap)
	if err != nil {
		return 0, err
	}

	return s.Gap + sub, nil
}
