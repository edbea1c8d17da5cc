package align

import (
	"strings"

	"github.com/katalvlaran/seqalign/submat"
)

// Align runs the full pipeline: normalize both sequences to upper case,
// resolve the substitution table, build the matrix border, fill the
// interior and trace the alignment(s) back.
//
// Table resolution: a named table is loaded via submat.Load (an unknown
// identifier fails here, before any matrix work); an empty Table field
// synthesizes a zero-valued table over exactly the symbols occurring in
// the two inputs plus the gap symbol. That zero table is scoped to this
// run — reusing the returned Scheme with other sequences can hit
// submat.ErrUnknownSymbol by design.
//
// opts may be nil, meaning DefaultOptions. Empty sequences are legal:
// the run degenerates to a border-only matrix and, in Global mode, an
// all-gap alignment.
//
// Example:
//
//	opts := align.DefaultOptions()
//	m, res, err := align.Align("GCATGCU", "GATTACA", &opts)
func Align(seq1, seq2 string, opts *Options) (*Matrix, Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Mode != Global && o.Mode != Local {
		return nil, nil, ErrBadMode
	}

	s1 := strings.ToUpper(seq1)
	s2 := strings.ToUpper(seq2)

	var (
		table *submat.Table
		err   error
	)
	if o.Table != "" {
		if table, err = submat.Load(o.Table); err != nil {
			return nil, nil, err
		}
	} else {
		table = submat.Zero(alphabet(s1, s2))
	}

	m, err := NewMatrix(s1, s2, NewScheme(o.Match, o.Mismatch, o.Gap, table), o.Mode)
	if err != nil {
		return nil, nil, err
	}
	if err = m.Fill(); err != nil {
		return nil, nil, err
	}
	res, err := m.Traceback()
	if err != nil {
		return nil, nil, err
	}

	return m, res, nil
}

// alphabet returns the distinct bytes of both sequences, first-seen order.
func alphabet(s1, s2 string) []byte {
	seen := make(map[byte]bool, len(s1)+len(s2))
	var out []byte
	for _, s := range []string{s1, s2} {
		for k := 0; k < len(s); k++ {
			if !seen[s[k]] {
				seen[s[k]] = true
				out = append(out, s[k])
			}
		}
	}

	return out
}
