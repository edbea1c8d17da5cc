package submat

import (
	"errors"
	"fmt"
)

// Gap is the symbol every table covers in addition to its residue alphabet.
const Gap byte = '-'

// Sentinel errors for table resolution, parsing and lookups.
var (
	// ErrUnknownTable indicates a table identifier that names no known resource.
	ErrUnknownTable = errors.New("submat: unknown substitution table")
	// ErrUnknownSymbol indicates a score lookup for a symbol pair absent from the table.
	ErrUnknownSymbol = errors.New("submat: symbol pair not covered by table")
	// ErrBadTable indicates a malformed table definition (shape, duplicates, asymmetry).
	ErrBadTable = errors.New("submat: malformed substitution table")
)

// Table is an immutable symmetric symbol×symbol score lookup.
// scores is row-major over the alphabet order recorded in index.
type Table struct {
	name   string
	index  map[byte]int
	scores []float64
}

// Name returns the identifier the table was constructed under.
func (t *Table) Name() string { return t.name }

// Len returns the number of symbols the table covers, gap included.
func (t *Table) Len() int { return len(t.index) }

// Covers reports whether sym has a row in the table.
func (t *Table) Covers(sym byte) bool {
	_, ok := t.index[sym]
	return ok
}

// Score returns the substitution score for the pair (a, b).
// Lookups are symmetric. A pair outside the table's alphabet returns
// ErrUnknownSymbol; callers must propagate it, not default the score.
func (t *Table) Score(a, b byte) (float64, error) {
	i, ok := t.index[a]
	if !ok {
		return 0, fmt.Errorf("submat: %s.Score(%q,%q): %w", t.name, a, b, ErrUnknownSymbol)
	}
	j, ok := t.index[b]
	if !ok {
		return 0, fmt.Errorf("submat: %s.Score(%q,%q): %w", t.name, a, b, ErrUnknownSymbol)
	}

	return t.scores[i*len(t.index)+j], nil
}

// Zero builds an all-zero table covering exactly the given symbols plus the
// gap symbol. It is the scheme used when no named table is requested: every
// pair the caller's alignment can query scores 0, anything else still errors.
// A Zero table is scoped to one pair of inputs; build a fresh one per run.
func Zero(symbols []byte) *Table {
	index := make(map[byte]int, len(symbols)+1)
	for _, s := range symbols {
		if _, dup := index[s]; !dup {
			index[s] = len(index)
		}
	}
	if _, ok := index[Gap]; !ok {
		index[Gap] = len(index)
	}

	return &Table{
		name:   "zero",
		index:  index,
		scores: make([]float64, len(index)*len(index)),
	}
}
