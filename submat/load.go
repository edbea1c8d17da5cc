package submat

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"strconv"
	"strings"
)

//go:embed data/PAM250.txt data/BLOSUM62.txt
var tableFS embed.FS

// tableFiles maps the public identifiers to their embedded resources.
var tableFiles = map[string]string{
	"pam":    "data/PAM250.txt",
	"blosum": "data/BLOSUM62.txt",
}

// Load resolves a table identifier ("pam" → PAM250, "blosum" → BLOSUM62,
// case-insensitive) to its embedded table. Any other identifier is a
// configuration error (ErrUnknownTable) and must be surfaced before any
// alignment work begins.
func Load(name string) (*Table, error) {
	file, ok := tableFiles[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("submat: Load(%q): %w", name, ErrUnknownTable)
	}

	f, err := tableFS.Open(file)
	if err != nil {
		return nil, fmt.Errorf("submat: Load(%q): %w", name, err)
	}
	defer f.Close()

	return Parse(strings.ToLower(name), f)
}

// Parse reads a whitespace-delimited table: a header line of symbols, then
// one line per symbol holding its label and a score for every header symbol.
// Stage 1 (Validate): single-byte labels, no duplicates, rectangular rows.
// Stage 2 (Execute): fill the row-major score slice.
// Stage 3 (Finalize): enforce symmetry and guarantee gap coverage.
// Complexity: O(k²) for k symbols.
func Parse(name string, r io.Reader) (*Table, error) {
	sc := bufio.NewScanner(r)

	var header []byte
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue // tolerate leading blank lines
		}
		header = make([]byte, len(fields))
		for i, f := range fields {
			if len(f) != 1 {
				return nil, fmt.Errorf("submat: Parse(%s): header symbol %q: %w", name, f, ErrBadTable)
			}
			header[i] = f[0]
		}
		break
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("submat: Parse(%s): empty input: %w", name, ErrBadTable)
	}

	k := len(header)
	index := make(map[byte]int, k+1)
	for i, sym := range header {
		if _, dup := index[sym]; dup {
			return nil, fmt.Errorf("submat: Parse(%s): duplicate symbol %q: %w", name, sym, ErrBadTable)
		}
		index[sym] = i
	}

	scores := make([]float64, k*k)
	rows := 0
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != k+1 {
			return nil, fmt.Errorf("submat: Parse(%s): row %q has %d scores, want %d: %w",
				name, fields[0], len(fields)-1, k, ErrBadTable)
		}
		if len(fields[0]) != 1 {
			return nil, fmt.Errorf("submat: Parse(%s): row label %q: %w", name, fields[0], ErrBadTable)
		}
		i, ok := index[fields[0][0]]
		if !ok {
			return nil, fmt.Errorf("submat: Parse(%s): row label %q not in header: %w", name, fields[0], ErrBadTable)
		}
		for j, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("submat: Parse(%s): score %q: %w", name, f, ErrBadTable)
			}
			scores[i*k+j] = v
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("submat: Parse(%s): %w", name, err)
	}
	if rows != k {
		return nil, fmt.Errorf("submat: Parse(%s): %d rows for %d symbols: %w", name, rows, k, ErrBadTable)
	}

	// A substitution table must be symmetric; asymmetry is a data defect.
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if scores[i*k+j] != scores[j*k+i] {
				return nil, fmt.Errorf("submat: Parse(%s): asymmetric at %q/%q: %w",
					name, header[i], header[j], ErrBadTable)
			}
		}
	}

	t := &Table{name: name, index: index, scores: scores}
	if _, ok := index[Gap]; !ok {
		t = t.withGapRow()
	}

	return t, nil
}

// withGapRow extends a table with a zero-valued gap row and column, so every
// loaded table covers the gap symbol as the alignment border requires.
func (t *Table) withGapRow() *Table {
	k := len(t.index)
	index := make(map[byte]int, k+1)
	for sym, i := range t.index {
		index[sym] = i
	}
	index[Gap] = k

	scores := make([]float64, (k+1)*(k+1))
	for i := 0; i < k; i++ {
		copy(scores[i*(k+1):i*(k+1)+k], t.scores[i*k:(i+1)*k])
	}

	return &Table{name: t.name, index: index, scores: scores}
}
