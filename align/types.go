package align

import "errors"

// Sentinel errors for alignment runs.
var (
	// ErrBadMode indicates a Mode value other than Global or Local.
	ErrBadMode = errors.New("align: unknown alignment mode")
	// ErrNotFilled indicates Traceback was called before Fill.
	ErrNotFilled = errors.New("align: matrix must be filled before traceback")
)

// Mode selects which recurrence fills the matrix and how traceback starts.
type Mode int

const (
	// Global aligns both sequences end to end (Needleman–Wunsch).
	Global Mode = iota
	// Local aligns the best-scoring substrings (Smith–Waterman).
	Local
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case Global:
		return "global"
	case Local:
		return "local"
	default:
		return "unknown"
	}
}

// Coord addresses one matrix cell: I indexes seq1 (rows), J indexes seq2
// (columns). Row 0 and column 0 are the gap-prefix border.
type Coord struct {
	I, J int
}

// AlignedPair holds two equal-length gapped strings: Seq1 over the first
// input's symbols, Seq2 over the second's, '-' marking gaps.
type AlignedPair struct {
	Seq1, Seq2 string
}

// Result maps each traceback start cell to its recovered alignment.
// Global mode always has exactly one entry, keyed by the bottom-right
// corner. Local mode has one entry per cell attaining the matrix maximum;
// ties are all reported.
type Result map[Coord]AlignedPair

// Options configures one alignment run.
//
// Fields:
//   - Match    — score added when the two symbols are equal.
//   - Mismatch — score added when they differ.
//   - Gap      — score added per gap symbol (typically negative).
//   - Table    — substitution table identifier ("pam", "blosum"); empty
//     means a zero-valued table over the observed alphabet.
//   - Mode     — Global or Local.
type Options struct {
	Match    float64
	Mismatch float64
	Gap      float64
	Table    string
	Mode     Mode
}

// DefaultOptions returns the conventional unit scheme:
// Match=1, Mismatch=-1, Gap=-1, no substitution table, Global mode.
func DefaultOptions() Options {
	return Options{
		Match:    1,
		Mismatch: -1,
		Gap:      -1,
	}
}
