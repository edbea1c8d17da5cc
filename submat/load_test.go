package submat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/submat"
)

// TestLoad_Blosum spot-checks well-known BLOSUM62 entries and the
// synthesized gap coverage.
func TestLoad_Blosum(t *testing.T) {
	tbl, err := submat.Load("blosum")
	require.NoError(t, err)
	assert.Equal(t, "blosum", tbl.Name())

	checks := []struct {
		a, b byte
		want float64
	}{
		{'A', 'A', 4},
		{'W', 'W', 11},
		{'W', 'F', 1},
		{'N', 'B', 3},
		{'E', 'Z', 4},
	}
	for _, c := range checks {
		got, err := tbl.Score(c.a, c.b)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "%c/%c", c.a, c.b)

		// symmetry
		rev, err := tbl.Score(c.b, c.a)
		require.NoError(t, err)
		assert.Equal(t, got, rev)
	}

	// The data file has no gap row; the loader synthesizes a zero one.
	got, err := tbl.Score('A', submat.Gap)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

// TestLoad_Pam spot-checks well-known PAM250 entries.
func TestLoad_Pam(t *testing.T) {
	tbl, err := submat.Load("pam")
	require.NoError(t, err)

	checks := []struct {
		a, b byte
		want float64
	}{
		{'W', 'W', 17},
		{'C', 'C', 12},
		{'F', 'Y', 7},
		{'A', 'A', 2},
		{'R', 'K', 3},
	}
	for _, c := range checks {
		got, err := tbl.Score(c.a, c.b)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "%c/%c", c.a, c.b)
	}
}

// TestLoad_CaseInsensitive verifies identifier normalization.
func TestLoad_CaseInsensitive(t *testing.T) {
	for _, name := range []string{"PAM", "Pam", "BLOSUM", "Blosum"} {
		_, err := submat.Load(name)
		assert.NoError(t, err, name)
	}
}

// TestLoad_UnknownTable verifies the configuration error for identifiers
// that name no embedded resource.
func TestLoad_UnknownTable(t *testing.T) {
	for _, name := range []string{"pam120", "blosum80", "dnafull", ""} {
		_, err := submat.Load(name)
		assert.ErrorIs(t, err, submat.ErrUnknownTable, name)
	}
}

// TestParse_CustomTable parses a small table with an explicit gap column.
func TestParse_CustomTable(t *testing.T) {
	tbl, err := submat.Parse("custom", strings.NewReader(`
  A C -
A 1 0 2
C 0 1 3
- 2 3 0
`))
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Len())

	got, err := tbl.Score('C', submat.Gap)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

// TestParse_Malformed covers the ErrBadTable cases: bad labels, ragged
// rows, duplicates, non-numeric scores, asymmetry, missing rows.
func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"multi-byte header symbol", "AB C\nA 1 0\nC 0 1\n"},
		{"ragged row", "  A C\nA 1\nC 0 1\n"},
		{"duplicate symbol", "  A A\nA 1 0\nA 0 1\n"},
		{"non-numeric score", "  A C\nA 1 x\nC 0 1\n"},
		{"asymmetric", "  A C\nA 1 2\nC 3 1\n"},
		{"missing row", "  A C\nA 1 0\n"},
		{"unknown row label", "  A C\nA 1 0\nG 0 1\n"},
		{"empty input", "\n\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := submat.Parse(tc.name, strings.NewReader(tc.input))
			assert.ErrorIs(t, err, submat.ErrBadTable)
		})
	}
}

// TestEmbedded_Symmetric verifies both shipped tables parse as symmetric
// over their full alphabet (Parse enforces it; this guards the data files).
func TestEmbedded_Symmetric(t *testing.T) {
	for _, name := range []string{"pam", "blosum"} {
		_, err := submat.Load(name)
		assert.NoError(t, err, name)
	}
}
