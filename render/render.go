package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/seqalign/align"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

// MatrixString renders the full score matrix as a bordered table.
// The row and column labels are '-' followed by the respective sequence,
// mirroring the border semantics of the matrix itself.
func MatrixString(m *align.Matrix) string {
	headers := make([]string, m.Cols()+1)
	headers[0] = ""
	for j := 0; j < m.Cols(); j++ {
		headers[j+1] = cellLabel(m.Seq2(), j)
	}

	rows := make([][]string, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		row := make([]string, m.Cols()+1)
		row[0] = cellLabel(m.Seq1(), i)
		for j := 0; j < m.Cols(); j++ {
			row[j+1] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		rows[i] = row
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)

	return t.String()
}

// cellLabel labels border index 0 with the gap symbol and index k>0 with
// the (k-1)-th sequence symbol.
func cellLabel(seq string, k int) string {
	if k == 0 {
		return "-"
	}

	return string(seq[k-1])
}

// ResultString renders every recovered alignment, one block per start
// cell in row-major order: a header naming the cell, the first gapped
// sequence, the midline and the second gapped sequence.
func ResultString(res align.Result) string {
	starts := make([]align.Coord, 0, len(res))
	for c := range res {
		starts = append(starts, c)
	}
	sort.Slice(starts, func(a, b int) bool {
		if starts[a].I != starts[b].I {
			return starts[a].I < starts[b].I
		}

		return starts[a].J < starts[b].J
	})

	var sb strings.Builder
	for n, start := range starts {
		if n > 0 {
			sb.WriteByte('\n')
		}
		pair := res[start]
		sb.WriteString(headerStyle.Render(fmt.Sprintf("alignment starting at (%d, %d)", start.I, start.J)))
		sb.WriteByte('\n')
		sb.WriteString("  " + pair.Seq1 + "\n")
		sb.WriteString("  " + midline(pair) + "\n")
		sb.WriteString("  " + pair.Seq2 + "\n")
	}

	return sb.String()
}

// midline marks each column of the alignment: '|' for a match, '.' for a
// mismatch, a space wherever either side is a gap.
func midline(pair align.AlignedPair) string {
	out := make([]byte, len(pair.Seq1))
	for k := range out {
		a, b := pair.Seq1[k], pair.Seq2[k]
		switch {
		case a == '-' || b == '-':
			out[k] = ' '
		case a == b:
			out[k] = '|'
		default:
			out[k] = '.'
		}
	}

	return string(out)
}
