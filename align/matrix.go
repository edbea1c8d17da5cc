package align

// move tags which predecessor produced a cell's value, captured at fill
// time so traceback never re-compares floating-point sums. Tie-break at
// capture is diagonal over left over up, matching the traceback priority.
type move uint8

const (
	moveNone move = iota // border origin, or a clamped local cell
	moveDiag             // from (i-1,j-1): the two symbols aligned
	moveLeft             // from (i,j-1): gap in seq1 against seq2[j-1]
	moveUp               // from (i-1,j): seq1[i-1] against a gap
)

// Matrix is the (n+1)×(m+1) alignment score table for one pair of
// sequences under one Scheme. Cells live in a flat row-major slice with a
// parallel move-tag slice. Build once, fill once, then read-only.
type Matrix struct {
	seq1, seq2 string
	scheme     *Scheme
	mode       Mode

	rows, cols int
	cells      []float64
	moves      []move
	filled     bool
}

// NewMatrix allocates the matrix and builds its border.
//
// Global mode: cell (0,0) is 0 and the border walks outward accumulating
// GapScore per prepended symbol, so M[0,k] = M[0,k-1] + GapScore(seq2[k-1])
// and symmetrically down column 0. Under a nonzero substitution table this
// is not a pure multiple of the gap weight: each step adds its own
// substitution term. Border cells record left/up move tags for traceback.
//
// Local mode: the whole matrix starts at 0 with no tags, the standard
// Smith–Waterman border.
//
// Sequences must already be case-normalized; NewMatrix does not touch them.
// Empty sequences are legal and produce a border-only matrix.
func NewMatrix(seq1, seq2 string, scheme *Scheme, mode Mode) (*Matrix, error) {
	if mode != Global && mode != Local {
		return nil, ErrBadMode
	}

	rows, cols := len(seq1)+1, len(seq2)+1
	m := &Matrix{
		seq1:   seq1,
		seq2:   seq2,
		scheme: scheme,
		mode:   mode,
		rows:   rows,
		cols:   cols,
		cells:  make([]float64, rows*cols),
		moves:  make([]move, rows*cols),
	}
	if mode == Local {
		return m, nil
	}

	for j := 1; j < cols; j++ {
		g, err := scheme.GapScore(seq2[j-1])
		if err != nil {
			return nil, err
		}
		m.cells[j] = m.cells[j-1] + g
		m.moves[j] = moveLeft
	}
	for i := 1; i < rows; i++ {
		g, err := scheme.GapScore(seq1[i-1])
		if err != nil {
			return nil, err
		}
		m.cells[i*cols] = m.cells[(i-1)*cols] + g
		m.moves[i*cols] = moveUp
	}

	return m, nil
}

// Fill computes every interior cell in row-major order, which respects the
// dependency of (i,j) on (i-1,j-1), (i,j-1) and (i-1,j):
//
//	diagonal = M[i-1,j-1] + PairScore(seq1[i-1], seq2[j-1])
//	left     = M[i,j-1]   + GapScore(seq2[j-1])
//	up       = M[i-1,j]   + GapScore(seq1[i-1])
//	M[i,j]   = max(candidates)        // Global
//	M[i,j]   = max(0, candidates...)  // Local
//
// A substitution lookup failure aborts the fill; the matrix must then be
// discarded. Complexity: O(N·M) time.
func (m *Matrix) Fill() error {
	for i := 1; i < m.rows; i++ {
		a := m.seq1[i-1]
		gapA, err := m.scheme.GapScore(a)
		if err != nil {
			return err
		}
		for j := 1; j < m.cols; j++ {
			b := m.seq2[j-1]
			pair, err := m.scheme.PairScore(a, b)
			if err != nil {
				return err
			}
			gapB, err := m.scheme.GapScore(b)
			if err != nil {
				return err
			}

			best, tag := m.at(i-1, j-1)+pair, moveDiag
			if left := m.at(i, j-1) + gapB; left > best {
				best, tag = left, moveLeft
			}
			if up := m.at(i-1, j) + gapA; up > best {
				best, tag = up, moveUp
			}
			if m.mode == Local && best < 0 {
				best, tag = 0, moveNone
			}

			idx := i*m.cols + j
			m.cells[idx] = best
			m.moves[idx] = tag
		}
	}
	m.filled = true

	return nil
}

// at reads cell (i,j) without bounds checking; callers stay in range.
func (m *Matrix) at(i, j int) float64 { return m.cells[i*m.cols+j] }

// moveAt reads the move tag of cell (i,j).
func (m *Matrix) moveAt(i, j int) move { return m.moves[i*m.cols+j] }

// Rows returns len(seq1)+1, the number of matrix rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns len(seq2)+1, the number of matrix columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the score of cell (i,j); 0 ≤ i < Rows(), 0 ≤ j < Cols().
func (m *Matrix) At(i, j int) float64 { return m.at(i, j) }

// Seq1 returns the first (row) sequence as given to NewMatrix.
func (m *Matrix) Seq1() string { return m.seq1 }

// Seq2 returns the second (column) sequence.
func (m *Matrix) Seq2() string { return m.seq2 }

// Mode returns the recurrence the matrix was built for.
func (m *Matrix) Mode() Mode { return m.mode }

// Score returns the alignment score: the bottom-right cell in Global mode,
// the matrix maximum in Local mode.
func (m *Matrix) Score() float64 {
	if m.mode == Global {
		return m.cells[len(m.cells)-1]
	}

	max := m.cells[0]
	for _, v := range m.cells[1:] {
		if v > max {
			max = v
		}
	}

	return max
}

// MaxCoords returns every cell attaining the matrix maximum, in row-major
// order. In Local mode these are exactly the traceback start cells.
func (m *Matrix) MaxCoords() []Coord {
	max := m.Score()
	if m.mode == Global {
		max = m.cells[0]
		for _, v := range m.cells[1:] {
			if v > max {
				max = v
			}
		}
	}

	var coords []Coord
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if m.at(i, j) == max {
				coords = append(coords, Coord{I: i, J: j})
			}
		}
	}

	return coords
}
