package align

// Traceback reconstructs the alignment(s) stored implicitly in a filled
// matrix by walking move tags backward.
//
// Global mode: one walk from the bottom-right corner (n,m), following tags
// until cell (0,0); border cells carry left/up tags, so the walk drains any
// leading gap prefix. The single entry is keyed by (n,m).
//
// Local mode: one independent walk per cell attaining the matrix maximum,
// each stopping at the first zero-valued cell (the zero cell itself emits
// nothing). When the maximum is 0 there is no positive-scoring local
// alignment: every zero cell becomes a start with an empty pair.
//
// Pairs are emitted end-to-start and reversed before being returned.
// Complexity: O(k·(N+M)) for k start cells.
func (m *Matrix) Traceback() (Result, error) {
	if !m.filled {
		return nil, ErrNotFilled
	}
	if m.mode == Global {
		start := Coord{I: m.rows - 1, J: m.cols - 1}

		return Result{start: m.walk(start)}, nil
	}

	res := make(Result)
	for _, start := range m.MaxCoords() {
		res[start] = m.walk(start)
	}

	return res, nil
}

// walk follows move tags from start to the mode's terminal cell, emitting
// one aligned symbol pair per step.
func (m *Matrix) walk(start Coord) AlignedPair {
	var a, b []byte
	i, j := start.I, start.J
	for i >= 1 || j >= 1 {
		if m.mode == Local && m.at(i, j) == 0 {
			break
		}
		switch m.moveAt(i, j) {
		case moveDiag:
			a = append(a, m.seq1[i-1])
			b = append(b, m.seq2[j-1])
			i, j = i-1, j-1
		case moveLeft:
			a = append(a, '-')
			b = append(b, m.seq2[j-1])
			j--
		case moveUp:
			a = append(a, m.seq1[i-1])
			b = append(b, '-')
			i--
		default:
			// moveNone only tags terminal cells; both stop conditions
			// above fire first, this is unreachable on a filled matrix.
			return AlignedPair{Seq1: string(reverse(a)), Seq2: string(reverse(b))}
		}
	}

	return AlignedPair{Seq1: string(reverse(a)), Seq2: string(reverse(b))}
}

// reverse flips a byte slice in place and returns it.
func reverse(s []byte) []byte {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}

	return s
}
