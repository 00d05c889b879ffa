package align

// Align — Needleman-Wunsch pairwise alignment
//
// Description:
//
//	Align computes one optimal global (or semi-global) alignment of two
//	residue strings under a linear scoring scheme and reconstructs the
//	aligned pair deterministically.
//
// Algorithm Outline (Full-Matrix):
//  1. Let m = len(a), n = len(b). Allocate (m+1)x(n+1) score matrix M
//     and a parallel trace matrix of predecessor moves.
//  2. Initialize boundaries by Mode:
//     PenalizedEnds: M[i][0] = i·Gap, M[0][j] = j·Gap
//     FreeEnds:      M[i][0] = 0,     M[0][j] = 0
//     Column 0 traces Up, row 0 traces Left, so traceback of leading
//     gaps falls out of the same walk.
//  3. For i = 1..m, j = 1..n:
//     diag = M[i-1][j-1] + (Match if a[i-1]==b[j-1] else Mismatch)
//     up   = M[i-1][j]   + Gap
//     left = M[i][j-1]   + Gap
//     M[i][j] = max(diag, up, left), ties broken diag > up > left.
//  4. End cell: (m,n) for PenalizedEnds. For FreeEnds, the first maximum
//     encountered scanning the last row (j=0..n) then the last column
//     (i=0..m); columns beyond it become free trailing gaps.
//  5. Backtrack from the end cell to (0,0) following recorded moves,
//     emitting residue/gap columns back-to-front, then reverse.
//
// Memory Modes:
//   - FullMatrix — store M and the trace matrix, reconstruct the pair.
//     Memory: O(m·n).
//   - TwoRows    — two rolling score rows, score only. Memory: O(n).
//
// Complexity:
//
//	Time   = O(m·n)
//	Memory = O(m·n) (FullMatrix) or O(n) (TwoRows)

// Predecessor moves recorded in the trace matrix.
const (
	moveNone byte = iota
	moveDiag      // consume a residue from both sequences
	moveUp        // consume from a, gap in b
	moveLeft      // consume from b, gap in a
)

// Align computes one optimal alignment of a and b under opts.
// A nil opts is equivalent to DefaultOptions().
//
// The computation is pure and synchronous: each call owns its matrices
// exclusively and either returns a complete Result or an error before any
// output is constructed.
func Align(a, b string, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptySequence
	}
	if o.Match <= 0 || o.Mismatch > 0 || o.Gap > 0 {
		return nil, ErrBadScoring
	}
	if o.Mode != PenalizedEnds && o.Mode != FreeEnds {
		return nil, ErrUnknownMode
	}
	if o.MemoryMode != FullMatrix && o.MemoryMode != TwoRows {
		return nil, ErrUnknownMemoryMode
	}

	if o.MemoryMode == TwoRows {
		return &Result{Score: scoreOnly(a, b, &o)}, nil
	}

	score, trace := fill(a, b, &o)
	endI, endJ := endCell(score, &o)

	return traceback(a, b, score, trace, endI, endJ), nil
}

// fill builds the full score and trace matrices.
func fill(a, b string, o *Options) ([][]int64, [][]byte) {
	m, n := len(a), len(b)

	score := make([][]int64, m+1)
	trace := make([][]byte, m+1)
	for i := range score {
		score[i] = make([]int64, n+1)
		trace[i] = make([]byte, n+1)
	}

	// Boundary row and column. FreeEnds keeps them at zero so leading
	// gaps cost nothing; the trace moves still walk back to (0,0).
	for i := 1; i <= m; i++ {
		if o.Mode == PenalizedEnds {
			score[i][0] = int64(i) * o.Gap
		}
		trace[i][0] = moveUp
	}
	for j := 1; j <= n; j++ {
		if o.Mode == PenalizedEnds {
			score[0][j] = int64(j) * o.Gap
		}
		trace[0][j] = moveLeft
	}
	trace[0][0] = moveNone

	for i := 1; i <= m; i++ {
		ca := a[i-1]
		for j := 1; j <= n; j++ {
			sub := o.Mismatch
			if ca == b[j-1] {
				sub = o.Match
			}
			diag := score[i-1][j-1] + sub
			up := score[i-1][j] + o.Gap
			left := score[i][j-1] + o.Gap

			// Tie-break order diag > up > left keeps traceback deterministic.
			best, mv := diag, moveDiag
			if up > best {
				best, mv = up, moveUp
			}
			if left > best {
				best, mv = left, moveLeft
			}
			score[i][j], trace[i][j] = best, mv
		}
	}

	return score, trace
}

// endCell returns the traceback starting cell. PenalizedEnds always ends
// at the corner. FreeEnds scans the last row (j=0..n) and then the last
// column (i=0..m) and keeps the first maximum encountered, a fixed
// convention so that tied end cells resolve reproducibly.
func endCell(score [][]int64, o *Options) (int, int) {
	m, n := len(score)-1, len(score[0])-1
	if o.Mode == PenalizedEnds {
		return m, n
	}

	best, endI, endJ := score[m][0], m, 0
	for j := 1; j <= n; j++ {
		if score[m][j] > best {
			best, endI, endJ = score[m][j], m, j
		}
	}
	for i := 0; i <= m; i++ {
		if score[i][n] > best {
			best, endI, endJ = score[i][n], i, n
		}
	}

	return endI, endJ
}

// traceback reconstructs the aligned pair from the end cell back to (0,0).
// Columns are emitted back-to-front and reversed at the end.
func traceback(a, b string, score [][]int64, trace [][]byte, endI, endJ int) *Result {
	m, n := len(a), len(b)

	alignedA := make([]byte, 0, m+n)
	alignedB := make([]byte, 0, m+n)
	markup := make([]byte, 0, m+n)

	// Unconsumed suffix beyond the end cell: free trailing gaps
	// (FreeEnds only; under PenalizedEnds the end cell is the corner).
	for j := n; j > endJ; j-- {
		alignedA = append(alignedA, GapMarker)
		alignedB = append(alignedB, b[j-1])
		markup = append(markup, MarkupGap)
	}
	for i := m; i > endI; i-- {
		alignedA = append(alignedA, a[i-1])
		alignedB = append(alignedB, GapMarker)
		markup = append(markup, MarkupGap)
	}

	i, j := endI, endJ
	for i > 0 || j > 0 {
		switch trace[i][j] {
		case moveDiag:
			ca, cb := a[i-1], b[j-1]
			alignedA = append(alignedA, ca)
			alignedB = append(alignedB, cb)
			if ca == cb {
				markup = append(markup, MarkupMatch)
			} else {
				markup = append(markup, MarkupMismatch)
			}
			i--
			j--
		case moveUp:
			alignedA = append(alignedA, a[i-1])
			alignedB = append(alignedB, GapMarker)
			markup = append(markup, MarkupGap)
			i--
		default: // moveLeft
			alignedA = append(alignedA, GapMarker)
			alignedB = append(alignedB, b[j-1])
			markup = append(markup, MarkupGap)
			j--
		}
	}

	reverse(alignedA)
	reverse(alignedB)
	reverse(markup)

	return &Result{
		Score:    score[endI][endJ],
		AlignedA: string(alignedA),
		AlignedB: string(alignedB),
		Markup:   string(markup),
	}
}

// scoreOnly runs the recurrence with two rolling rows, returning the
// optimal score without traceback support.
func scoreOnly(a, b string, o *Options) int64 {
	m, n := len(a), len(b)

	prev := make([]int64, n+1)
	curr := make([]int64, n+1)
	if o.Mode == PenalizedEnds {
		for j := 1; j <= n; j++ {
			prev[j] = int64(j) * o.Gap
		}
	}

	// Best value seen in the last column, for FreeEnds end-cell selection.
	colBest := prev[n]

	for i := 1; i <= m; i++ {
		if o.Mode == PenalizedEnds {
			curr[0] = int64(i) * o.Gap
		} else {
			curr[0] = 0
		}
		ca := a[i-1]
		for j := 1; j <= n; j++ {
			sub := o.Mismatch
			if ca == b[j-1] {
				sub = o.Match
			}
			best := prev[j-1] + sub
			if up := prev[j] + o.Gap; up > best {
				best = up
			}
			if left := curr[j-1] + o.Gap; left > best {
				best = left
			}
			curr[j] = best
		}
		if curr[n] > colBest {
			colBest = curr[n]
		}
		prev, curr = curr, prev
	}

	// prev now holds row m.
	if o.Mode == PenalizedEnds {
		return prev[n]
	}
	best := colBest
	for j := 0; j <= n; j++ {
		if prev[j] > best {
			best = prev[j]
		}
	}

	return best
}

// reverse flips a byte slice in-place.
func reverse(s []byte) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
