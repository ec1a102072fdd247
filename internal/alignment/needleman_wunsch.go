package alignment

import (
	"sync"

	"github.com/aria-lang/genematch/internal/sequence"
)

// table is a flat (rows x cols) score table plus the direction each cell
// was reached from. Its backing slices are reused between alignments.
type table struct {
	rows, cols int
	scores     []int
	trace      []AlignDirection
}

// reset sizes the table for rows x cols, growing the backing slices only
// when they are too small.
func (t *table) reset(rows, cols int) {
	n := rows * cols
	if cap(t.scores) < n {
		t.scores = make([]int, n)
		t.trace = make([]AlignDirection, n)
	}
	t.scores = t.scores[:n]
	t.trace = t.trace[:n]
	t.rows, t.cols = rows, cols
}

func (t *table) idx(i, j int) int {
	return i*t.cols + j
}

// at returns D[i][j].
func (t *table) at(i, j int) int {
	return t.scores[t.idx(i, j)]
}

// fill computes the full score table for query (rows) against target
// (columns). Ties prefer diagonal, then up, then left.
func (t *table) fill(query, target string, scheme ScoringScheme) {
	n, m := len(query), len(target)
	t.reset(n+1, m+1)
	gap := scheme.GapPenalty

	t.scores[0] = 0
	t.trace[0] = None

	// First column and row: a prefix aligned entirely against gaps
	for i := 1; i <= n; i++ {
		k := t.idx(i, 0)
		t.scores[k] = i * gap
		t.trace[k] = Up
	}
	for j := 1; j <= m; j++ {
		t.scores[j] = j * gap
		t.trace[j] = Left
	}

	for i := 1; i <= n; i++ {
		row := t.idx(i, 0)
		prev := t.idx(i-1, 0)
		qb := query[i-1]

		for j := 1; j <= m; j++ {
			diag := t.scores[prev+j-1] + scheme.Score(qb, target[j-1])
			up := t.scores[prev+j] + gap
			left := t.scores[row+j-1] + gap

			best := diag
			direction := Diagonal

			if up > best {
				best = up
				direction = Up
			}
			if left > best {
				best = left
				direction = Left
			}

			t.scores[row+j] = best
			t.trace[row+j] = direction
		}
	}
}

// traceback walks from the bottom-right corner back to the origin and
// returns the aligned query and target.
func (t *table) traceback(query, target string) (string, string) {
	i, j := len(query), len(target)
	aligned1 := make([]byte, 0, i+j)
	aligned2 := make([]byte, 0, i+j)

	for i > 0 || j > 0 {
		switch t.trace[t.idx(i, j)] {
		case Diagonal:
			aligned1 = append(aligned1, query[i-1])
			aligned2 = append(aligned2, target[j-1])
			i--
			j--
		case Up:
			aligned1 = append(aligned1, query[i-1])
			aligned2 = append(aligned2, Gap)
			i--
		case Left:
			aligned1 = append(aligned1, Gap)
			aligned2 = append(aligned2, target[j-1])
			j--
		default:
			// Only the origin carries None.
			i, j = 0, 0
		}
	}

	reverse(aligned1)
	reverse(aligned2)
	return string(aligned1), string(aligned2)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// Aligner performs global alignments with a fixed scoring scheme, reusing
// one score table across calls. The table grows to fit the largest pair
// seen so far and is overwritten by the next call.
//
// An Aligner is not safe for concurrent use; give each goroutine its own.
type Aligner struct {
	scheme ScoringScheme
	tab    table
}

// NewAligner creates an aligner for scheme.
func NewAligner(scheme ScoringScheme) *Aligner {
	return &Aligner{scheme: scheme}
}

// Scheme returns the scoring scheme the aligner was created with.
func (a *Aligner) Scheme() ScoringScheme {
	return a.scheme
}

// Align globally aligns query against target.
func (a *Aligner) Align(query, target *sequence.Sequence) (*Alignment, error) {
	if err := CheckInput("query", query); err != nil {
		return nil, err
	}
	if err := CheckInput("target", target); err != nil {
		return nil, err
	}
	return align(&a.tab, query.Bases, target.Bases, a.scheme)
}

func align(t *table, query, target string, scheme ScoringScheme) (*Alignment, error) {
	t.fill(query, target, scheme)
	alignedQuery, alignedTarget := t.traceback(query, target)
	return NewAlignment(alignedQuery, alignedTarget, t.at(len(query), len(target)))
}

var tablePool = sync.Pool{New: func() interface{} { return new(table) }}

// Global performs Needleman-Wunsch global alignment of query against target.
//
// The result is deterministic: when several alignments share the optimal
// score, the one preferring diagonal, then up, then left steps during
// traceback is returned. Global is safe for concurrent use.
func Global(query, target *sequence.Sequence, scheme ScoringScheme) (*Alignment, error) {
	if err := CheckInput("query", query); err != nil {
		return nil, err
	}
	if err := CheckInput("target", target); err != nil {
		return nil, err
	}

	t := tablePool.Get().(*table)
	defer tablePool.Put(t)

	return align(t, query.Bases, target.Bases, scheme)
}

// ScoreOnly computes the optimal global alignment score using two rows of
// the table instead of the full matrix.
func ScoreOnly(query, target *sequence.Sequence, scheme ScoringScheme) (int, error) {
	if err := CheckInput("query", query); err != nil {
		return 0, err
	}
	if err := CheckInput("target", target); err != nil {
		return 0, err
	}

	s1, s2 := query.Bases, target.Bases
	m, n := len(s1), len(s2)
	gap := scheme.GapPenalty

	prevRow := make([]int, n+1)
	currRow := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prevRow[j] = j * gap
	}

	for i := 1; i <= m; i++ {
		currRow[0] = i * gap

		for j := 1; j <= n; j++ {
			diag := prevRow[j-1] + scheme.Score(s1[i-1], s2[j-1])
			up := prevRow[j] + gap
			left := currRow[j-1] + gap

			currRow[j] = max(diag, max(up, left))
		}

		prevRow, currRow = currRow, prevRow
	}

	return prevRow[n], nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
