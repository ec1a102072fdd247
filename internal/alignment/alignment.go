package alignment

import (
	"fmt"
	"strings"
)

// Gap is the symbol placed in an aligned sequence opposite an unpaired base.
const Gap = '-'

// Alignment is the result of aligning a query against a target.
//
// AlignedQuery and AlignedTarget always have the same length. Removing the
// gaps from either one gives back the original sequence.
type Alignment struct {
	AlignedQuery  string
	AlignedTarget string
	Score         int
	Identity      float64
}

// NewAlignment creates an alignment result.
func NewAlignment(alignedQuery, alignedTarget string, score int) (*Alignment, error) {
	if len(alignedQuery) != len(alignedTarget) {
		return nil, fmt.Errorf("aligned sequences must have equal length")
	}

	a := &Alignment{
		AlignedQuery:  alignedQuery,
		AlignedTarget: alignedTarget,
		Score:         score,
	}
	if a.Length() > 0 {
		a.Identity = float64(a.MatchCount()) / float64(a.Length())
	}
	return a, nil
}

// Length returns the number of aligned columns.
func (a *Alignment) Length() int {
	return len(a.AlignedQuery)
}

// MatchCount returns the number of columns holding the same base twice.
func (a *Alignment) MatchCount() int {
	count := 0
	for i := 0; i < len(a.AlignedQuery); i++ {
		if a.AlignedQuery[i] == a.AlignedTarget[i] && a.AlignedQuery[i] != Gap {
			count++
		}
	}
	return count
}

// MismatchCount returns the number of columns pairing two different bases.
func (a *Alignment) MismatchCount() int {
	count := 0
	for i := 0; i < len(a.AlignedQuery); i++ {
		if a.AlignedQuery[i] != a.AlignedTarget[i] &&
			a.AlignedQuery[i] != Gap && a.AlignedTarget[i] != Gap {
			count++
		}
	}
	return count
}

// GapsQuery returns the number of gaps in the aligned query.
func (a *Alignment) GapsQuery() int {
	return strings.Count(a.AlignedQuery, string(Gap))
}

// GapsTarget returns the number of gaps in the aligned target.
func (a *Alignment) GapsTarget() int {
	return strings.Count(a.AlignedTarget, string(Gap))
}

// TotalGaps returns the total number of gaps.
func (a *Alignment) TotalGaps() int {
	return a.GapsQuery() + a.GapsTarget()
}

// Rescore recomputes the score of the aligned pair under scheme.
func (a *Alignment) Rescore(scheme ScoringScheme) int {
	score := 0
	for i := 0; i < len(a.AlignedQuery); i++ {
		q, t := a.AlignedQuery[i], a.AlignedTarget[i]
		if q == Gap || t == Gap {
			score += scheme.GapPenalty
			continue
		}
		score += scheme.Score(q, t)
	}
	return score
}

// ToCIGAR generates an extended CIGAR string with the target as reference:
// M match, X mismatch, I base only in the query, D base only in the target.
func (a *Alignment) ToCIGAR() string {
	if len(a.AlignedQuery) == 0 {
		return ""
	}

	var cigar strings.Builder
	currentOp := byte(0)
	count := 0

	for i := 0; i < len(a.AlignedQuery); i++ {
		var op byte
		switch {
		case a.AlignedQuery[i] == Gap:
			op = 'D'
		case a.AlignedTarget[i] == Gap:
			op = 'I'
		case a.AlignedQuery[i] == a.AlignedTarget[i]:
			op = 'M'
		default:
			op = 'X'
		}

		if op == currentOp {
			count++
			continue
		}
		if count > 0 {
			fmt.Fprintf(&cigar, "%d%c", count, currentOp)
		}
		currentOp = op
		count = 1
	}

	if count > 0 {
		fmt.Fprintf(&cigar, "%d%c", count, currentOp)
	}

	return cigar.String()
}

// MatchLine returns the middle row of a pairwise display: '|' for a match,
// '.' for a mismatch and ' ' for a gap.
func (a *Alignment) MatchLine() string {
	var line strings.Builder
	line.Grow(len(a.AlignedQuery))
	for i := 0; i < len(a.AlignedQuery); i++ {
		switch {
		case a.AlignedQuery[i] == Gap || a.AlignedTarget[i] == Gap:
			line.WriteByte(' ')
		case a.AlignedQuery[i] == a.AlignedTarget[i]:
			line.WriteByte('|')
		default:
			line.WriteByte('.')
		}
	}
	return line.String()
}

// Format returns a multi-line human readable rendering of the alignment.
func (a *Alignment) Format() string {
	return fmt.Sprintf("Query:  %s\n        %s\nTarget: %s\nScore: %d\nIdentity: %.1f%%\nCIGAR: %s",
		a.AlignedQuery, a.MatchLine(), a.AlignedTarget,
		a.Score, a.Identity*100, a.ToCIGAR())
}

func (a *Alignment) String() string {
	return fmt.Sprintf("Alignment { score: %d, identity: %.1f%%, length: %d }",
		a.Score, a.Identity*100, a.Length())
}
