// Package alignment implements pairwise global alignment of nucleotide
// sequences (Needleman-Wunsch with a linear gap cost).
package alignment

import "fmt"

// AlignDirection records which neighbour produced a cell of the score table.
type AlignDirection uint8

const (
	// None marks the origin cell (0, 0).
	None AlignDirection = iota
	// Diagonal represents a match or mismatch
	Diagonal
	// Up represents a gap in the target
	Up
	// Left represents a gap in the query
	Left
)

func (d AlignDirection) String() string {
	switch d {
	case Diagonal:
		return "diagonal"
	case Up:
		return "up"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// ScoringScheme holds the match, mismatch and linear gap scores.
//
// All three are added to the running score, so penalties are given as
// negative numbers (or zero).
type ScoringScheme struct {
	MatchScore    int
	MismatchScore int
	GapPenalty    int
}

// NewScoringScheme creates a scoring scheme with validation.
func NewScoringScheme(match, mismatch, gap int) (ScoringScheme, error) {
	s := ScoringScheme{MatchScore: match, MismatchScore: mismatch, GapPenalty: gap}
	if err := s.Validate(); err != nil {
		return ScoringScheme{}, err
	}
	return s, nil
}

// Validate rejects the all-zero scheme, under which every alignment scores
// 0. Any other combination of integers is accepted as given.
func (s ScoringScheme) Validate() error {
	if s.MatchScore == 0 && s.MismatchScore == 0 && s.GapPenalty == 0 {
		return fmt.Errorf("scoring scheme must have at least one non-zero score")
	}
	return nil
}

// DefaultScheme scores a match 1 and mismatches and gaps 0, so the score is
// the number of matched positions in the best alignment.
func DefaultScheme() ScoringScheme {
	return ScoringScheme{
		MatchScore:    1,
		MismatchScore: 0,
		GapPenalty:    0,
	}
}

// SimpleScheme is the classic +1/-1/-2 model.
func SimpleScheme() ScoringScheme {
	return ScoringScheme{
		MatchScore:    1,
		MismatchScore: -1,
		GapPenalty:    -2,
	}
}

// DNAScheme rewards matches more strongly than it punishes mismatches.
func DNAScheme() ScoringScheme {
	return ScoringScheme{
		MatchScore:    2,
		MismatchScore: -1,
		GapPenalty:    -2,
	}
}

// Score returns the substitution score for two bases.
func (s ScoringScheme) Score(a, b byte) int {
	if a == b {
		return s.MatchScore
	}
	return s.MismatchScore
}

func (s ScoringScheme) String() string {
	return fmt.Sprintf("ScoringScheme { match: %d, mismatch: %d, gap: %d }",
		s.MatchScore, s.MismatchScore, s.GapPenalty)
}
