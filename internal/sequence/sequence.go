// Package sequence provides a validated nucleotide sequence type.
//
// A Sequence only ever holds the upper-case symbols A, T, C and G and is
// never empty. Input is upper-cased before validation, so "atcg" is
// accepted and stored as "ATCG".
package sequence

import "strings"

// Alphabet lists the accepted symbols in a stable order.
const Alphabet = "ATCG"

// Sequence represents a validated nucleotide sequence.
//
// Bases is exported for reading; callers must not modify it after
// construction.
type Sequence struct {
	Bases string
}

// New creates a sequence from bases, normalizing case first.
func New(bases string) (*Sequence, error) {
	normalized := strings.ToUpper(bases)

	if err := Validate(normalized); err != nil {
		return nil, err
	}

	return &Sequence{Bases: normalized}, nil
}

// Len returns the number of bases.
func (s *Sequence) Len() int {
	return len(s.Bases)
}

// BaseCounts holds per-symbol counts.
type BaseCounts struct {
	A int
	C int
	G int
	T int
}

// Total returns the sum of all counts.
func (bc BaseCounts) Total() int {
	return bc.A + bc.C + bc.G + bc.T
}

// BaseCounts returns the count of each base.
func (s *Sequence) BaseCounts() BaseCounts {
	counts := BaseCounts{}

	for i := 0; i < len(s.Bases); i++ {
		switch s.Bases[i] {
		case 'A':
			counts.A++
		case 'C':
			counts.C++
		case 'G':
			counts.G++
		case 'T':
			counts.T++
		}
	}

	return counts
}

// GCContent returns the proportion of G and C bases.
func (s *Sequence) GCContent() float64 {
	if len(s.Bases) == 0 {
		return 0.0
	}
	c := s.BaseCounts()
	return float64(c.G+c.C) / float64(len(s.Bases))
}
