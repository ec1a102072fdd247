package sequence

import "fmt"

// SequenceError is implemented by every validation error in this package.
type SequenceError interface {
	error
	IsSequenceError()
}

// EmptySequenceError is returned when a sequence has no bases.
type EmptySequenceError struct{}

func (e *EmptySequenceError) Error() string {
	return "sequence must have at least one base"
}

func (e *EmptySequenceError) IsSequenceError() {}

// InvalidBaseError is returned when a symbol outside the alphabet is found.
type InvalidBaseError struct {
	Position int
	Found    rune
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("invalid base '%c' at position %d", e.Found, e.Position)
}

func (e *InvalidBaseError) IsSequenceError() {}

// Validate checks that bases is non-empty and only holds A, T, C or G.
// The input is expected to be upper case already.
func Validate(bases string) error {
	if len(bases) == 0 {
		return &EmptySequenceError{}
	}
	for i, b := range bases {
		if !IsValidBase(b) {
			return &InvalidBaseError{Position: i, Found: b}
		}
	}
	return nil
}

// IsValidBase reports whether c is one of A, T, C, G.
func IsValidBase(c rune) bool {
	switch c {
	case 'A', 'T', 'C', 'G':
		return true
	}
	return false
}
