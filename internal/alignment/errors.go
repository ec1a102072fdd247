package alignment

import (
	"fmt"

	"github.com/aria-lang/genematch/internal/sequence"
)

// InvalidInputError is returned when an operand is missing, empty or holds a
// symbol outside the alphabet. Err is the underlying sequence error.
type InvalidInputError struct {
	Operand string
	Err     error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s sequence: %v", e.Operand, e.Err)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

// CheckInput validates s as an alignment operand named operand.
//
// Sequences built through sequence.New are always valid; this also catches
// nil pointers and hand-built values.
func CheckInput(operand string, s *sequence.Sequence) error {
	if s == nil {
		return &InvalidInputError{Operand: operand, Err: &sequence.EmptySequenceError{}}
	}
	if err := sequence.Validate(s.Bases); err != nil {
		return &InvalidInputError{Operand: operand, Err: err}
	}
	return nil
}
