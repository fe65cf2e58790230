package textsim

import (
	"errors"
	"fmt"

	"plagcheck/internal/failure"
)

// ErrEmptyInput reports a document that normalizes to nothing.
var ErrEmptyInput = errors.New("empty input")

// EmptyInputError names which document of a pair was empty after normalization.
// It matches ErrEmptyInput and failure.ErrValidation under errors.Is.
type EmptyInputError struct {
	Side string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s document is empty after normalization; refusing to compare", e.Side)
}

// Is implements errors.Is matching.
func (e *EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput || target == failure.ErrValidation
}
