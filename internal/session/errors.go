package session

import (
	"errors"
	"fmt"
)

// ErrNoProblem is returned when an answer is submitted with no active problem.
var ErrNoProblem = errors.New("no active problem")

// ErrNotIdentified is returned when an operation runs before Identify.
var ErrNotIdentified = errors.New("no learner identified")

// InvalidAnswerError reports a submitted answer that is not numeric.
// No state is mutated and nothing is persisted when it is returned.
type InvalidAnswerError struct {
	Input string
}

func (e *InvalidAnswerError) Error() string {
	return fmt.Sprintf("invalid answer format: %q is not a number", e.Input)
}
