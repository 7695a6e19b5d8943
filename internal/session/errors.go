package session

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQueue is returned by DrawNext when no questions are left.
	ErrEmptyQueue = errors.New("no questions left")

	// ErrNoCurrent is returned when recording an answer with no drawn question.
	ErrNoCurrent = errors.New("no question drawn")

	// ErrNoQuestions is returned by Progress for a session without questions.
	ErrNoQuestions = errors.New("session has no questions")

	// ErrInterrupted is returned by a Presenter when the user interrupts
	// input. It is not a failure.
	ErrInterrupted = errors.New("interrupted")
)

// InvalidInputError reports an answer selection that is neither an
// option key nor empty. It is always recovered by re-prompting.
type InvalidInputError struct {
	Input string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid choice %q, try again", e.Input)
}
