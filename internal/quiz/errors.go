package quiz

import "errors"

var (
	// ErrInvalidAnswer means the submitted answer does not belong to the
	// current question, or the session has no current question.
	ErrInvalidAnswer = errors.New("invalid answer")

	// ErrNotYetAnswered means a rewind target that was never answered.
	ErrNotYetAnswered = errors.New("question not yet answered")
)
