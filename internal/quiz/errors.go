package quiz

import (
	"errors"
	"fmt"
)

// ErrNoSelection indicates Advance was called without a pending choice.
// The UI disables the next control in that case, but the session still
// guards it.
var ErrNoSelection = errors.New("no option selected for the current question")

// ErrInvalidChoice indicates a choice outside the current question's options.
var ErrInvalidChoice = errors.New("choice is not an option of the current question")

// ErrNotInProgress indicates an operation issued outside the InProgress
// phase, including a second Advance while a submission is outstanding.
var ErrNotInProgress = errors.New("session is not accepting answers")

// ErrNotFailed indicates Resubmit was called on a session that has not
// failed submission.
var ErrNotFailed = errors.New("session has no failed submission to retry")

// LoadError indicates the question catalog could not be loaded. Starting
// a session with a partial or empty catalog is not possible; an empty
// catalog is itself a LoadError.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load quiz questions: %v", e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SubmissionError indicates the scoring service rejected or failed the
// final submission. The ledger stays intact so the submission can be
// retried without re-answering.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submit quiz answers: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }
