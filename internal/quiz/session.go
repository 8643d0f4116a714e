package quiz

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// Phase is the lifecycle phase of a quiz session.
type Phase int

const (
	PhaseLoading    Phase = iota // waiting for the question catalog
	PhaseInProgress              // answering questions
	PhaseSubmitting              // ledger complete, scoring call outstanding
	PhaseCompleted               // result available
	PhaseFailed                  // submission failed, ledger retained
)

// String returns a short name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseInProgress:
		return "in-progress"
	case PhaseSubmitting:
		return "submitting"
	case PhaseCompleted:
		return "completed"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// Answer is one committed choice in the ledger.
type Answer struct {
	QuestionID int    `json:"question_id"`
	Choice     string `json:"answer"`
}

// Session drives the question-by-question quiz flow. It owns the current
// position, the answer ledger, and the pending (uncommitted) choice for
// the active question.
//
// The ledger is append-only except through Retreat, which removes exactly
// the last entry and restores its choice as the pending selection, so
// Advance and Retreat are exact inverses. While no retreat is pending,
// len(ledger) == position and ledger[i].QuestionID == catalog[i].ID.
//
// Sessions are not resumable: abandoning one discards all in-memory state
// and nothing partial ever reaches the scorer.
type Session struct {
	ID string

	loader CatalogLoader
	scorer Scorer

	mu       sync.Mutex
	catalog  Catalog
	position int
	ledger   []Answer
	pending  string // empty means no selection
	phase    Phase
	result   *Result
	err      error
}

// New creates a session in PhaseLoading. Call Load before answering.
func New(loader CatalogLoader, scorer Scorer) *Session {
	return &Session{
		ID:     uuid.New().String(),
		loader: loader,
		scorer: scorer,
		phase:  PhaseLoading,
	}
}

// Load fetches the question catalog and moves the session to InProgress.
// An empty catalog is a *LoadError: zero questions cannot be answered.
// On failure the session stays in PhaseLoading and Load may be retried.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.phase != PhaseLoading {
		s.mu.Unlock()
		return ErrNotInProgress
	}
	s.mu.Unlock()

	catalog, err := s.loader.LoadCatalog(ctx)
	if err != nil {
		var lerr *LoadError
		if !errors.As(err, &lerr) {
			err = &LoadError{Err: err}
		}
		return err
	}
	if len(catalog) == 0 {
		return &LoadError{Err: errors.New("catalog is empty")}
	}

	s.mu.Lock()
	s.catalog = catalog
	s.phase = PhaseInProgress
	s.mu.Unlock()
	return nil
}

// SelectChoice records choice as the pending selection for the current
// question. Re-selecting overwrites; the ledger is untouched.
func (s *Session) SelectChoice(choice string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseInProgress {
		return ErrNotInProgress
	}
	if !s.catalog[s.position].HasOption(choice) {
		return ErrInvalidChoice
	}
	s.pending = choice
	return nil
}

// Advance commits the pending choice to the ledger and moves to the next
// question. On the last question the ledger is complete and Advance
// submits it to the scorer in the same operation, transitioning through
// Submitting to Completed or Failed. Any operation issued while the
// scoring call is outstanding is rejected, never interleaved.
func (s *Session) Advance(ctx context.Context) error {
	s.mu.Lock()
	if s.phase != PhaseInProgress {
		s.mu.Unlock()
		return ErrNotInProgress
	}
	if s.pending == "" {
		s.mu.Unlock()
		return ErrNoSelection
	}

	s.ledger = append(s.ledger, Answer{
		QuestionID: s.catalog[s.position].ID,
		Choice:     s.pending,
	})
	s.pending = ""
	s.position++

	if s.position < len(s.catalog) {
		s.mu.Unlock()
		return nil
	}

	s.phase = PhaseSubmitting
	s.mu.Unlock()
	return s.submit(ctx)
}

// Retreat undoes the last Advance: it removes the last ledger entry,
// steps back one question, and restores the removed choice as the
// pending selection so the prior answer shows pre-selected. It is a
// no-op at the first question or outside InProgress. Returns whether
// the position moved.
func (s *Session) Retreat() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseInProgress || s.position == 0 {
		return false
	}
	last := s.ledger[len(s.ledger)-1]
	s.ledger = s.ledger[:len(s.ledger)-1]
	s.position--
	s.pending = last.Choice
	return true
}

// Resubmit retries a failed submission with the intact ledger, so the
// user never re-answers the quiz. Valid only in PhaseFailed.
func (s *Session) Resubmit(ctx context.Context) error {
	s.mu.Lock()
	if s.phase != PhaseFailed {
		s.mu.Unlock()
		return ErrNotFailed
	}
	s.phase = PhaseSubmitting
	s.err = nil
	s.mu.Unlock()
	return s.submit(ctx)
}

// submit sends the completed ledger to the scorer. Entered only from
// PhaseSubmitting, which blocks every other operation until it settles.
func (s *Session) submit(ctx context.Context) error {
	answers := s.Ledger()

	result, err := s.scorer.Score(ctx, answers)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		var serr *SubmissionError
		if !errors.As(err, &serr) {
			err = &SubmissionError{Err: err}
		}
		s.phase = PhaseFailed
		s.err = err
		return err
	}
	s.result = result
	s.phase = PhaseCompleted
	return nil
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Len returns the number of questions in the catalog.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.catalog)
}

// Position returns the index of the current question.
func (s *Session) Position() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position
}

// Current returns the active question. ok is false outside InProgress.
func (s *Session) Current() (q Question, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseInProgress || s.position >= len(s.catalog) {
		return Question{}, false
	}
	return s.catalog[s.position], true
}

// Pending returns the uncommitted choice for the current question, or ""
// if none has been selected.
func (s *Session) Pending() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Ledger returns a copy of the committed answers in presentation order.
func (s *Session) Ledger() []Answer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Answer, len(s.ledger))
	copy(out, s.ledger)
	return out
}

// Result returns the scoring result, or nil before completion.
func (s *Session) Result() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Err returns the submission error, or nil if the session has not failed.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Progress returns the fraction of questions answered or being answered,
// in [0, 1].
func (s *Session) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.catalog) == 0 {
		return 0
	}
	p := s.position
	if p > len(s.catalog) {
		p = len(s.catalog)
	}
	return float64(p) / float64(len(s.catalog))
}
