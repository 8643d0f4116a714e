package quiz

import (
	"context"
	"errors"
	"testing"
)

func testCatalog() Catalog {
	return Catalog{
		{ID: 1, Prompt: "How do you prefer to spend your free time?", Options: []string{"Coding", "Performing", "Playing sports", "Reading"}},
		{ID: 2, Prompt: "What motivates you the most?", Options: []string{"Solving problems", "Expressing myself", "Competing", "Making an impact"}},
		{ID: 3, Prompt: "How do you work best?", Options: []string{"Independently", "In a team", "Leading others", "Flexibly"}},
	}
}

type stubLoader struct {
	catalog Catalog
	err     error
}

func (l stubLoader) LoadCatalog(ctx context.Context) (Catalog, error) {
	return l.catalog, l.err
}

type stubScorer struct {
	result *Result
	err    error
	calls  int
	last   []Answer
}

func (s *stubScorer) Score(ctx context.Context, answers []Answer) (*Result, error) {
	s.calls++
	s.last = answers
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func startedSession(t *testing.T, catalog Catalog, scorer Scorer) *Session {
	t.Helper()
	s := New(stubLoader{catalog: catalog}, scorer)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	return s
}

func TestNew_AssignsUniqueID(t *testing.T) {
	a := New(stubLoader{catalog: testCatalog()}, &stubScorer{})
	b := New(stubLoader{catalog: testCatalog()}, &stubScorer{})

	if a.ID == "" {
		t.Fatal("expected a session ID")
	}
	if a.ID == b.ID {
		t.Errorf("sessions share ID %q", a.ID)
	}
}

func TestLoad_EmptyCatalog(t *testing.T) {
	s := New(stubLoader{catalog: Catalog{}}, &stubScorer{})
	err := s.Load(context.Background())

	var lerr *LoadError
	if !errors.As(err, &lerr) {
		t.Fatalf("Load() error = %v, want *LoadError", err)
	}
	if s.Phase() != PhaseLoading {
		t.Errorf("Phase = %v, want loading", s.Phase())
	}
}

func TestLoad_LoaderFailure(t *testing.T) {
	s := New(stubLoader{err: errors.New("network down")}, &stubScorer{})
	err := s.Load(context.Background())

	var lerr *LoadError
	if !errors.As(err, &lerr) {
		t.Fatalf("Load() error = %v, want *LoadError", err)
	}

	// Load is retryable: a later successful fetch starts the session.
	s.loader = stubLoader{catalog: testCatalog()}
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("retry Load() error: %v", err)
	}
	if s.Phase() != PhaseInProgress {
		t.Errorf("Phase = %v, want in-progress", s.Phase())
	}
}

func TestSelectChoice_Overwrites(t *testing.T) {
	s := startedSession(t, testCatalog(), &stubScorer{})

	if err := s.SelectChoice("Coding"); err != nil {
		t.Fatalf("SelectChoice: %v", err)
	}
	if err := s.SelectChoice("Reading"); err != nil {
		t.Fatalf("SelectChoice (overwrite): %v", err)
	}

	if got := s.Pending(); got != "Reading" {
		t.Errorf("Pending = %q, want %q", got, "Reading")
	}
	if len(s.Ledger()) != 0 {
		t.Error("SelectChoice must not touch the ledger")
	}
}

func TestSelectChoice_RejectsUnknownOption(t *testing.T) {
	s := startedSession(t, testCatalog(), &stubScorer{})

	if err := s.SelectChoice("Skydiving"); !errors.Is(err, ErrInvalidChoice) {
		t.Errorf("SelectChoice = %v, want ErrInvalidChoice", err)
	}
	if s.Pending() != "" {
		t.Error("invalid choice must not become pending")
	}
}

func TestAdvance_WithoutSelection(t *testing.T) {
	s := startedSession(t, testCatalog(), &stubScorer{})

	err := s.Advance(context.Background())
	if !errors.Is(err, ErrNoSelection) {
		t.Fatalf("Advance = %v, want ErrNoSelection", err)
	}
	if s.Position() != 0 {
		t.Errorf("Position = %d, want 0 (unchanged)", s.Position())
	}
	if len(s.Ledger()) != 0 {
		t.Error("ledger must be unchanged after guarded Advance")
	}
}

func TestRetreat_AtFirstQuestion(t *testing.T) {
	s := startedSession(t, testCatalog(), &stubScorer{})

	if s.Retreat() {
		t.Error("Retreat at position 0 must be a no-op")
	}
	if s.Position() != 0 || len(s.Ledger()) != 0 || s.Pending() != "" {
		t.Error("state changed by guarded Retreat")
	}
}

// Scenario A from the flow contract: two advances then one retreat must
// rewind the ledger by exactly one entry and rehydrate the prior choice.
func TestAdvanceRetreat_RestoresSelection(t *testing.T) {
	s := startedSession(t, testCatalog(), &stubScorer{})
	ctx := context.Background()

	mustSelect(t, s, "Performing")
	mustAdvance(t, s, ctx)

	if s.Position() != 1 {
		t.Fatalf("Position = %d, want 1", s.Position())
	}
	mustSelect(t, s, "Solving problems")
	mustAdvance(t, s, ctx)

	if s.Position() != 2 {
		t.Fatalf("Position = %d, want 2", s.Position())
	}

	if !s.Retreat() {
		t.Fatal("Retreat failed")
	}
	if s.Position() != 1 {
		t.Errorf("Position = %d, want 1", s.Position())
	}
	if got := s.Pending(); got != "Solving problems" {
		t.Errorf("Pending = %q, want the undone choice restored", got)
	}

	ledger := s.Ledger()
	if len(ledger) != 1 {
		t.Fatalf("ledger length = %d, want 1", len(ledger))
	}
	if ledger[0].QuestionID != 1 || ledger[0].Choice != "Performing" {
		t.Errorf("ledger[0] = %+v, want {1 Performing}", ledger[0])
	}
}

// Inverse law: retreat followed by advance with the restored choice
// reproduces the exact prior ledger and position.
func TestAdvanceRetreat_InverseLaw(t *testing.T) {
	s := startedSession(t, testCatalog(), &stubScorer{})
	ctx := context.Background()

	mustSelect(t, s, "Coding")
	mustAdvance(t, s, ctx)
	mustSelect(t, s, "Competing")
	mustAdvance(t, s, ctx)

	before := s.Ledger()
	beforePos := s.Position()

	s.Retreat()
	mustSelect(t, s, s.Pending())
	mustAdvance(t, s, ctx)

	after := s.Ledger()
	if s.Position() != beforePos {
		t.Errorf("Position = %d, want %d", s.Position(), beforePos)
	}
	if len(after) != len(before) {
		t.Fatalf("ledger length = %d, want %d", len(after), len(before))
	}
	for i := range before {
		if after[i] != before[i] {
			t.Errorf("ledger[%d] = %+v, want %+v", i, after[i], before[i])
		}
	}
}

// Completeness invariant: the scorer only ever receives a full ledger
// whose question ids match catalog order.
func TestSubmission_CompleteOrderedLedger(t *testing.T) {
	catalog := testCatalog()
	scorer := &stubScorer{result: &Result{PersonalityType: "Tech Explorer"}}
	s := startedSession(t, catalog, scorer)
	ctx := context.Background()

	for i := range catalog {
		mustSelect(t, s, catalog[i].Options[0])
		mustAdvance(t, s, ctx)
	}

	if scorer.calls != 1 {
		t.Fatalf("scorer calls = %d, want 1", scorer.calls)
	}
	if len(scorer.last) != len(catalog) {
		t.Fatalf("submitted ledger length = %d, want %d", len(scorer.last), len(catalog))
	}
	for i, ans := range scorer.last {
		if ans.QuestionID != catalog[i].ID {
			t.Errorf("ledger[%d].QuestionID = %d, want %d", i, ans.QuestionID, catalog[i].ID)
		}
	}
	if s.Phase() != PhaseCompleted {
		t.Errorf("Phase = %v, want completed", s.Phase())
	}
	if s.Result() == nil || s.Result().PersonalityType != "Tech Explorer" {
		t.Errorf("Result = %+v, want the scorer's result", s.Result())
	}
}

// Scenario B: a single-question catalog submits on the first advance.
func TestAdvance_SingleQuestionSubmitsImmediately(t *testing.T) {
	catalog := Catalog{{ID: 7, Prompt: "Only question", Options: []string{"Yes"}}}
	scorer := &stubScorer{result: &Result{PersonalityType: "Versatile All-Rounder"}}
	s := startedSession(t, catalog, scorer)

	mustSelect(t, s, "Yes")
	mustAdvance(t, s, context.Background())

	if scorer.calls != 1 {
		t.Errorf("scorer calls = %d, want 1", scorer.calls)
	}
	if s.Phase() != PhaseCompleted {
		t.Errorf("Phase = %v, want completed", s.Phase())
	}
}

// Scenario C: a failed submission keeps the ledger and allows resubmission
// without re-answering.
func TestResubmit_AfterFailure(t *testing.T) {
	catalog := testCatalog()
	scorer := &stubScorer{err: errors.New("503 service unavailable")}
	s := startedSession(t, catalog, scorer)
	ctx := context.Background()

	for i := range catalog {
		mustSelect(t, s, catalog[i].Options[1])
		if err := s.Advance(ctx); i < len(catalog)-1 && err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}

	if s.Phase() != PhaseFailed {
		t.Fatalf("Phase = %v, want failed", s.Phase())
	}
	var serr *SubmissionError
	if !errors.As(s.Err(), &serr) {
		t.Fatalf("Err = %v, want *SubmissionError", s.Err())
	}
	if len(s.Ledger()) != len(catalog) {
		t.Fatalf("ledger length = %d, want %d (retained)", len(s.Ledger()), len(catalog))
	}

	scorer.err = nil
	scorer.result = &Result{PersonalityType: "Natural Leader"}
	if err := s.Resubmit(ctx); err != nil {
		t.Fatalf("Resubmit: %v", err)
	}
	if scorer.calls != 2 {
		t.Errorf("scorer calls = %d, want 2", scorer.calls)
	}
	if s.Phase() != PhaseCompleted {
		t.Errorf("Phase = %v, want completed", s.Phase())
	}
	if len(scorer.last) != len(catalog) {
		t.Errorf("resubmitted ledger length = %d, want %d", len(scorer.last), len(catalog))
	}
}

func TestResubmit_RequiresFailedPhase(t *testing.T) {
	s := startedSession(t, testCatalog(), &stubScorer{})
	if err := s.Resubmit(context.Background()); !errors.Is(err, ErrNotFailed) {
		t.Errorf("Resubmit = %v, want ErrNotFailed", err)
	}
}

// Operations issued after the session leaves InProgress are rejected, so
// a double submission of the ledger is unrepresentable.
func TestOperations_RejectedAfterCompletion(t *testing.T) {
	catalog := Catalog{{ID: 1, Prompt: "Q", Options: []string{"A"}}}
	scorer := &stubScorer{result: &Result{}}
	s := startedSession(t, catalog, scorer)
	ctx := context.Background()

	mustSelect(t, s, "A")
	mustAdvance(t, s, ctx)

	if err := s.SelectChoice("A"); !errors.Is(err, ErrNotInProgress) {
		t.Errorf("SelectChoice = %v, want ErrNotInProgress", err)
	}
	if err := s.Advance(ctx); !errors.Is(err, ErrNotInProgress) {
		t.Errorf("Advance = %v, want ErrNotInProgress", err)
	}
	if s.Retreat() {
		t.Error("Retreat must be a no-op after completion")
	}
	if scorer.calls != 1 {
		t.Errorf("scorer calls = %d, want 1 (no double submission)", scorer.calls)
	}
}

func TestProgress(t *testing.T) {
	s := startedSession(t, testCatalog(), &stubScorer{result: &Result{}})
	ctx := context.Background()

	if got := s.Progress(); got != 0 {
		t.Errorf("Progress = %v, want 0", got)
	}
	mustSelect(t, s, "Coding")
	mustAdvance(t, s, ctx)
	if got := s.Progress(); got < 0.33 || got > 0.34 {
		t.Errorf("Progress = %v, want ~1/3", got)
	}
}

func mustSelect(t *testing.T, s *Session, choice string) {
	t.Helper()
	if err := s.SelectChoice(choice); err != nil {
		t.Fatalf("SelectChoice(%q): %v", choice, err)
	}
}

func mustAdvance(t *testing.T, s *Session, ctx context.Context) {
	t.Helper()
	if err := s.Advance(ctx); err != nil {
		t.Fatalf("Advance: %v", err)
	}
}
