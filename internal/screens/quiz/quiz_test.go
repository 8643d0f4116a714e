package quiz

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/clubcompass/clubcompass/internal/api"
	"github.com/clubcompass/clubcompass/internal/config"
	"github.com/clubcompass/clubcompass/internal/logging"
	quizcore "github.com/clubcompass/clubcompass/internal/quiz"
	"github.com/clubcompass/clubcompass/internal/router"
)

var testQuestions = []map[string]any{
	{"id": 1, "question": "Pick one", "options": []string{"Code", "Dance", "Cricket"}},
	{"id": 2, "question": "Pick again", "options": []string{"Solo", "Team"}},
}

var testResult = map[string]any{
	"personality_type":        "The Builder",
	"personality_description": "You like making things.",
	"recommendations": []map[string]any{
		{"club_id": "c1", "club_name": "Coding Club", "match_percentage": 91, "reason": "hands-on"},
	},
}

// newQuizServer serves the quiz endpoints and counts submissions.
func newQuizServer(t *testing.T, failSubmits int32) (*httptest.Server, *int32) {
	t.Helper()
	var submits int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/quiz/questions", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"questions": testQuestions})
	})
	mux.HandleFunc("/api/quiz/submit", func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&submits, 1)
		if n <= failSubmits {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"detail":"scoring unavailable"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(testResult)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &submits
}

func newTestQuiz(t *testing.T, failSubmits int32) (*QuizScreen, *int32) {
	t.Helper()
	server, submits := newQuizServer(t, failSubmits)
	client := api.New(config.Config{APIURL: server.URL})
	s := New(client, nil)

	// Run the load command synchronously.
	msg := s.Init()()
	loaded, ok := msg.(catalogLoadedMsg)
	if !ok {
		t.Fatalf("expected catalogLoadedMsg, got %T", msg)
	}
	s.Update(loaded)
	return s, submits
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestLoadShowsFirstQuestion(t *testing.T) {
	s, _ := newTestQuiz(t, 0)

	if s.session.Phase() != quizcore.PhaseInProgress {
		t.Fatalf("expected in-progress phase, got %v", s.session.Phase())
	}
	if got := s.session.Len(); got != 2 {
		t.Fatalf("expected 2 questions, got %d", got)
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "Pick one") {
		t.Error("first question should be rendered")
	}
	if !strings.Contains(view, "Question 1 of 2") {
		t.Error("progress counter should be rendered")
	}
}

func TestEnterWithoutSelectionShowsHint(t *testing.T) {
	s, _ := newTestQuiz(t, 0)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.session.Position() != 0 {
		t.Error("advance without a selection should not move")
	}
	if !strings.Contains(s.View(100, 30), "select an option") {
		t.Error("expected a selection hint")
	}
}

func TestNumberKeySelectsAndEnterAdvances(t *testing.T) {
	s, _ := newTestQuiz(t, 0)

	s.Update(keyPress('2'))
	if got := s.session.Pending(); got != "Dance" {
		t.Fatalf("expected pending Dance, got %q", got)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.session.Position() != 1 {
		t.Fatalf("expected position 1, got %d", s.session.Position())
	}
	if !strings.Contains(s.View(100, 30), "Pick again") {
		t.Error("second question should be rendered")
	}
}

func TestBackRestoresPriorSelection(t *testing.T) {
	s, _ := newTestQuiz(t, 0)

	s.Update(keyPress('1'))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})

	if s.session.Position() != 0 {
		t.Fatalf("expected position 0 after back, got %d", s.session.Position())
	}
	if got := s.session.Pending(); got != "Code" {
		t.Errorf("expected restored selection Code, got %q", got)
	}
	if got := s.choices.Value(); got != "Code" {
		t.Errorf("option list should show the restored choice, got %q", got)
	}
}

func TestCompletionReplacesWithResultScreen(t *testing.T) {
	s, submits := newTestQuiz(t, 0)

	s.Update(keyPress('1'))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.Update(keyPress('2'))

	// The final advance runs as a command carrying the submission.
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("final advance should produce a command")
	}
	scored, ok := cmd().(scoredMsg)
	if !ok {
		t.Fatalf("expected scoredMsg, got %T", cmd())
	}
	if scored.Err != nil {
		t.Fatalf("submission failed: %v", scored.Err)
	}

	_, cmd = s.Update(scored)
	if cmd == nil {
		t.Fatal("completion should produce a navigation command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if got := atomic.LoadInt32(submits); got != 1 {
		t.Errorf("expected exactly one submission, got %d", got)
	}
}

func TestFailedSubmissionRetries(t *testing.T) {
	s, submits := newTestQuiz(t, 1)

	s.Update(keyPress('1'))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.Update(keyPress('1'))

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	scored := cmd().(scoredMsg)
	if scored.Err == nil {
		t.Fatal("expected the first submission to fail")
	}
	s.Update(scored)

	if s.session.Phase() != quizcore.PhaseFailed {
		t.Fatalf("expected failed phase, got %v", s.session.Phase())
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "Submission failed") {
		t.Error("failure view should be rendered")
	}

	// Retry keeps the answers and succeeds.
	_, cmd = s.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("retry should produce a command")
	}
	scored = cmd().(scoredMsg)
	if scored.Err != nil {
		t.Fatalf("retry failed: %v", scored.Err)
	}
	_, cmd = s.Update(scored)
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("successful retry should navigate to the result")
	}
	if got := atomic.LoadInt32(submits); got != 2 {
		t.Errorf("expected two submissions, got %d", got)
	}
}

func TestKeysIgnoredWhileSubmitting(t *testing.T) {
	s, _ := newTestQuiz(t, 0)
	s.submitting = true

	s.Update(keyPress('1'))
	if s.session.Pending() != "" {
		t.Error("keys should be ignored while a submission is outstanding")
	}
}

func TestSubmissionFailureLogsSessionID(t *testing.T) {
	hook := test.NewLocal(logging.Log)
	defer hook.Reset()

	s, _ := newTestQuiz(t, 1)

	s.Update(keyPress('1'))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.Update(keyPress('1'))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.Update(cmd())

	var logged bool
	for _, e := range hook.AllEntries() {
		if e.Data["session"] == s.session.ID {
			logged = true
		}
	}
	if !logged {
		t.Errorf("expected a log entry carrying session %q", s.session.ID)
	}
}
