package quiz

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/clubcompass/clubcompass/internal/api"
	"github.com/clubcompass/clubcompass/internal/logging"
	quizcore "github.com/clubcompass/clubcompass/internal/quiz"
	"github.com/clubcompass/clubcompass/internal/router"
	"github.com/clubcompass/clubcompass/internal/screen"
	"github.com/clubcompass/clubcompass/internal/screens/result"
	"github.com/clubcompass/clubcompass/internal/store"
	"github.com/clubcompass/clubcompass/internal/ui/components"
	"github.com/clubcompass/clubcompass/internal/ui/layout"
)

// QuizScreen drives one quiz session: question-by-question selection
// with backward navigation, then submission and hand-off to the result
// view. All session rules live in the session itself; the screen only
// translates keys into operations and renders the outcome.
type QuizScreen struct {
	client  *api.Client
	store   *store.Store
	session *quizcore.Session
	choices components.ChoiceList

	submitting bool
	loadErr    string
	flash      string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen backed by the API client's catalog and
// scoring endpoints. st may be nil; the result is then never cached.
func New(client *api.Client, st *store.Store) *QuizScreen {
	return &QuizScreen{
		client:  client,
		store:   st,
		session: quizcore.New(client, client),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.loadCatalog()
}

func (s *QuizScreen) Title() string {
	return "Club Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.session.Phase() {
	case quizcore.PhaseFailed:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry submission"},
			{Key: "Esc", Description: "Back"},
		}
	case quizcore.PhaseInProgress:
		hints := []layout.KeyHint{
			{Key: "↑↓/1-4", Description: "Choose"},
			{Key: "Enter", Description: "Next"},
		}
		if s.session.Position() > 0 {
			hints = append(hints, layout.KeyHint{Key: "←", Description: "Previous"})
		}
		return hints
	}
	return nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		return s.handleCatalogLoaded(msg)
	case scoredMsg:
		return s.handleScored(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// loadCatalog fetches questions and moves the session to InProgress.
func (s *QuizScreen) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		return catalogLoadedMsg{Err: s.session.Load(context.Background())}
	}
}

func (s *QuizScreen) handleCatalogLoaded(msg catalogLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		logging.Log.WithField("session", s.session.ID).WithError(msg.Err).Error("quiz catalog load failed")
		s.loadErr = msg.Err.Error()
		return s, nil
	}
	logging.Log.WithField("session", s.session.ID).WithField("questions", s.session.Len()).Debug("quiz session started")
	s.syncChoices()
	return s, nil
}

// syncChoices rebuilds the option list for the current question,
// pre-selecting the pending choice (set after a retreat).
func (s *QuizScreen) syncChoices() {
	q, ok := s.session.Current()
	if !ok {
		return
	}
	s.choices = components.NewChoiceList(q.Options)
	if pending := s.session.Pending(); pending != "" {
		s.choices.SetChosen(pending)
	}
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.submitting {
		return s, nil
	}

	if s.loadErr != "" {
		switch msg.String() {
		case "r":
			s.loadErr = ""
			return s, s.loadCatalog()
		default:
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	switch s.session.Phase() {
	case quizcore.PhaseFailed:
		switch msg.String() {
		case "r":
			return s, s.resubmit()
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil

	case quizcore.PhaseInProgress:
		return s.handleQuestionKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleQuestionKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	s.flash = ""

	switch msg.String() {
	case "enter":
		if s.session.Pending() == "" {
			s.flash = "Please select an option"
			return s, nil
		}
		return s.advance()

	case "left", "backspace", "p":
		if s.session.Retreat() {
			s.syncChoices()
		}
		return s, nil

	case "esc":
		// Sessions are not resumable; leaving discards the answers.
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	s.choices, cmd = s.choices.Update(msg)
	if choice := s.choices.Value(); choice != "" && choice != s.session.Pending() {
		if err := s.session.SelectChoice(choice); err != nil {
			logging.Log.WithError(err).Warn("select choice rejected")
		}
	}
	return s, cmd
}

// advance commits the pending choice. On the last question the session
// submits the full ledger in the same operation, so that case runs as a
// command with a progress view while the scoring call is outstanding.
func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	last := s.session.Position() == s.session.Len()-1
	if !last {
		if err := s.session.Advance(context.Background()); err != nil {
			s.flash = err.Error()
			return s, nil
		}
		s.syncChoices()
		return s, nil
	}

	s.submitting = true
	return s, func() tea.Msg {
		return scoredMsg{Err: s.session.Advance(context.Background())}
	}
}

func (s *QuizScreen) resubmit() tea.Cmd {
	s.submitting = true
	return func() tea.Msg {
		return scoredMsg{Err: s.session.Resubmit(context.Background())}
	}
}

func (s *QuizScreen) handleScored(msg scoredMsg) (screen.Screen, tea.Cmd) {
	s.submitting = false

	if msg.Err != nil {
		logging.Log.WithField("session", s.session.ID).WithError(msg.Err).Error("quiz submission failed")
		return s, nil
	}

	res := s.session.Result()
	logging.Log.WithField("session", s.session.ID).WithField("personality", res.PersonalityType).Debug("quiz session scored")
	if s.store != nil {
		if err := s.store.SaveResult(context.Background(), res); err != nil {
			logging.Log.WithError(err).Warn("cache quiz result")
		}
	}

	// Replace rather than push: the finished session is gone and cannot
	// be navigated back into.
	resultScreen := result.New(res, s.client, s.store)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: resultScreen}
	}
}
