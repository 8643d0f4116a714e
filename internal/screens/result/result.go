package result

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/clubcompass/clubcompass/internal/api"
	"github.com/clubcompass/clubcompass/internal/config"
	"github.com/clubcompass/clubcompass/internal/logging"
	quizcore "github.com/clubcompass/clubcompass/internal/quiz"
	"github.com/clubcompass/clubcompass/internal/router"
	"github.com/clubcompass/clubcompass/internal/screen"
	"github.com/clubcompass/clubcompass/internal/screens/clubdetail"
	"github.com/clubcompass/clubcompass/internal/store"
	"github.com/clubcompass/clubcompass/internal/ui/layout"
)

// ResultScreen presents a quiz result: the personality profile and the
// recommended clubs, in the exact order the scorer produced them.
type ResultScreen struct {
	client *api.Client
	store  *store.Store
	policy config.ResultPolicy

	result    *quizcore.Result
	cursor    int
	restoring bool
	errMsg    string
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen for a result that was just produced.
func New(result *quizcore.Result, client *api.Client, st *store.Store) *ResultScreen {
	return &ResultScreen{
		client: client,
		store:  st,
		result: result,
	}
}

// NewRestored creates a ResultScreen with no in-memory result. What it
// does depends on the policy: restore looks the last result up in the
// local cache and then the API, discard redirects straight back.
func NewRestored(client *api.Client, st *store.Store, policy config.ResultPolicy) *ResultScreen {
	return &ResultScreen{
		client: client,
		store:  st,
		policy: policy,
	}
}

func (s *ResultScreen) Init() tea.Cmd {
	if s.result != nil {
		return nil
	}
	if s.policy == config.ResultPolicyDiscard {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	s.restoring = true
	return s.restore()
}

func (s *ResultScreen) Title() string {
	return "Your Matches"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	if s.result == nil {
		return nil
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "View club"},
		{Key: "Esc", Description: "Back"},
	}
}

// restore fetches the most recent result, preferring the local cache
// over a round trip.
func (s *ResultScreen) restore() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		if s.store != nil {
			res, err := s.store.LastResult(ctx)
			if err != nil {
				logging.Log.WithError(err).Warn("read cached result")
			} else if res != nil {
				return restoredMsg{Result: res}
			}
		}

		res, err := s.client.LastResult(ctx)
		return restoredMsg{Result: res, Err: err}
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case restoredMsg:
		s.restoring = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		if msg.Result == nil {
			// Nothing to show anywhere; back to where the user came from.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.result = msg.Result
		if s.store != nil {
			if err := s.store.SaveResult(context.Background(), msg.Result); err != nil {
				logging.Log.WithError(err).Warn("cache restored result")
			}
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ResultScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.result == nil {
		if s.errMsg != "" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	recs := s.result.Recommendations
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(recs)-1 {
			s.cursor++
		}
	case "enter":
		if s.cursor < len(recs) {
			detail := clubdetail.New(s.client, recs[s.cursor].ClubID)
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: detail}
			}
		}
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}
