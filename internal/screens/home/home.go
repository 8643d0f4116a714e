package home

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/clubcompass/clubcompass/internal/api"
	"github.com/clubcompass/clubcompass/internal/config"
	"github.com/clubcompass/clubcompass/internal/logging"
	"github.com/clubcompass/clubcompass/internal/router"
	"github.com/clubcompass/clubcompass/internal/screen"
	"github.com/clubcompass/clubcompass/internal/screens/bookmarks"
	"github.com/clubcompass/clubcompass/internal/screens/clubs"
	"github.com/clubcompass/clubcompass/internal/screens/compare"
	"github.com/clubcompass/clubcompass/internal/screens/qna"
	quizscreen "github.com/clubcompass/clubcompass/internal/screens/quiz"
	"github.com/clubcompass/clubcompass/internal/screens/result"
	"github.com/clubcompass/clubcompass/internal/store"
	"github.com/clubcompass/clubcompass/internal/ui/components"
)

// summaryMsg carries the dashboard numbers loaded on entry.
type summaryMsg struct {
	Personality string
	Bookmarks   int
}

// HomeScreen is the main dashboard: the signed-in user's entry point to
// the quiz, the catalog and the board, with a one-line summary of the
// last quiz result and saved clubs.
type HomeScreen struct {
	client *api.Client
	store  *store.Store

	menu components.Menu
	user api.User

	personality string
	bookmarks   int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. loginFactory builds the screen shown after
// sign-out; it is injected to keep this package independent of the
// login package.
func New(client *api.Client, st *store.Store, cfg config.Config, user api.User, loginFactory func() screen.Screen) *HomeScreen {
	items := []components.MenuItem{
		{Label: "TAKE THE QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(client, st)}
			}
		}},
		{Label: "VIEW LAST RESULT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: result.NewRestored(client, st, cfg.ResultPolicy),
				}
			}
		}},
		{Label: "BROWSE CLUBS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: clubs.New(client)}
			}
		}},
		{Label: "MY BOOKMARKS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: bookmarks.New(client)}
			}
		}},
		{Label: "COMPARE CLUBS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: compare.New(client)}
			}
		}},
		{Label: "Q&A BOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: qna.New(client, user.ID)}
			}
		}},
		{Label: "SIGN OUT", Action: func() tea.Cmd {
			if st != nil {
				if err := st.ClearCredential(context.Background()); err != nil {
					logging.Log.WithError(err).Warn("clear credential")
				}
			}
			client.SetToken("")
			return func() tea.Msg {
				return router.ResetScreenMsg{Screen: loginFactory()}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		client: client,
		store:  st,
		menu:   components.NewMenu(items),
		user:   user,
	}
}

// Init kicks off the summary load. Failures leave the summary blank;
// the dashboard is usable without it.
func (h *HomeScreen) Init() tea.Cmd {
	return func() tea.Msg {
		var sum summaryMsg
		if h.store != nil {
			if res, err := h.store.LastResult(context.Background()); err == nil && res != nil {
				sum.Personality = res.PersonalityType
			}
		}
		if clubs, err := h.client.Bookmarks(context.Background()); err == nil {
			sum.Bookmarks = len(clubs)
		}
		return sum
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// UserName is read by the app shell for the header.
func (h *HomeScreen) UserName() string {
	return h.user.Name
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if sum, ok := msg.(summaryMsg); ok {
		h.personality = sum.Personality
		h.bookmarks = sum.Bookmarks
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}
