package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/clubcompass/clubcompass/internal/api"
	"github.com/clubcompass/clubcompass/internal/config"
	"github.com/clubcompass/clubcompass/internal/logging"
	"github.com/clubcompass/clubcompass/internal/router"
	"github.com/clubcompass/clubcompass/internal/screen"
	"github.com/clubcompass/clubcompass/internal/screens/home"
	"github.com/clubcompass/clubcompass/internal/screens/login"
	quizscreen "github.com/clubcompass/clubcompass/internal/screens/quiz"
	"github.com/clubcompass/clubcompass/internal/screens/welcome"
	"github.com/clubcompass/clubcompass/internal/store"
	"github.com/clubcompass/clubcompass/internal/ui/layout"
)

// Options configures the app shell.
type Options struct {
	Config config.Config
	Client *api.Client
	Store  *store.Store // nil disables local caching

	// SkipSplash jumps straight past the welcome animation.
	SkipSplash bool
	// StartQuiz opens the quiz immediately after sign-in.
	StartQuiz bool
}

// userNameProvider is implemented by screens that know who is signed in.
type userNameProvider interface {
	UserName() string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel wires the screen graph. The login and home screens need
// to create each other after sign-in and sign-out, so both are built
// through factories.
func newAppModel(opts Options) AppModel {
	var loginFactory func() screen.Screen

	homeFactory := func(user api.User) screen.Screen {
		return home.New(opts.Client, opts.Store, opts.Config, user, func() screen.Screen {
			return loginFactory()
		})
	}
	loginFactory = func() screen.Screen {
		return login.New(opts.Client, opts.Store, homeFactory)
	}

	// A cached, unexpired credential skips the login gate.
	entry := func() screen.Screen {
		if opts.Client.Token() != "" {
			if user, err := opts.Client.Me(context.Background()); err == nil {
				return afterLogin(opts, homeFactory, *user)
			}
		}
		if opts.Store != nil {
			cred, err := opts.Store.Credential(context.Background())
			if err != nil {
				logging.Log.WithError(err).Warn("read cached credential")
			} else if cred != nil && !api.TokenExpired(cred.Token, time.Now()) {
				opts.Client.SetToken(cred.Token)
				return afterLogin(opts, homeFactory, cred.User)
			}
		}
		return loginFactory()
	}

	var initial screen.Screen
	if opts.SkipSplash {
		initial = entry()
	} else {
		initial = welcome.New(entry)
	}

	return AppModel{
		router: router.New(initial),
	}
}

// afterLogin returns the screen shown once a user is known.
func afterLogin(opts Options, homeFactory func(api.User) screen.Screen, user api.User) screen.Screen {
	if opts.StartQuiz {
		return quizscreen.New(opts.Client, opts.Store)
	}
	return homeFactory(user)
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// The splash draws the full frame itself.
	if title == "" && active != nil {
		v.SetContent(active.View(m.width, m.height))
		return v
	}

	userName := ""
	if p, ok := active.(userNameProvider); ok {
		userName = p.UserName()
	}

	header := layout.RenderHeader(title, userName, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
