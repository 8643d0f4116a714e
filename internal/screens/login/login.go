package login

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/clubcompass/clubcompass/internal/api"
	"github.com/clubcompass/clubcompass/internal/logging"
	"github.com/clubcompass/clubcompass/internal/router"
	"github.com/clubcompass/clubcompass/internal/screen"
	"github.com/clubcompass/clubcompass/internal/store"
	"github.com/clubcompass/clubcompass/internal/ui/components"
	"github.com/clubcompass/clubcompass/internal/ui/layout"
)

// mode selects between the sign-in and sign-up forms.
type mode int

const (
	modeSignIn mode = iota
	modeSignUp
)

// roles the backend accepts on signup.
var roles = []string{"fresher", "senior"}

// LoginScreen is the authentication gate: a sign-in form with a
// switchable sign-up variant. On success the credential is cached and
// the screen is replaced by the home screen.
type LoginScreen struct {
	client      *api.Client
	store       *store.Store
	homeFactory func(api.User) screen.Screen

	mode    mode
	focus   int
	roleIdx int

	name      components.TextInput
	email     components.TextInput
	password  components.TextInput
	submitBtn components.Button

	busy   bool
	errMsg string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a LoginScreen. homeFactory builds the screen shown after
// a successful sign-in; injecting it keeps this package independent of
// the home package.
func New(client *api.Client, st *store.Store, homeFactory func(api.User) screen.Screen) *LoginScreen {
	s := &LoginScreen{
		client:      client,
		store:       st,
		homeFactory: homeFactory,
		name:        components.NewTextInput("Name", "Your full name", 80),
		email:       components.NewTextInput("Email", "you@college.edu", 120),
		password:    components.NewPasswordInput("Password", 120),
	}
	s.submitBtn = components.NewButton("Sign In", false, s.submit)
	return s
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.email.Focus()
}

func (s *LoginScreen) Title() string {
	if s.mode == modeSignUp {
		return "Create Account"
	}
	return "Sign In"
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
	}
	if s.mode == modeSignIn {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+S", Description: "Sign up instead"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+S", Description: "Sign in instead"})
	}
	return hints
}

// fieldCount is the number of focusable fields in the active form,
// the submit button included. The sign-up form adds name and a role
// selector.
func (s *LoginScreen) fieldCount() int {
	if s.mode == modeSignUp {
		return 5 // name, email, password, role, submit
	}
	return 3 // email, password, submit
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		return s.handleAuthDone(msg)
	case tea.KeyMsg:
		if s.busy {
			return s, nil
		}
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *LoginScreen) handleAuthDone(msg authDoneMsg) (screen.Screen, tea.Cmd) {
	s.busy = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	if s.store != nil {
		if err := s.store.SaveCredential(context.Background(), s.client.Token(), msg.User); err != nil {
			logging.Log.WithError(err).Warn("cache credential")
		}
	}

	home := s.homeFactory(msg.User)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

func (s *LoginScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		s.toggleMode()
		return s, s.focusField()
	case "tab":
		s.focus = (s.focus + 1) % s.fieldCount()
		return s, s.focusField()
	case "shift+tab":
		s.focus = (s.focus + s.fieldCount() - 1) % s.fieldCount()
		return s, s.focusField()
	case "enter":
		if s.submitBtn.Active {
			var cmd tea.Cmd
			s.submitBtn, cmd = s.submitBtn.Update(msg)
			return s, cmd
		}
		return s, s.submit()
	}

	// Role selector takes left/right instead of text.
	if s.mode == modeSignUp && s.focus == 3 {
		switch msg.String() {
		case "left", "right", "space":
			s.roleIdx = (s.roleIdx + 1) % len(roles)
		}
		return s, nil
	}

	var cmd tea.Cmd
	switch s.activeField() {
	case &s.name:
		s.name, cmd = s.name.Update(msg)
	case &s.email:
		s.email, cmd = s.email.Update(msg)
	case &s.password:
		s.password, cmd = s.password.Update(msg)
	}
	return s, cmd
}

func (s *LoginScreen) toggleMode() {
	if s.mode == modeSignIn {
		s.mode = modeSignUp
	} else {
		s.mode = modeSignIn
	}
	s.focus = 0
	s.errMsg = ""
	if s.mode == modeSignUp {
		s.submitBtn.Label = "Create Account"
	} else {
		s.submitBtn.Label = "Sign In"
	}
}

// activeField maps the focus index onto a text input, nil for the role
// selector and the submit button.
func (s *LoginScreen) activeField() *components.TextInput {
	if s.mode == modeSignUp {
		switch s.focus {
		case 0:
			return &s.name
		case 1:
			return &s.email
		case 2:
			return &s.password
		}
		return nil
	}
	switch s.focus {
	case 0:
		return &s.email
	case 1:
		return &s.password
	}
	return nil
}

func (s *LoginScreen) focusField() tea.Cmd {
	s.name.Blur()
	s.email.Blur()
	s.password.Blur()
	s.submitBtn.Active = s.focus == s.fieldCount()-1
	if f := s.activeField(); f != nil {
		return f.Focus()
	}
	return nil
}

func (s *LoginScreen) submit() tea.Cmd {
	email := strings.TrimSpace(s.email.Value())
	password := s.password.Value()
	if email == "" || password == "" {
		s.errMsg = "Email and password are required"
		return nil
	}

	if s.mode == modeSignUp {
		name := strings.TrimSpace(s.name.Value())
		if name == "" {
			s.errMsg = "Name is required"
			return nil
		}
		in := api.SignupInput{
			Name:     name,
			Email:    email,
			Password: password,
			Role:     roles[s.roleIdx],
		}
		s.busy = true
		s.errMsg = ""
		return func() tea.Msg {
			tok, err := s.client.Signup(context.Background(), in)
			if err != nil {
				return authDoneMsg{Err: err}
			}
			return authDoneMsg{User: tok.User}
		}
	}

	s.busy = true
	s.errMsg = ""
	return func() tea.Msg {
		tok, err := s.client.Login(context.Background(), email, password)
		if err != nil {
			return authDoneMsg{Err: err}
		}
		return authDoneMsg{User: tok.User}
	}
}
