package login

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/clubcompass/clubcompass/internal/api"
	"github.com/clubcompass/clubcompass/internal/config"
	"github.com/clubcompass/clubcompass/internal/router"
	"github.com/clubcompass/clubcompass/internal/screen"
)

// stubScreen stands in for the home screen built after sign-in.
type stubScreen struct {
	user api.User
}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(width, height int) string           { return "" }
func (s *stubScreen) Title() string                           { return "Stub" }

func newAuthServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.Password != "hunter2" {
			http.Error(w, `{"detail": "Invalid email or password"}`, http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-1",
			"token_type":   "bearer",
			"user":         map[string]any{"id": "u1", "name": "Priya", "email": in.Email, "role": "fresher"},
		})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestLogin(t *testing.T) *LoginScreen {
	t.Helper()
	server := newAuthServer(t)
	client := api.New(config.Config{APIURL: server.URL})
	s := New(client, nil, func(user api.User) screen.Screen {
		return &stubScreen{user: user}
	})
	s.Init()
	return s
}

func typeText(t *testing.T, s *LoginScreen, text string) {
	t.Helper()
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestSubmitWithEmptyFieldsShowsError(t *testing.T) {
	s := newTestLogin(t)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("expected no command for an empty submit")
	}
	if s.errMsg == "" {
		t.Fatal("expected a validation error")
	}
}

func TestTabReachesSubmitButton(t *testing.T) {
	s := newTestLogin(t)

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if !s.submitBtn.Active {
		t.Fatal("expected the submit button to be focused after tabbing past the fields")
	}
}

func TestSignInReplacesWithHome(t *testing.T) {
	s := newTestLogin(t)

	typeText(t, s, "priya@college.edu")
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	typeText(t, s, "hunter2")
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a login command")
	}
	if !s.busy {
		t.Fatal("expected the form to be busy while logging in")
	}

	done, ok := cmd().(authDoneMsg)
	if !ok {
		t.Fatalf("expected authDoneMsg, got %T", cmd())
	}
	if done.Err != nil {
		t.Fatalf("login failed: %v", done.Err)
	}

	_, cmd = s.Update(done)
	if cmd == nil {
		t.Fatal("expected a replace command after sign-in")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	home, ok := replace.Screen.(*stubScreen)
	if !ok {
		t.Fatalf("expected the home factory's screen, got %T", replace.Screen)
	}
	if home.user.Name != "Priya" {
		t.Errorf("home user = %+v", home.user)
	}
}

func TestBadPasswordShowsBackendDetail(t *testing.T) {
	s := newTestLogin(t)

	typeText(t, s, "priya@college.edu")
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	typeText(t, s, "wrong")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a login command")
	}
	s.Update(cmd())
	if s.busy {
		t.Fatal("expected the form to be idle after a failed login")
	}
	if s.errMsg == "" {
		t.Fatal("expected the backend error to surface")
	}
}

func TestCtrlSTogglesSignUp(t *testing.T) {
	s := newTestLogin(t)

	s.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	if s.mode != modeSignUp {
		t.Fatal("expected the sign-up form")
	}
	if s.Title() != "Create Account" {
		t.Errorf("Title = %q", s.Title())
	}
	if s.submitBtn.Label != "Create Account" {
		t.Errorf("button label = %q", s.submitBtn.Label)
	}

	s.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	if s.mode != modeSignIn {
		t.Fatal("expected the sign-in form back")
	}
}
