package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/clubcompass/clubcompass/internal/screen"
)

// fakeScreen records Init calls for navigation tests.
type fakeScreen struct {
	name   string
	inited bool
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inited = true
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return f, nil
}

func (f *fakeScreen) View(width, height int) string { return f.name }
func (f *fakeScreen) Title() string                 { return f.name }

func TestPushPop(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	if r.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1", r.Depth())
	}

	clubs := &fakeScreen{name: "clubs"}
	r.Update(PushScreenMsg{Screen: clubs})

	if r.Depth() != 2 {
		t.Fatalf("Depth after push = %d, want 2", r.Depth())
	}
	if r.Active() != clubs {
		t.Error("Active() is not the pushed screen")
	}
	if !clubs.inited {
		t.Error("pushed screen's Init() was not called")
	}

	r.Update(PopScreenMsg{})
	if r.Active() != home {
		t.Error("Active() after pop is not the original screen")
	}
}

func TestPop_BottomOfStack(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 || r.Active() != home {
		t.Error("popping the last screen must be a no-op")
	}
}

func TestReplace(t *testing.T) {
	quizScreen := &fakeScreen{name: "quiz"}
	r := New(quizScreen)

	result := &fakeScreen{name: "result"}
	r.Update(ReplaceScreenMsg{Screen: result})

	if r.Depth() != 1 {
		t.Fatalf("Depth after replace = %d, want 1", r.Depth())
	}
	if r.Active() != result {
		t.Error("Active() is not the replacement screen")
	}
	if !result.inited {
		t.Error("replacement screen's Init() was not called")
	}
}

func TestReset(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Update(PushScreenMsg{Screen: &fakeScreen{name: "clubs"}})
	r.Update(PushScreenMsg{Screen: &fakeScreen{name: "detail"}})

	login := &fakeScreen{name: "login"}
	r.Update(ResetScreenMsg{Screen: login})

	if r.Depth() != 1 {
		t.Fatalf("Depth after reset = %d, want 1", r.Depth())
	}
	if r.Active() != login || !login.inited {
		t.Error("reset did not install and init the new screen")
	}
}
