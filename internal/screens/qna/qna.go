package qna

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/clubcompass/clubcompass/internal/api"
	"github.com/clubcompass/clubcompass/internal/router"
	"github.com/clubcompass/clubcompass/internal/screen"
	"github.com/clubcompass/clubcompass/internal/ui/components"
	"github.com/clubcompass/clubcompass/internal/ui/layout"
)

// mode is the QnA screen's current sub-view.
type mode int

const (
	modeList mode = iota
	modeThread
	modeCompose
	modeReply
)

// QnAScreen is the peer question board: a thread list, a thread view
// with replies, and compose forms for questions and replies.
type QnAScreen struct {
	client *api.Client
	userID string

	mode    mode
	threads []api.Thread
	cursor  int

	active *api.Thread

	titleInput components.TextInput
	bodyInput  components.TextInput
	anonymous  bool
	focusBody  bool

	replyInput components.TextInput

	loading bool
	errMsg  string
	flash   string
}

var _ screen.Screen = (*QnAScreen)(nil)
var _ screen.KeyHintProvider = (*QnAScreen)(nil)

// New creates a QnAScreen. userID is the signed-in user's id, used to
// offer deletion only on own threads.
func New(client *api.Client, userID string) *QnAScreen {
	return &QnAScreen{
		client:     client,
		userID:     userID,
		titleInput: components.NewTextInput("Title", "What do you want to ask?", 120),
		bodyInput:  components.NewTextInput("Details", "Add context (optional)", 500),
		replyInput: components.NewTextInput("Reply", "Write a reply", 500),
		loading:    true,
	}
}

func (s *QnAScreen) Init() tea.Cmd {
	return s.loadThreads()
}

func (s *QnAScreen) Title() string {
	return "Q&A Board"
}

func (s *QnAScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeThread:
		return []layout.KeyHint{
			{Key: "A", Description: "Reply"},
			{Key: "Esc", Description: "Back"},
		}
	case modeCompose:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Ctrl+A", Description: "Toggle anonymous"},
			{Key: "Enter", Description: "Post"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeReply:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Post"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "N", Description: "New question"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *QnAScreen) loadThreads() tea.Cmd {
	return func() tea.Msg {
		threads, err := s.client.Threads(context.Background())
		return threadsLoadedMsg{Threads: threads, Err: err}
	}
}

func (s *QnAScreen) loadThread(id string) tea.Cmd {
	return func() tea.Msg {
		t, err := s.client.Thread(context.Background(), id)
		return threadLoadedMsg{Thread: t, Err: err}
	}
}

func (s *QnAScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case threadsLoadedMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.threads = msg.Threads
		if s.cursor >= len(s.threads) {
			s.cursor = 0
		}
		return s, nil

	case threadLoadedMsg:
		s.loading = false
		if msg.Err != nil {
			s.flash = msg.Err.Error()
			s.mode = modeList
			return s, nil
		}
		s.active = msg.Thread
		s.mode = modeThread
		return s, nil

	case postedMsg:
		s.loading = false
		if msg.Err != nil {
			s.flash = msg.Err.Error()
			return s, nil
		}
		// Re-fetch so counts and replies reflect the server's state.
		if s.mode == modeReply && s.active != nil {
			s.mode = modeThread
			return s, s.loadThread(s.active.ID)
		}
		s.mode = modeList
		s.loading = true
		return s, s.loadThreads()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QnAScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.mode {
	case modeCompose:
		return s.handleComposeKey(msg)
	case modeReply:
		return s.handleReplyKey(msg)
	case modeThread:
		return s.handleThreadKey(msg)
	}
	return s.handleListKey(msg)
}

func (s *QnAScreen) handleListKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	s.flash = ""

	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.threads)-1 {
			s.cursor++
		}
	case "enter":
		if s.cursor < len(s.threads) {
			s.loading = true
			return s, s.loadThread(s.threads[s.cursor].ID)
		}
	case "n":
		s.mode = modeCompose
		s.titleInput.Model.SetValue("")
		s.bodyInput.Model.SetValue("")
		s.anonymous = false
		s.focusBody = false
		s.bodyInput.Blur()
		return s, s.titleInput.Focus()
	case "x", "delete":
		if s.cursor < len(s.threads) && s.threads[s.cursor].UserID == s.userID {
			id := s.threads[s.cursor].ID
			s.loading = true
			return s, func() tea.Msg {
				return postedMsg{Err: s.client.DeleteThread(context.Background(), id)}
			}
		}
	case "r":
		if s.errMsg != "" {
			s.errMsg = ""
			s.loading = true
			return s, s.loadThreads()
		}
	case "esc", "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *QnAScreen) handleThreadKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "a":
		s.mode = modeReply
		s.replyInput.Model.SetValue("")
		return s, s.replyInput.Focus()
	case "esc", "q":
		s.mode = modeList
		s.active = nil
	}
	return s, nil
}

func (s *QnAScreen) handleComposeKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.mode = modeList
		s.titleInput.Blur()
		s.bodyInput.Blur()
		return s, nil
	case "tab", "shift+tab":
		s.focusBody = !s.focusBody
		if s.focusBody {
			s.titleInput.Blur()
			return s, s.bodyInput.Focus()
		}
		s.bodyInput.Blur()
		return s, s.titleInput.Focus()
	case "ctrl+a":
		s.anonymous = !s.anonymous
		return s, nil
	case "enter":
		title := strings.TrimSpace(s.titleInput.Value())
		if title == "" {
			s.flash = "A question needs a title"
			return s, nil
		}
		in := api.ThreadInput{
			Title:       title,
			Description: strings.TrimSpace(s.bodyInput.Value()),
			Anonymous:   s.anonymous,
		}
		s.loading = true
		s.titleInput.Blur()
		s.bodyInput.Blur()
		return s, func() tea.Msg {
			_, err := s.client.PostThread(context.Background(), in)
			return postedMsg{Err: err}
		}
	}

	var cmd tea.Cmd
	if s.focusBody {
		s.bodyInput, cmd = s.bodyInput.Update(msg)
	} else {
		s.titleInput, cmd = s.titleInput.Update(msg)
	}
	return s, cmd
}

func (s *QnAScreen) handleReplyKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.mode = modeThread
		s.replyInput.Blur()
		return s, nil
	case "enter":
		content := strings.TrimSpace(s.replyInput.Value())
		if content == "" {
			s.flash = "A reply needs some text"
			return s, nil
		}
		threadID := s.active.ID
		s.loading = true
		s.replyInput.Blur()
		return s, func() tea.Msg {
			return postedMsg{Err: s.client.PostReply(context.Background(), threadID, content)}
		}
	}

	var cmd tea.Cmd
	s.replyInput, cmd = s.replyInput.Update(msg)
	return s, cmd
}
