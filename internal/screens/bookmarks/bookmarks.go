package bookmarks

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/clubcompass/clubcompass/internal/api"
	"github.com/clubcompass/clubcompass/internal/logging"
	"github.com/clubcompass/clubcompass/internal/router"
	"github.com/clubcompass/clubcompass/internal/screen"
	"github.com/clubcompass/clubcompass/internal/screens/clubdetail"
	"github.com/clubcompass/clubcompass/internal/ui/layout"
	"github.com/clubcompass/clubcompass/internal/ui/theme"
)

// bookmarksLoadedMsg is sent when the bookmark list fetch settles.
type bookmarksLoadedMsg struct {
	Clubs []api.Club
	Err   error
}

// removedMsg is sent when a bookmark removal settles.
type removedMsg struct {
	ClubID string
	Err    error
}

// BookmarksScreen lists the user's saved clubs.
type BookmarksScreen struct {
	client *api.Client

	clubs   []api.Club
	cursor  int
	loading bool
	errMsg  string
}

var _ screen.Screen = (*BookmarksScreen)(nil)
var _ screen.KeyHintProvider = (*BookmarksScreen)(nil)

// New creates a BookmarksScreen; the list is fetched on Init.
func New(client *api.Client) *BookmarksScreen {
	return &BookmarksScreen{client: client, loading: true}
}

func (s *BookmarksScreen) Init() tea.Cmd {
	return s.load()
}

func (s *BookmarksScreen) Title() string {
	return "My Bookmarks"
}

func (s *BookmarksScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "X", Description: "Remove"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BookmarksScreen) load() tea.Cmd {
	return func() tea.Msg {
		clubs, err := s.client.Bookmarks(context.Background())
		return bookmarksLoadedMsg{Clubs: clubs, Err: err}
	}
}

func (s *BookmarksScreen) remove(clubID string) tea.Cmd {
	return func() tea.Msg {
		err := s.client.RemoveBookmark(context.Background(), clubID)
		return removedMsg{ClubID: clubID, Err: err}
	}
}

func (s *BookmarksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case bookmarksLoadedMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.clubs = msg.Clubs
		if s.cursor >= len(s.clubs) {
			s.cursor = 0
		}
		return s, nil

	case removedMsg:
		if msg.Err != nil {
			logging.Log.WithError(msg.Err).Error("remove bookmark failed")
			return s, nil
		}
		kept := s.clubs[:0]
		for _, club := range s.clubs {
			if club.ID != msg.ClubID {
				kept = append(kept, club)
			}
		}
		s.clubs = kept
		if s.cursor >= len(s.clubs) && s.cursor > 0 {
			s.cursor--
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.clubs)-1 {
				s.cursor++
			}
		case "enter":
			if s.cursor < len(s.clubs) {
				detail := clubdetail.New(s.client, s.clubs[s.cursor].ID)
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: detail}
				}
			}
		case "x", "delete":
			if s.cursor < len(s.clubs) {
				return s, s.remove(s.clubs[s.cursor].ID)
			}
		case "r":
			if s.errMsg != "" {
				s.errMsg = ""
				s.loading = true
				return s, s.load()
			}
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *BookmarksScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Could not load bookmarks: %s\n\n  Press R to retry.", s.errMsg))
	case s.loading:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Loading bookmarks...")
	case len(s.clubs) == 0:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  No bookmarks yet.\n  Browse clubs and press B to save one.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, club := range s.clubs {
		cursor := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.cursor {
			cursor = "▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}

		statusColor, ok := theme.StatusColors[club.RecruitmentStatus]
		if !ok {
			statusColor = theme.TextDim
		}

		line := fmt.Sprintf("  %s★ %s  %s  %s",
			cursor,
			style.Render(fmt.Sprintf("%-30s", club.Name)),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%-10s", club.Domain)),
			lipgloss.NewStyle().Foreground(statusColor).Render(club.RecruitmentStatus),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
