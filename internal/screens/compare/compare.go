package compare

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/clubcompass/clubcompass/internal/api"
	"github.com/clubcompass/clubcompass/internal/router"
	"github.com/clubcompass/clubcompass/internal/screen"
	"github.com/clubcompass/clubcompass/internal/ui/layout"
)

// maxSelected caps how many clubs fit side by side.
const (
	minSelected = 2
	maxSelected = 3
)

// CompareScreen lets the user pick two or three clubs and see them side
// by side. It has two modes: picking from the catalog, and viewing the
// comparison table.
type CompareScreen struct {
	client *api.Client

	clubs    []api.Club
	selected map[string]bool
	cursor   int

	comparing bool
	compared  []api.Club

	loading bool
	errMsg  string
	flash   string
}

var _ screen.Screen = (*CompareScreen)(nil)
var _ screen.KeyHintProvider = (*CompareScreen)(nil)

// New creates a CompareScreen; the catalog is fetched on Init.
func New(client *api.Client) *CompareScreen {
	return &CompareScreen{
		client:   client,
		selected: make(map[string]bool),
		loading:  true,
	}
}

func (s *CompareScreen) Init() tea.Cmd {
	return s.load()
}

func (s *CompareScreen) Title() string {
	return "Compare Clubs"
}

func (s *CompareScreen) KeyHints() []layout.KeyHint {
	if s.comparing {
		return []layout.KeyHint{{Key: "Esc", Description: "Back to picker"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Space", Description: "Select"},
		{Key: "Enter", Description: "Compare"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CompareScreen) load() tea.Cmd {
	return func() tea.Msg {
		clubs, err := s.client.Clubs(context.Background(), "")
		return clubsLoadedMsg{Clubs: clubs, Err: err}
	}
}

func (s *CompareScreen) compare() tea.Cmd {
	ids := s.selectedIDs()
	return func() tea.Msg {
		clubs, err := s.client.CompareClubs(context.Background(), ids)
		return comparedMsg{Clubs: clubs, Err: err}
	}
}

// selectedIDs returns the chosen ids in catalog order.
func (s *CompareScreen) selectedIDs() []string {
	ids := make([]string, 0, len(s.selected))
	for _, club := range s.clubs {
		if s.selected[club.ID] {
			ids = append(ids, club.ID)
		}
	}
	return ids
}

func (s *CompareScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case clubsLoadedMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.clubs = msg.Clubs
		return s, nil

	case comparedMsg:
		s.loading = false
		if msg.Err != nil {
			s.flash = msg.Err.Error()
			return s, nil
		}
		s.comparing = true
		s.compared = msg.Clubs
		return s, nil

	case tea.KeyMsg:
		if s.comparing {
			switch msg.String() {
			case "esc", "q", "enter":
				s.comparing = false
				s.compared = nil
			}
			return s, nil
		}
		return s.handlePickerKey(msg)
	}
	return s, nil
}

func (s *CompareScreen) handlePickerKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	s.flash = ""

	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.clubs)-1 {
			s.cursor++
		}
	case "space":
		if s.cursor >= len(s.clubs) {
			return s, nil
		}
		id := s.clubs[s.cursor].ID
		if s.selected[id] {
			delete(s.selected, id)
		} else if len(s.selected) < maxSelected {
			s.selected[id] = true
		} else {
			s.flash = "At most three clubs at a time"
		}
	case "enter":
		if len(s.selected) < minSelected {
			s.flash = "Select at least two clubs"
			return s, nil
		}
		s.loading = true
		return s, s.compare()
	case "r":
		if s.errMsg != "" {
			s.errMsg = ""
			s.loading = true
			return s, s.load()
		}
	case "esc", "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}
