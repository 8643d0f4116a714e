package clubs

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/clubcompass/clubcompass/internal/api"
	"github.com/clubcompass/clubcompass/internal/router"
	"github.com/clubcompass/clubcompass/internal/screen"
	"github.com/clubcompass/clubcompass/internal/screens/clubdetail"
	"github.com/clubcompass/clubcompass/internal/ui/components"
	"github.com/clubcompass/clubcompass/internal/ui/layout"
)

// ClubsScreen is the browsable club catalog: tab cycles through domain
// filters, "/" opens a free-text search over names, descriptions and
// tags. Filtering by domain refetches; search narrows locally.
type ClubsScreen struct {
	client *api.Client

	clubs        []api.Club
	filtered     []api.Club
	domainIdx    int // 0 = all domains, otherwise api.Domains[domainIdx-1]
	cursor       int
	scrollOffset int

	search    components.TextInput
	searching bool
	loading   bool
	errMsg    string
}

var _ screen.Screen = (*ClubsScreen)(nil)
var _ screen.KeyHintProvider = (*ClubsScreen)(nil)

// New creates a ClubsScreen showing every domain.
func New(client *api.Client) *ClubsScreen {
	return &ClubsScreen{
		client:  client,
		search:  components.NewTextInput("Search", "name, tag...", 40),
		loading: true,
	}
}

func (s *ClubsScreen) Init() tea.Cmd {
	return s.load()
}

func (s *ClubsScreen) Title() string {
	return "Browse Clubs"
}

func (s *ClubsScreen) KeyHints() []layout.KeyHint {
	if s.searching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Cancel search"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Domain"},
		{Key: "/", Description: "Search"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

// domain returns the active domain filter, "" for all.
func (s *ClubsScreen) domain() string {
	if s.domainIdx == 0 {
		return ""
	}
	return api.Domains[s.domainIdx-1]
}

func (s *ClubsScreen) load() tea.Cmd {
	domain := s.domain()
	return func() tea.Msg {
		clubs, err := s.client.Clubs(context.Background(), domain)
		return clubsLoadedMsg{Clubs: clubs, Err: err}
	}
}

func (s *ClubsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case clubsLoadedMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.clubs = msg.Clubs
		s.applyFilter()
		return s, nil

	case tea.KeyMsg:
		if s.searching {
			return s.handleSearchKey(msg)
		}
		return s.handleListKey(msg)
	}
	return s, nil
}

func (s *ClubsScreen) handleSearchKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		s.searching = false
		s.search.Blur()
		return s, nil
	case "esc":
		s.searching = false
		s.search.Blur()
		s.search.Model.SetValue("")
		s.applyFilter()
		return s, nil
	}

	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	s.applyFilter()
	return s, cmd
}

func (s *ClubsScreen) handleListKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.filtered)-1 {
			s.cursor++
		}
	case "tab":
		s.domainIdx = (s.domainIdx + 1) % (len(api.Domains) + 1)
		s.cursor = 0
		s.scrollOffset = 0
		s.loading = true
		return s, s.load()
	case "shift+tab":
		s.domainIdx = (s.domainIdx + len(api.Domains)) % (len(api.Domains) + 1)
		s.cursor = 0
		s.scrollOffset = 0
		s.loading = true
		return s, s.load()
	case "/":
		s.searching = true
		return s, s.search.Focus()
	case "enter":
		if s.cursor < len(s.filtered) {
			detail := clubdetail.New(s.client, s.filtered[s.cursor].ID)
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: detail}
			}
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
	return s, nil
}

// applyFilter narrows the fetched list by the search text.
func (s *ClubsScreen) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(s.search.Value()))
	if query == "" {
		s.filtered = s.clubs
	} else {
		s.filtered = nil
		for _, club := range s.clubs {
			if matchesQuery(club, query) {
				s.filtered = append(s.filtered, club)
			}
		}
	}
	if s.cursor >= len(s.filtered) {
		s.cursor = 0
		s.scrollOffset = 0
	}
}

func matchesQuery(club api.Club, query string) bool {
	if strings.Contains(strings.ToLower(club.Name), query) ||
		strings.Contains(strings.ToLower(club.Description), query) {
		return true
	}
	for _, tag := range club.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	for _, skill := range club.Skills {
		if strings.Contains(strings.ToLower(skill), query) {
			return true
		}
	}
	return false
}

// adjustScroll keeps the cursor inside the viewport.
func (s *ClubsScreen) adjustScroll(visible int) {
	if visible <= 0 {
		return
	}
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+visible {
		s.scrollOffset = s.cursor - visible + 1
	}
}
