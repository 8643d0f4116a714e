package clubdetail

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/clubcompass/clubcompass/internal/api"
	"github.com/clubcompass/clubcompass/internal/logging"
	"github.com/clubcompass/clubcompass/internal/router"
	"github.com/clubcompass/clubcompass/internal/screen"
	"github.com/clubcompass/clubcompass/internal/ui/layout"
)

// ClubDetailScreen shows one club's full record with a bookmark toggle.
type ClubDetailScreen struct {
	client *api.Client
	clubID string

	club       *api.Club
	bookmarked bool
	toggling   bool
	errMsg     string
}

var _ screen.Screen = (*ClubDetailScreen)(nil)
var _ screen.KeyHintProvider = (*ClubDetailScreen)(nil)

// New creates a ClubDetailScreen for the given club id. The record is
// fetched on Init.
func New(client *api.Client, clubID string) *ClubDetailScreen {
	return &ClubDetailScreen{
		client: client,
		clubID: clubID,
	}
}

func (s *ClubDetailScreen) Init() tea.Cmd {
	return s.load()
}

func (s *ClubDetailScreen) Title() string {
	if s.club != nil {
		return s.club.Name
	}
	return "Club"
}

func (s *ClubDetailScreen) KeyHints() []layout.KeyHint {
	if s.club == nil {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	bookmark := "Bookmark"
	if s.bookmarked {
		bookmark = "Remove bookmark"
	}
	return []layout.KeyHint{
		{Key: "B", Description: bookmark},
		{Key: "Esc", Description: "Back"},
	}
}

// load fetches the club record and the bookmark list in one command;
// the bookmark list tells us whether this club is already saved.
func (s *ClubDetailScreen) load() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		club, err := s.client.Club(ctx, s.clubID)
		if err != nil {
			return clubLoadedMsg{Err: err}
		}

		bookmarked := false
		if bookmarks, err := s.client.Bookmarks(ctx); err != nil {
			logging.Log.WithError(err).Warn("fetch bookmarks for detail view")
		} else {
			for _, b := range bookmarks {
				if b.ID == s.clubID {
					bookmarked = true
					break
				}
			}
		}

		return clubLoadedMsg{Club: club, Bookmarked: bookmarked}
	}
}

func (s *ClubDetailScreen) toggleBookmark() tea.Cmd {
	adding := !s.bookmarked
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if adding {
			err = s.client.AddBookmark(ctx, s.clubID)
		} else {
			err = s.client.RemoveBookmark(ctx, s.clubID)
		}
		return bookmarkToggledMsg{Bookmarked: adding, Err: err}
	}
}

func (s *ClubDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case clubLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.club = msg.Club
		s.bookmarked = msg.Bookmarked
		return s, nil

	case bookmarkToggledMsg:
		s.toggling = false
		if msg.Err != nil {
			logging.Log.WithError(msg.Err).Error("bookmark toggle failed")
			return s, nil
		}
		s.bookmarked = msg.Bookmarked
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "b":
			if s.club != nil && !s.toggling {
				s.toggling = true
				return s, s.toggleBookmark()
			}
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}
