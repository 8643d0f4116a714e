package clubdetail

import "github.com/clubcompass/clubcompass/internal/api"

// clubLoadedMsg is sent when the club record fetch settles.
type clubLoadedMsg struct {
	Club       *api.Club
	Bookmarked bool
	Err        error
}

// bookmarkToggledMsg is sent when an add/remove bookmark call settles.
type bookmarkToggledMsg struct {
	Bookmarked bool
	Err        error
}
