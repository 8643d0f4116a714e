package clubs

import "github.com/clubcompass/clubcompass/internal/api"

// clubsLoadedMsg is sent when a catalog fetch settles.
type clubsLoadedMsg struct {
	Clubs []api.Club
	Err   error
}
