package compare

import "github.com/clubcompass/clubcompass/internal/api"

// clubsLoadedMsg is sent when the catalog fetch settles.
type clubsLoadedMsg struct {
	Clubs []api.Club
	Err   error
}

// comparedMsg is sent when the comparison call settles.
type comparedMsg struct {
	Clubs []api.Club
	Err   error
}
