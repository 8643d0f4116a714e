package login

import "github.com/clubcompass/clubcompass/internal/api"

// authDoneMsg is sent when a login or signup attempt settles.
type authDoneMsg struct {
	User api.User
	Err  error
}
