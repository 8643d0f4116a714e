package qna

import "github.com/clubcompass/clubcompass/internal/api"

// threadsLoadedMsg is sent when the board listing settles.
type threadsLoadedMsg struct {
	Threads []api.Thread
	Err     error
}

// threadLoadedMsg is sent when a single thread fetch settles.
type threadLoadedMsg struct {
	Thread *api.Thread
	Err    error
}

// postedMsg is sent when posting a question or reply settles. The board
// is refreshed afterwards.
type postedMsg struct {
	Err error
}
