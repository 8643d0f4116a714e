package quiz

// catalogLoadedMsg is sent when the question catalog fetch settles.
type catalogLoadedMsg struct {
	Err error
}

// scoredMsg is sent when a submission attempt settles, successfully or not.
type scoredMsg struct {
	Err error
}
