package result

import quizcore "github.com/clubcompass/clubcompass/internal/quiz"

// restoredMsg is sent when the last-result lookup settles. A nil Result
// with a nil Err means no earlier result exists anywhere.
type restoredMsg struct {
	Result *quizcore.Result
	Err    error
}
