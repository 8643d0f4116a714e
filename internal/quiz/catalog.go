package quiz

import "context"

// Question is a single quiz question with its ordered answer options.
// Questions are immutable once loaded.
type Question struct {
	ID      int      `json:"id"`
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
}

// HasOption reports whether choice is one of the question's options.
func (q Question) HasOption(choice string) bool {
	for _, opt := range q.Options {
		if opt == choice {
			return true
		}
	}
	return false
}

// Catalog is the ordered, immutable set of questions for one session.
type Catalog []Question

// CatalogLoader fetches the question catalog once per session start.
type CatalogLoader interface {
	// LoadCatalog returns the ordered question list. An empty or
	// malformed response is a *LoadError.
	LoadCatalog(ctx context.Context) (Catalog, error)
}

// Scorer maps a completed answer ledger to a personality classification
// and ranked club recommendations. The scoring algorithm itself lives
// behind this boundary; the client only supplies input and consumes output.
type Scorer interface {
	Score(ctx context.Context, answers []Answer) (*Result, error)
}
