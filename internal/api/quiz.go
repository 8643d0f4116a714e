package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/clubcompass/clubcompass/internal/quiz"
)

// submitInput is the scoring request payload: the complete ordered
// answer ledger.
type submitInput struct {
	Answers []quiz.Answer `json:"answers"`
}

// LoadCatalog fetches the quiz question list. It implements
// quiz.CatalogLoader: any network or decode failure, and an empty
// question list, surface as *quiz.LoadError.
func (c *Client) LoadCatalog(ctx context.Context) (quiz.Catalog, error) {
	var payload struct {
		Questions quiz.Catalog `json:"questions"`
	}
	if err := c.do(ctx, http.MethodGet, "/quiz/questions", nil, &payload); err != nil {
		return nil, &quiz.LoadError{Err: err}
	}
	if len(payload.Questions) == 0 {
		return nil, &quiz.LoadError{Err: fmt.Errorf("backend returned no questions")}
	}
	return payload.Questions, nil
}

// Score submits the completed answer ledger and returns the personality
// classification with ranked recommendations. It implements quiz.Scorer:
// failures, including a response that does not match the expected shape,
// surface as *quiz.SubmissionError.
func (c *Client) Score(ctx context.Context, answers []quiz.Answer) (*quiz.Result, error) {
	raw, err := c.doRaw(ctx, http.MethodPost, "/quiz/submit", submitInput{Answers: answers})
	if err != nil {
		return nil, &quiz.SubmissionError{Err: err}
	}

	if err := validateResultPayload(raw); err != nil {
		return nil, &quiz.SubmissionError{Err: err}
	}

	var result quiz.Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &quiz.SubmissionError{Err: fmt.Errorf("decode result: %w", err)}
	}
	return &result, nil
}

// LastResult fetches the most recently stored quiz result, or nil when
// the user has never completed the quiz.
func (c *Client) LastResult(ctx context.Context) (*quiz.Result, error) {
	raw, err := c.doRaw(ctx, http.MethodGet, "/quiz/result", nil)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var result quiz.Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decode stored result: %w", err)
	}
	return &result, nil
}
