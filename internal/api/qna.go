package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Reply is one answer on a discussion thread.
type Reply struct {
	ID           string    `json:"id"`
	Content      string    `json:"content"`
	UserID       string    `json:"user_id"`
	UserName     string    `json:"user_name"`
	UserRole     string    `json:"user_role"`
	UserVerified bool      `json:"user_verified"`
	CreatedAt    time.Time `json:"created_at"`
}

// Thread is one peer question on the Q&A board with its replies.
type Thread struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	UserID      string  `json:"user_id"`
	UserName    string  `json:"user_name"`
	UserRole    string  `json:"user_role"`
	Anonymous   bool    `json:"is_anonymous"`
	Replies     []Reply `json:"replies"`
	ReplyCount  int     `json:"reply_count"`
	CreatedAt   string  `json:"created_at"`
}

// Author returns the display name of the thread's poster, honoring
// anonymity.
func (t Thread) Author() string {
	if t.Anonymous {
		return "Anonymous"
	}
	return t.UserName
}

// ThreadInput is the payload for posting a new question.
type ThreadInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Anonymous   bool   `json:"is_anonymous"`
}

// replyInput is the payload for posting a reply.
type replyInput struct {
	Content string `json:"content"`
}

// Threads lists the Q&A board, newest first as the backend orders it.
func (c *Client) Threads(ctx context.Context) ([]Thread, error) {
	var threads []Thread
	if err := c.do(ctx, http.MethodGet, "/questions", nil, &threads); err != nil {
		return nil, err
	}
	return threads, nil
}

// Thread fetches one question with its full reply list.
func (c *Client) Thread(ctx context.Context, id string) (*Thread, error) {
	var t Thread
	path := fmt.Sprintf("/questions/%s", url.PathEscape(id))
	if err := c.do(ctx, http.MethodGet, path, nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// PostThread publishes a new question to the board.
func (c *Client) PostThread(ctx context.Context, in ThreadInput) (*Thread, error) {
	var t Thread
	if err := c.do(ctx, http.MethodPost, "/questions", in, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// PostReply adds a reply to a thread.
func (c *Client) PostReply(ctx context.Context, threadID, content string) error {
	path := fmt.Sprintf("/questions/%s/replies", url.PathEscape(threadID))
	return c.do(ctx, http.MethodPost, path, replyInput{Content: content}, nil)
}

// DeleteThread removes the signed-in user's own question.
func (c *Client) DeleteThread(ctx context.Context, threadID string) error {
	path := fmt.Sprintf("/questions/%s", url.PathEscape(threadID))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
