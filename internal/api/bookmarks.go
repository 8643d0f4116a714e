package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// bookmarkInput is the payload for AddBookmark.
type bookmarkInput struct {
	ClubID string `json:"club_id"`
}

// Bookmarks returns the signed-in user's bookmarked clubs.
func (c *Client) Bookmarks(ctx context.Context) ([]Club, error) {
	var clubs []Club
	if err := c.do(ctx, http.MethodGet, "/bookmarks", nil, &clubs); err != nil {
		return nil, err
	}
	return clubs, nil
}

// AddBookmark bookmarks a club for the signed-in user.
func (c *Client) AddBookmark(ctx context.Context, clubID string) error {
	return c.do(ctx, http.MethodPost, "/bookmarks", bookmarkInput{ClubID: clubID}, nil)
}

// RemoveBookmark deletes a bookmark by club id.
func (c *Client) RemoveBookmark(ctx context.Context, clubID string) error {
	path := fmt.Sprintf("/bookmarks/%s", url.PathEscape(clubID))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
