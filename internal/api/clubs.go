package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Club domains as the backend defines them.
var Domains = []string{"Technical", "Cultural", "Sports", "Management", "Literary", "Social"}

// Club is one student club in the catalog.
type Club struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Domain            string   `json:"domain"`
	Skills            []string `json:"skills"`
	TimeCommitment    string   `json:"time_commitment"`
	RecruitmentStatus string   `json:"recruitment_status"` // Open, Closed, Upcoming
	Contact           string   `json:"contact"`
	ImageURL          string   `json:"image_url"`
	Tags              []string `json:"tags"`
	MemberCount       int      `json:"member_count"`
}

// Clubs lists the club catalog, optionally filtered to one domain.
func (c *Client) Clubs(ctx context.Context, domain string) ([]Club, error) {
	path := "/clubs"
	if domain != "" {
		path += "?domain=" + url.QueryEscape(domain)
	}
	var clubs []Club
	if err := c.do(ctx, http.MethodGet, path, nil, &clubs); err != nil {
		return nil, err
	}
	return clubs, nil
}

// Club fetches a single club by id.
func (c *Client) Club(ctx context.Context, id string) (*Club, error) {
	var club Club
	path := fmt.Sprintf("/clubs/%s", url.PathEscape(id))
	if err := c.do(ctx, http.MethodGet, path, nil, &club); err != nil {
		return nil, err
	}
	return &club, nil
}

// CompareClubs returns full club records for a side-by-side comparison
// of the given club ids, in request order.
func (c *Client) CompareClubs(ctx context.Context, ids []string) ([]Club, error) {
	var clubs []Club
	if err := c.do(ctx, http.MethodPost, "/clubs/compare", ids, &clubs); err != nil {
		return nil, err
	}
	return clubs, nil
}
