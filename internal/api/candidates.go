package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/talentpipe/talentpipe/pkg/models"
)

// ListCandidates fetches every candidate record.
func (c *Client) ListCandidates(ctx context.Context) ([]*models.Candidate, error) {
	var out []*models.Candidate
	if err := c.get(ctx, "/api/candidates", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchCandidates runs a server-side search. The status, when given, must
// already be in the backend's vocabulary.
func (c *Client) SearchCandidates(ctx context.Context, query, status string) ([]*models.Candidate, error) {
	params := url.Values{}
	if q := strings.TrimSpace(query); q != "" {
		params.Set("q", q)
	}
	if status != "" {
		params.Set("status", status)
	}
	var out []*models.Candidate
	if err := c.get(ctx, "/api/candidates/search", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCandidate fetches a single candidate by id.
func (c *Client) GetCandidate(ctx context.Context, id int) (*models.Candidate, error) {
	out := &models.Candidate{}
	if err := c.get(ctx, fmt.Sprintf("/api/candidates/%d", id), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCandidate creates a candidate and returns the stored record.
func (c *Client) CreateCandidate(ctx context.Context, payload *models.CandidatePayload) (*models.Candidate, error) {
	out := &models.Candidate{}
	if err := c.post(ctx, "/api/candidates", payload, out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateCandidate updates a candidate and returns the stored record.
func (c *Client) UpdateCandidate(ctx context.Context, id int, payload *models.CandidatePayload) (*models.Candidate, error) {
	out := &models.Candidate{}
	if err := c.put(ctx, fmt.Sprintf("/api/candidates/%d", id), payload, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteCandidate removes a candidate.
func (c *Client) DeleteCandidate(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/candidates/%d", id))
}
