package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/talentpipe/talentpipe/pkg/models"
)

// JobFilters narrows the jobs listing.
type JobFilters struct {
	Page            int
	PerPage         int
	Search          string
	Status          string
	EmploymentType  string
	ExperienceLevel string
	Company         string
}

func (f JobFilters) values() url.Values {
	params := url.Values{}
	if f.Page > 0 {
		params.Set("page", strconv.Itoa(f.Page))
	}
	if f.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(f.PerPage))
	}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if f.Status != "" {
		params.Set("status", f.Status)
	}
	if f.EmploymentType != "" {
		params.Set("employment_type", f.EmploymentType)
	}
	if f.ExperienceLevel != "" {
		params.Set("experience_level", f.ExperienceLevel)
	}
	if f.Company != "" {
		params.Set("company", f.Company)
	}
	return params
}

// ListJobs fetches a page of job postings.
func (c *Client) ListJobs(ctx context.Context, filters JobFilters) (*models.JobsPage, error) {
	out := &models.JobsPage{}
	if err := c.get(ctx, "/api/jobs", filters.values(), out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetJob fetches a single job by id.
func (c *Client) GetJob(ctx context.Context, id int) (*models.Job, error) {
	out := &models.Job{}
	if err := c.get(ctx, fmt.Sprintf("/api/jobs/%d", id), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateJob creates a job posting and returns the stored record.
func (c *Client) CreateJob(ctx context.Context, payload *models.JobPayload) (*models.Job, error) {
	var out struct {
		Job *models.Job `json:"job"`
	}
	if err := c.post(ctx, "/api/jobs", payload, &out); err != nil {
		return nil, err
	}
	return out.Job, nil
}

// UpdateJob updates a job posting and returns the stored record.
func (c *Client) UpdateJob(ctx context.Context, id int, payload *models.JobPayload) (*models.Job, error) {
	var out struct {
		Job *models.Job `json:"job"`
	}
	if err := c.put(ctx, fmt.Sprintf("/api/jobs/%d", id), payload, &out); err != nil {
		return nil, err
	}
	return out.Job, nil
}

// DeleteJob removes a job posting.
func (c *Client) DeleteJob(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/jobs/%d", id))
}

// GetJobOptions fetches the enumerations the backend accepts for job fields.
func (c *Client) GetJobOptions(ctx context.Context) (*models.JobOptions, error) {
	out := &models.JobOptions{}
	if err := c.get(ctx, "/api/jobs/options", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}
