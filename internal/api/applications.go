package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/talentpipe/talentpipe/pkg/models"
)

// ApplicationFilters narrows the applications listing.
type ApplicationFilters struct {
	Page        int
	PerPage     int
	Status      string
	Stage       int
	JobID       int
	CandidateID int
}

func (f ApplicationFilters) values() url.Values {
	params := url.Values{}
	if f.Page > 0 {
		params.Set("page", strconv.Itoa(f.Page))
	}
	if f.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(f.PerPage))
	}
	if f.Status != "" {
		params.Set("status", f.Status)
	}
	if f.Stage > 0 {
		params.Set("stage", strconv.Itoa(f.Stage))
	}
	if f.JobID > 0 {
		params.Set("job_id", strconv.Itoa(f.JobID))
	}
	if f.CandidateID > 0 {
		params.Set("candidate_id", strconv.Itoa(f.CandidateID))
	}
	return params
}

// applicationEnvelope wraps single-application write responses.
type applicationEnvelope struct {
	Application *models.Application `json:"application"`
}

// ListApplications fetches a page of applications.
func (c *Client) ListApplications(ctx context.Context, filters ApplicationFilters) (*models.ApplicationsPage, error) {
	out := &models.ApplicationsPage{}
	if err := c.get(ctx, "/api/applications", filters.values(), out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetApplication fetches one application with its history and comments.
func (c *Client) GetApplication(ctx context.Context, id int) (*models.Application, error) {
	out := &models.Application{}
	if err := c.get(ctx, fmt.Sprintf("/api/applications/%d", id), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateApplication links a candidate to a job.
func (c *Client) CreateApplication(ctx context.Context, payload *models.ApplicationPayload) (*models.Application, error) {
	var out applicationEnvelope
	if err := c.post(ctx, "/api/applications", payload, &out); err != nil {
		return nil, err
	}
	return out.Application, nil
}

// UpdateApplication updates status/notes of an application.
func (c *Client) UpdateApplication(ctx context.Context, id int, payload *models.ApplicationPayload) (*models.Application, error) {
	var out applicationEnvelope
	if err := c.put(ctx, fmt.Sprintf("/api/applications/%d", id), payload, &out); err != nil {
		return nil, err
	}
	return out.Application, nil
}

// DeleteApplication removes an application.
func (c *Client) DeleteApplication(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/applications/%d", id))
}

// MoveStage moves one application to another pipeline stage. The backend
// appends the history record.
func (c *Client) MoveStage(ctx context.Context, id int, move *models.StageMove) (*models.Application, error) {
	var out applicationEnvelope
	if err := c.put(ctx, fmt.Sprintf("/api/applications/%d/stage", id), move, &out); err != nil {
		return nil, err
	}
	return out.Application, nil
}

// BatchMoveStage moves several applications to the same target stage.
func (c *Client) BatchMoveStage(ctx context.Context, ids []int, targetStage int, notes string) (int, error) {
	body := map[string]interface{}{
		"application_ids": ids,
		"target_stage":    targetStage,
	}
	if notes != "" {
		body["notes"] = notes
	}
	var out struct {
		UpdatedCount int    `json:"updated_count"`
		Message      string `json:"message"`
	}
	if err := c.put(ctx, "/api/applications/batch/stage", body, &out); err != nil {
		return 0, err
	}
	return out.UpdatedCount, nil
}

// ListComments fetches the comment thread of an application.
func (c *Client) ListComments(ctx context.Context, applicationID int) ([]*models.Comment, error) {
	var out struct {
		Comments []*models.Comment `json:"comments"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/applications/%d/comments", applicationID), nil, &out); err != nil {
		return nil, err
	}
	return out.Comments, nil
}

// AddComment appends a comment to an application's thread.
func (c *Client) AddComment(ctx context.Context, applicationID int, text string, internal bool) (*models.Comment, error) {
	body := map[string]interface{}{
		"comment":     text,
		"is_internal": internal,
	}
	var out struct {
		Comment *models.Comment `json:"comment"`
	}
	if err := c.post(ctx, fmt.Sprintf("/api/applications/%d/comments", applicationID), body, &out); err != nil {
		return nil, err
	}
	return out.Comment, nil
}

// GetPipeline fetches the kanban grouping, optionally scoped to one job.
func (c *Client) GetPipeline(ctx context.Context, jobID int) (*models.Pipeline, error) {
	params := url.Values{}
	if jobID > 0 {
		params.Set("job_id", strconv.Itoa(jobID))
	}
	out := &models.Pipeline{}
	if err := c.get(ctx, "/api/pipeline", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPipelineStats fetches pipeline aggregates, optionally scoped to one job.
func (c *Client) GetPipelineStats(ctx context.Context, jobID int) (*models.PipelineStats, error) {
	params := url.Values{}
	if jobID > 0 {
		params.Set("job_id", strconv.Itoa(jobID))
	}
	out := &models.PipelineStats{}
	if err := c.get(ctx, "/api/pipeline/stats", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetStages fetches the active recruitment stages in order.
func (c *Client) GetStages(ctx context.Context) ([]*models.RecruitmentStage, error) {
	var out struct {
		Stages []*models.RecruitmentStage `json:"stages"`
	}
	if err := c.get(ctx, "/api/recruitment-stages", nil, &out); err != nil {
		return nil, err
	}
	return out.Stages, nil
}
