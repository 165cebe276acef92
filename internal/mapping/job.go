package mapping

import (
	"strconv"
	"strings"

	"github.com/talentpipe/talentpipe/pkg/models"
)

// EmploymentTypeFromBackend normalizes a raw employment type. Unknown values
// default to full-time, matching the backend's own create default.
func EmploymentTypeFromBackend(raw string) models.EmploymentType {
	switch models.EmploymentType(strings.ToLower(raw)) {
	case models.FullTime, models.PartTime, models.Contract, models.Freelance:
		return models.EmploymentType(strings.ToLower(raw))
	default:
		return models.FullTime
	}
}

// ExperienceLevelFromBackend normalizes a raw experience level. Unknown
// values default to mid-level.
func ExperienceLevelFromBackend(raw string) models.ExperienceLevel {
	switch models.ExperienceLevel(strings.ToLower(raw)) {
	case models.EntryLevel, models.MidLevel, models.SeniorLevel, models.LeadLevel:
		return models.ExperienceLevel(strings.ToLower(raw))
	default:
		return models.MidLevel
	}
}

// JobStatusFromBackend normalizes a raw job status. Unknown values default
// to draft so a half-formed record never reads as published.
func JobStatusFromBackend(raw string) models.JobStatus {
	switch models.JobStatus(strings.ToLower(raw)) {
	case models.JobActive, models.JobPaused, models.JobClosed, models.JobDraft:
		return models.JobStatus(strings.ToLower(raw))
	default:
		return models.JobDraft
	}
}

// JobToView converts a backend job record into the display shape.
func JobToView(j *models.Job) *models.JobView {
	return &models.JobView{
		ID:              strconv.Itoa(j.ID),
		Title:           j.Title,
		Company:         j.Company,
		Location:        j.Location,
		Description:     j.Description,
		Requirements:    j.Requirements,
		Benefits:        j.Benefits,
		SalaryMin:       j.SalaryMin,
		SalaryMax:       j.SalaryMax,
		EmploymentType:  EmploymentTypeFromBackend(j.EmploymentType),
		ExperienceLevel: ExperienceLevelFromBackend(j.ExperienceLevel),
		Status:          JobStatusFromBackend(j.Status),
		Deadline:        j.ApplicationDeadline,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}
}

// JobToPayload converts a view model into the backend's create/update
// payload, re-normalizing the enumerated fields on the way out.
func JobToPayload(v *models.JobView) *models.JobPayload {
	return &models.JobPayload{
		Title:               v.Title,
		Company:             v.Company,
		Location:            v.Location,
		Description:         v.Description,
		Requirements:        v.Requirements,
		Benefits:            v.Benefits,
		SalaryMin:           v.SalaryMin,
		SalaryMax:           v.SalaryMax,
		EmploymentType:      string(EmploymentTypeFromBackend(string(v.EmploymentType))),
		ExperienceLevel:     string(ExperienceLevelFromBackend(string(v.ExperienceLevel))),
		Status:              string(JobStatusFromBackend(string(v.Status))),
		ApplicationDeadline: v.Deadline,
	}
}

// JobsToView converts a backend listing in one pass.
func JobsToView(records []*models.Job) []*models.JobView {
	views := make([]*models.JobView, 0, len(records))
	for _, j := range records {
		views = append(views, JobToView(j))
	}
	return views
}
