// Package mapping converts between the backend's wire records and the
// display-oriented view models. It is the single translation point: nothing
// outside this package interprets raw status strings or split names. All
// functions are pure and total; malformed input falls back to documented
// defaults instead of failing.
package mapping

import (
	"strconv"
	"strings"

	"github.com/talentpipe/talentpipe/pkg/models"
)

// FallbackPosition is shown when no keyword in the summary matches.
const FallbackPosition = "Candidate"

// positionEntry maps summary keywords to a display position. Order is
// significant: a summary can match several entries and the first one wins.
type positionEntry struct {
	keywords []string
	title    string
}

var positionTable = []positionEntry{
	{[]string{"desenvolvedor", "developer", "dev"}, "Developer"},
	{[]string{"designer", "design", "ux"}, "Designer"},
	{[]string{"analista", "analyst"}, "Analyst"},
	{[]string{"gerente", "manager"}, "Manager"},
	{[]string{"coordenador", "coordinator"}, "Coordinator"},
	{[]string{"product manager", "pm"}, "Product Manager"},
	{[]string{"frontend", "front-end"}, "Frontend Developer"},
	{[]string{"backend", "back-end"}, "Backend Developer"},
	{[]string{"fullstack", "full-stack"}, "Fullstack Developer"},
	{[]string{"junior"}, "Junior Developer"},
}

// InferPosition derives a display position from the free-text summary by
// ordered keyword matching, first match wins.
func InferPosition(summary string) string {
	if summary == "" {
		return FallbackPosition
	}
	lower := strings.ToLower(summary)
	for _, entry := range positionTable {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.title
			}
		}
	}
	return FallbackPosition
}

// CandidateStatusFromBackend maps a raw backend status onto the display
// enumeration. Unknown values default to pending.
func CandidateStatusFromBackend(status string) models.CandidateStatus {
	switch strings.ToLower(status) {
	case "active":
		return models.CandidatePending
	case "inactive":
		return models.CandidateRejected
	case "interviewed":
		return models.CandidateInterviewed
	case "approved", "hired":
		return models.CandidateApproved
	default:
		return models.CandidatePending
	}
}

// CandidateStatusToBackend is the inverse map. Unknown values default to
// the backend's active.
func CandidateStatusToBackend(status models.CandidateStatus) string {
	switch status {
	case models.CandidatePending:
		return "active"
	case models.CandidateRejected:
		return "inactive"
	case models.CandidateInterviewed:
		return "interviewed"
	case models.CandidateApproved:
		return "approved"
	default:
		return "active"
	}
}

// SplitName splits a display name into the backend's first/last pair: first
// token, then everything else.
func SplitName(name string) (first, last string) {
	parts := strings.Fields(strings.TrimSpace(name))
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// JoinName joins the backend's split pair for display.
func JoinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

// CandidateToView converts a backend record into the display shape.
func CandidateToView(c *models.Candidate) *models.CandidateView {
	name := JoinName(c.FirstName, c.LastName)
	if name == "" {
		name = "Unnamed candidate"
	}
	return &models.CandidateView{
		ID:        strconv.Itoa(c.ID),
		Name:      name,
		Email:     c.Email,
		Phone:     c.Phone,
		Position:  InferPosition(c.Summary),
		Status:    CandidateStatusFromBackend(c.Status),
		Address:   c.Address,
		Summary:   c.Summary,
		LinkedIn:  c.LinkedInURL,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CandidateToPayload converts a view model into the backend's create/update
// payload.
func CandidateToPayload(v *models.CandidateView) *models.CandidatePayload {
	first, last := SplitName(v.Name)
	return &models.CandidatePayload{
		FirstName:   first,
		LastName:    last,
		Email:       v.Email,
		Phone:       v.Phone,
		Address:     v.Address,
		Summary:     v.Summary,
		LinkedInURL: v.LinkedIn,
		Status:      CandidateStatusToBackend(v.Status),
	}
}

// CandidatesToView converts a backend listing in one pass.
func CandidatesToView(records []*models.Candidate) []*models.CandidateView {
	views := make([]*models.CandidateView, 0, len(records))
	for _, c := range records {
		views = append(views, CandidateToView(c))
	}
	return views
}
