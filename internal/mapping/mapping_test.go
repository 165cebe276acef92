package mapping

import (
	"testing"

	"github.com/talentpipe/talentpipe/pkg/models"
)

func TestCandidateStatusFromBackend(t *testing.T) {
	tests := []struct {
		raw  string
		want models.CandidateStatus
	}{
		{"active", models.CandidatePending},
		{"inactive", models.CandidateRejected},
		{"interviewed", models.CandidateInterviewed},
		{"approved", models.CandidateApproved},
		{"hired", models.CandidateApproved},
		{"ACTIVE", models.CandidatePending},
		{"", models.CandidatePending},
		{"something-new", models.CandidatePending},
	}
	for _, tt := range tests {
		if got := CandidateStatusFromBackend(tt.raw); got != tt.want {
			t.Errorf("CandidateStatusFromBackend(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestCandidateStatusRoundTrip(t *testing.T) {
	// Every display status must survive a trip to the backend form and back.
	statuses := []models.CandidateStatus{
		models.CandidatePending,
		models.CandidateInterviewed,
		models.CandidateApproved,
		models.CandidateRejected,
	}
	for _, s := range statuses {
		if got := CandidateStatusFromBackend(CandidateStatusToBackend(s)); got != s {
			t.Errorf("round trip of %q produced %q", s, got)
		}
	}
}

func TestInferPosition(t *testing.T) {
	tests := []struct {
		summary string
		want    string
	}{
		{"Experienced backend developer with Go", "Developer"},
		{"Senior UX researcher", "Designer"},
		{"Analista de dados com SQL", "Analyst"},
		{"Engineering manager, 10 reports", "Manager"},
		{"Coordenador de projetos", "Coordinator"},
		{"", FallbackPosition},
		{"Enthusiastic about agriculture", FallbackPosition},
	}
	for _, tt := range tests {
		if got := InferPosition(tt.summary); got != tt.want {
			t.Errorf("InferPosition(%q) = %q, want %q", tt.summary, got, tt.want)
		}
	}
}

func TestInferPositionOrderWins(t *testing.T) {
	// "frontend developer" matches both the developer entry and the frontend
	// entry; the earlier entry must win.
	if got := InferPosition("frontend developer"); got != "Developer" {
		t.Errorf("got %q, want Developer (earlier table entry)", got)
	}
}

func TestSplitAndJoinName(t *testing.T) {
	tests := []struct {
		name        string
		first, last string
	}{
		{"Ada Lovelace", "Ada", "Lovelace"},
		{"Jean Claude Van Damme", "Jean", "Claude Van Damme"},
		{"Plato", "Plato", ""},
		{"  spaced   out  ", "spaced", "out"},
		{"", "", ""},
	}
	for _, tt := range tests {
		first, last := SplitName(tt.name)
		if first != tt.first || last != tt.last {
			t.Errorf("SplitName(%q) = (%q, %q), want (%q, %q)", tt.name, first, last, tt.first, tt.last)
		}
	}
	if got := JoinName("Ada", "Lovelace"); got != "Ada Lovelace" {
		t.Errorf("JoinName = %q", got)
	}
	if got := JoinName("Plato", ""); got != "Plato" {
		t.Errorf("JoinName with empty last = %q", got)
	}
}

func TestCandidateToViewDefaults(t *testing.T) {
	c := &models.Candidate{ID: 7, Status: "bogus"}
	v := CandidateToView(c)
	if v.ID != "7" {
		t.Errorf("ID = %q", v.ID)
	}
	if v.Name != "Unnamed candidate" {
		t.Errorf("Name = %q", v.Name)
	}
	if v.Status != models.CandidatePending {
		t.Errorf("Status = %q", v.Status)
	}
	if v.Position != FallbackPosition {
		t.Errorf("Position = %q", v.Position)
	}
}

func TestJobEnumDefaults(t *testing.T) {
	if got := EmploymentTypeFromBackend("gig"); got != models.FullTime {
		t.Errorf("employment type default = %q", got)
	}
	if got := ExperienceLevelFromBackend(""); got != models.MidLevel {
		t.Errorf("experience level default = %q", got)
	}
	if got := JobStatusFromBackend("archived"); got != models.JobDraft {
		t.Errorf("job status default = %q", got)
	}
	if got := JobStatusFromBackend("PAUSED"); got != models.JobPaused {
		t.Errorf("job status case fold = %q", got)
	}
}

func TestJobToPayloadNormalizes(t *testing.T) {
	v := &models.JobView{
		Title:           "Platform Engineer",
		Company:         "Acme",
		EmploymentType:  "weird",
		ExperienceLevel: "unknown",
		Status:          "archived",
	}
	p := JobToPayload(v)
	if p.EmploymentType != "full-time" || p.ExperienceLevel != "mid-level" || p.Status != "draft" {
		t.Errorf("payload enums = %q/%q/%q", p.EmploymentType, p.ExperienceLevel, p.Status)
	}
}
