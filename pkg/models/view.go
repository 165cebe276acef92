package models

import "time"

// CandidateStatus is the display-side candidate status enumeration.
type CandidateStatus string

const (
	CandidatePending     CandidateStatus = "pending"
	CandidateInterviewed CandidateStatus = "interviewed"
	CandidateApproved    CandidateStatus = "approved"
	CandidateRejected    CandidateStatus = "rejected"
)

// CandidateView is the display-oriented shape of a candidate record.
type CandidateView struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Position  string
	Status    CandidateStatus
	Address   string
	Summary   string
	LinkedIn  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmploymentType enumerates how a position is contracted.
type EmploymentType string

const (
	FullTime  EmploymentType = "full-time"
	PartTime  EmploymentType = "part-time"
	Contract  EmploymentType = "contract"
	Freelance EmploymentType = "freelance"
)

// ExperienceLevel enumerates seniority bands.
type ExperienceLevel string

const (
	EntryLevel  ExperienceLevel = "entry-level"
	MidLevel    ExperienceLevel = "mid-level"
	SeniorLevel ExperienceLevel = "senior-level"
	LeadLevel   ExperienceLevel = "lead"
)

// JobStatus is the display-side job status enumeration.
type JobStatus string

const (
	JobActive JobStatus = "active"
	JobPaused JobStatus = "paused"
	JobClosed JobStatus = "closed"
	JobDraft  JobStatus = "draft"
)

// JobView is the display-oriented shape of a job record.
type JobView struct {
	ID              string
	Title           string
	Company         string
	Location        string
	Description     string
	Requirements    string
	Benefits        string
	SalaryMin       *float64
	SalaryMax       *float64
	EmploymentType  EmploymentType
	ExperienceLevel ExperienceLevel
	Status          JobStatus
	Deadline        *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
