package models

import "time"

// Candidate is the backend record shape for a candidate (snake_case wire form).
type Candidate struct {
	ID          int       `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	Summary     string    `json:"summary,omitempty"`
	LinkedInURL string    `json:"linkedin_url,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CandidatePayload is the partial record sent on create/update.
type CandidatePayload struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	Summary     string `json:"summary,omitempty"`
	LinkedInURL string `json:"linkedin_url,omitempty"`
	Status      string `json:"status"`
}

// Job is the backend record shape for a job posting.
type Job struct {
	ID                  int        `json:"id"`
	Title               string     `json:"title"`
	Company             string     `json:"company"`
	Location            string     `json:"location"`
	Description         string     `json:"description,omitempty"`
	Requirements        string     `json:"requirements,omitempty"`
	Benefits            string     `json:"benefits,omitempty"`
	SalaryMin           *float64   `json:"salary_min"`
	SalaryMax           *float64   `json:"salary_max"`
	EmploymentType      string     `json:"employment_type"`
	ExperienceLevel     string     `json:"experience_level"`
	Status              string     `json:"status"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// JobPayload is the partial record sent on create/update.
type JobPayload struct {
	Title               string     `json:"title"`
	Company             string     `json:"company"`
	Location            string     `json:"location"`
	Description         string     `json:"description,omitempty"`
	Requirements        string     `json:"requirements,omitempty"`
	Benefits            string     `json:"benefits,omitempty"`
	SalaryMin           *float64   `json:"salary_min"`
	SalaryMax           *float64   `json:"salary_max"`
	EmploymentType      string     `json:"employment_type"`
	ExperienceLevel     string     `json:"experience_level"`
	Status              string     `json:"status"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
}

// JobsPage is the paginated jobs listing response.
type JobsPage struct {
	Jobs       []*Job `json:"jobs"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	TotalPages int    `json:"total_pages"`
}

// JobOption is a value/label pair for select inputs.
type JobOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// JobOptions groups the enumerations the backend accepts for job fields.
type JobOptions struct {
	EmploymentTypes  []JobOption `json:"employment_types"`
	ExperienceLevels []JobOption `json:"experience_levels"`
	StatusOptions    []JobOption `json:"status_options"`
}
