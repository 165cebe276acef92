package models

import "time"

// Application statuses as the backend stores them.
const (
	AppStatusApplied    = "applied"
	AppStatusInProgress = "in_progress"
	AppStatusHired      = "hired"
	AppStatusRejected   = "rejected"
)

// Application links a candidate to a job and tracks it through the pipeline.
type Application struct {
	ID          int                `json:"id"`
	CandidateID int                `json:"candidate_id"`
	JobID       int                `json:"job_id"`
	Status      string             `json:"status"`
	Stage       int                `json:"stage"`
	Notes       string             `json:"notes,omitempty"`
	AppliedAt   time.Time          `json:"applied_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	CreatedBy   string             `json:"created_by,omitempty"`
	Candidate   *Candidate         `json:"candidates,omitempty"`
	Job         *Job               `json:"jobs,omitempty"`
	StageInfo   *RecruitmentStage  `json:"recruitment_stages,omitempty"`
	History     []*StageTransition `json:"history,omitempty"`
	Comments    []*Comment         `json:"comments,omitempty"`
}

// ApplicationPayload is the record sent when creating or updating an application.
type ApplicationPayload struct {
	CandidateID int    `json:"candidate_id"`
	JobID       int    `json:"job_id"`
	Status      string `json:"status,omitempty"`
	Stage       int    `json:"stage,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// RecruitmentStage is one ordered step of the hiring workflow.
type RecruitmentStage struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	OrderPosition int    `json:"order_position"`
	Color         string `json:"color"`
	IsActive      bool   `json:"is_active"`
}

// StageTransition is one append-only history entry for an application.
// Previous fields are nil for the initial record.
type StageTransition struct {
	ID             int       `json:"id"`
	ApplicationID  int       `json:"application_id"`
	PreviousStatus *string   `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	PreviousStage  *int      `json:"previous_stage"`
	NewStage       int       `json:"new_stage"`
	Notes          string    `json:"notes,omitempty"`
	ChangedBy      string    `json:"changed_by"`
	ChangedAt      time.Time `json:"changed_at"`
}

// Comment is one entry of an application's comment thread.
type Comment struct {
	ID            int       `json:"id"`
	ApplicationID int       `json:"application_id"`
	UserID        string    `json:"user_id"`
	Comment       string    `json:"comment"`
	IsInternal    bool      `json:"is_internal"`
	CreatedAt     time.Time `json:"created_at"`
}

// ApplicationsPage is the paginated applications listing response.
type ApplicationsPage struct {
	Applications []*Application `json:"applications"`
	Total        int            `json:"total"`
	Page         int            `json:"page"`
	PerPage      int            `json:"per_page"`
	TotalPages   int            `json:"total_pages"`
}

// StageMove describes a stage change request for one application.
type StageMove struct {
	Action      string `json:"action"` // next, previous, specific
	TargetStage int    `json:"target_stage,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// Pipeline is the kanban grouping of applications by stage.
type Pipeline struct {
	Columns           map[int]*PipelineColumn `json:"pipeline"`
	Stages            []*RecruitmentStage     `json:"stages"`
	TotalApplications int                     `json:"total_applications"`
}

// PipelineColumn holds one stage and the applications currently in it.
type PipelineColumn struct {
	Stage        *RecruitmentStage `json:"stage"`
	Applications []*Application    `json:"applications"`
}

// PipelineStats is the aggregate snapshot for the pipeline view.
type PipelineStats struct {
	TotalApplications int            `json:"total_applications"`
	StatusCount       map[string]int `json:"status_count"`
	StageCount        map[string]int `json:"stage_count"`
	ConversionRate    float64        `json:"conversion_rate"`
	AvgTimeToHireDays float64        `json:"avg_time_to_hire_days"`
	HiredCount        int            `json:"hired_count"`
}
