package models

import "time"

// DashboardMetrics is a read-only aggregate snapshot recomputed on each fetch.
type DashboardMetrics struct {
	TotalCandidates     int            `json:"total_candidates"`
	ActiveJobs          int            `json:"active_jobs"`
	MonthlyApplications int            `json:"monthly_applications"`
	ConversionRate      float64        `json:"conversion_rate"`
	PendingInterviews   int            `json:"pending_interviews"`
	HiredCount          int            `json:"hired_count"`
	StatusDistribution  map[string]int `json:"status_distribution"`
	StageDistribution   map[string]int `json:"stage_distribution"`
	MonthlyTrend        []TrendPoint   `json:"monthly_trend"`
	TopJobs             []TopJob       `json:"top_jobs"`
	RecentActivities    []Activity     `json:"recent_activities"`
	LastUpdated         time.Time      `json:"last_updated"`
	TotalApplications   int            `json:"total_applications"`
}

// TrendPoint is one month of application volume.
type TrendPoint struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// TopJob ranks a job by application volume.
type TopJob struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

// Activity is one recent event shown on the dashboard.
type Activity struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user,omitempty"`
}
