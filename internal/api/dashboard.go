package api

import (
	"context"
	"net/url"

	"github.com/talentpipe/talentpipe/pkg/models"
)

// MetricsFilter selects the dashboard reporting window. Period is a
// backend-understood token like "7d", "30d", "90d" or "custom"; the custom
// dates are only sent with the custom period.
type MetricsFilter struct {
	Period    string
	StartDate string
	EndDate   string
}

// GetDashboardMetrics fetches the aggregate snapshot for the dashboard.
func (c *Client) GetDashboardMetrics(ctx context.Context, filter MetricsFilter) (*models.DashboardMetrics, error) {
	params := url.Values{}
	if filter.Period != "" {
		params.Set("period", filter.Period)
	}
	if filter.Period == "custom" {
		if filter.StartDate != "" {
			params.Set("start_date", filter.StartDate)
		}
		if filter.EndDate != "" {
			params.Set("end_date", filter.EndDate)
		}
	}
	out := &models.DashboardMetrics{}
	if err := c.get(ctx, "/api/dashboard/metrics", params, out); err != nil {
		return nil, err
	}
	return out, nil
}
