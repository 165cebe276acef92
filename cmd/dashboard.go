package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/talentpipe/talentpipe/internal/api"
	"github.com/talentpipe/talentpipe/internal/dashboard"
	"github.com/talentpipe/talentpipe/pkg/models"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show recruitment metrics",
	Example: `  talentpipe dashboard
  talentpipe dashboard --period 90d
  talentpipe dashboard --period custom --start 2025-01-01 --end 2025-03-31
  talentpipe dashboard --watch`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireLogin(cmd)
		if err != nil {
			return err
		}

		filter := api.MetricsFilter{}
		filter.Period, _ = cmd.Flags().GetString("period")
		filter.StartDate, _ = cmd.Flags().GetString("start")
		filter.EndDate, _ = cmd.Flags().GetString("end")
		watch, _ := cmd.Flags().GetBool("watch")
		interval, _ := cmd.Flags().GetDuration("interval")

		if !watch {
			metrics, err := application.API.GetDashboardMetrics(cmd.Context(), filter)
			if err != nil {
				return fmt.Errorf("fetch metrics: %w", err)
			}
			printMetrics(cmd, metrics)
			return nil
		}

		watcher := dashboard.NewWatcher(application.API, filter, interval)
		watcher.Start(cmd.Context())
		defer watcher.Stop()

		cmd.Println(dimStyle.Render("Watching. Enter pauses/resumes, q quits."))
		go watchKeys(cmd, watcher)
		for update := range watcher.Updates() {
			if update.Err != nil {
				cmd.Println(errorStyle.Render("refresh failed: " + update.Err.Error()))
				continue
			}
			printMetrics(cmd, update.Metrics)
		}
		return nil
	},
}

// watchKeys reads watch-mode controls from stdin. A blank line toggles the
// refresh off and on, q stops the watcher, which closes the update loop.
func watchKeys(cmd *cobra.Command, watcher *dashboard.Watcher) {
	paused := false
	for {
		line, err := stdin.ReadString('\n')
		if err != nil {
			watcher.Stop()
			return
		}
		if strings.TrimSpace(line) == "q" {
			watcher.Stop()
			return
		}
		if paused {
			watcher.Resume()
			cmd.Println(dimStyle.Render("Resumed."))
		} else {
			watcher.Pause()
			cmd.Println(dimStyle.Render("Paused. Enter resumes."))
		}
		paused = !paused
	}
}

func printMetrics(cmd *cobra.Command, m *models.DashboardMetrics) {
	cmd.Println(titleStyle.Render("Dashboard"))
	cmd.Printf("%s %d\n", labelStyle.Render("Candidates:"), m.TotalCandidates)
	cmd.Printf("%s %d\n", labelStyle.Render("Active jobs:"), m.ActiveJobs)
	cmd.Printf("%s %d\n", labelStyle.Render("Applications this month:"), m.MonthlyApplications)
	cmd.Printf("%s %d\n", labelStyle.Render("Pending interviews:"), m.PendingInterviews)
	cmd.Printf("%s %d\n", labelStyle.Render("Hired:"), m.HiredCount)
	cmd.Printf("%s %.1f%%\n", labelStyle.Render("Conversion rate:"), m.ConversionRate)

	if len(m.StatusDistribution) > 0 {
		cmd.Println(titleStyle.Render("Candidates by Status"))
		for _, status := range []string{"pending", "interviewed", "approved", "rejected"} {
			if n, ok := m.StatusDistribution[status]; ok {
				cmd.Printf("  %-14s %s %d\n", renderStatus(status), bar(n, maxValue(m.StatusDistribution)), n)
			}
		}
	}
	if len(m.MonthlyTrend) > 0 {
		cmd.Println(titleStyle.Render("Monthly Applications"))
		peak := 1
		for _, p := range m.MonthlyTrend {
			if p.Count > peak {
				peak = p.Count
			}
		}
		for _, p := range m.MonthlyTrend {
			cmd.Printf("  %-10s %s %d\n", p.Month, bar(p.Count, peak), p.Count)
		}
	}
	if len(m.TopJobs) > 0 {
		cmd.Println(titleStyle.Render("Top Jobs"))
		for i, j := range m.TopJobs {
			cmd.Printf("  %d. %s %s\n", i+1, j.Title, dimStyle.Render(fmt.Sprintf("(%d applications)", j.Count)))
		}
	}
	if len(m.RecentActivities) > 0 {
		cmd.Println(titleStyle.Render("Recent Activity"))
		for _, a := range m.RecentActivities {
			cmd.Printf("  %s %s\n", dimStyle.Render(a.Timestamp.Format("Jan 2 15:04")), a.Message)
		}
	}
	if !m.LastUpdated.IsZero() {
		cmd.Printf("\n%s\n", dimStyle.Render("Updated "+m.LastUpdated.Local().Format("Jan 2, 2006 15:04:05")))
	}
}

// bar renders a proportional block bar for terminal charts.
func bar(value, peak int) string {
	if peak <= 0 {
		peak = 1
	}
	width := value * 30 / peak
	if value > 0 && width == 0 {
		width = 1
	}
	return valueStyle.Render(strings.Repeat("█", width))
}

func maxValue(m map[string]int) int {
	peak := 1
	for _, v := range m {
		if v > peak {
			peak = v
		}
	}
	return peak
}

func init() {
	dashboardCmd.Flags().String("period", "30d", "Reporting window (7d, 30d, 90d, custom)")
	dashboardCmd.Flags().String("start", "", "Custom window start (YYYY-MM-DD)")
	dashboardCmd.Flags().String("end", "", "Custom window end (YYYY-MM-DD)")
	dashboardCmd.Flags().Bool("watch", false, "Refresh automatically")
	dashboardCmd.Flags().Duration("interval", time.Minute, "Refresh interval with --watch")

	rootCmd.AddCommand(dashboardCmd)
}
