package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/talentpipe/talentpipe/internal/api"
	"github.com/talentpipe/talentpipe/internal/export"
	"github.com/talentpipe/talentpipe/internal/listing"
	"github.com/talentpipe/talentpipe/internal/mapping"
	"github.com/talentpipe/talentpipe/pkg/models"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export data to files",
	Long:  "Write candidate lists, pipeline reports, and dashboard charts to disk",
}

var exportCandidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "Export the candidate list",
	Example: `  talentpipe export candidates
  talentpipe export candidates --format xlsx --out ./reports
  talentpipe export candidates --format pdf --status approved`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireLogin(cmd)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		outDir, _ := cmd.Flags().GetString("out")
		search, _ := cmd.Flags().GetString("search")
		status, _ := cmd.Flags().GetString("status")
		sortOrder, _ := cmd.Flags().GetString("sort")

		records, err := application.API.ListCandidates(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch candidates: %w", err)
		}
		views := mapping.CandidatesToView(records)
		views = listing.FilterCandidates(views, listing.Filter{
			Query:  search,
			Status: models.CandidateStatus(status),
		})
		listing.SortCandidates(views, listing.SortOrder(sortOrder))

		now := time.Now()
		path := filepath.Join(outDir, export.Filename("candidates", format, now))
		switch format {
		case "csv":
			err = export.WriteCandidatesCSV(path, views)
		case "xlsx":
			err = export.WriteCandidatesExcel(path, views)
		case "pdf":
			var filters []string
			if search != "" {
				filters = append(filters, "search: "+search)
			}
			if status != "" {
				filters = append(filters, "status: "+status)
			}
			meta := export.ReportMeta{
				Title:       "Candidate Report",
				Subtitle:    fmt.Sprintf("%d candidates", len(views)),
				Filters:     filters,
				GeneratedAt: now,
			}
			err = export.WriteCandidatesPDF(path, meta, views)
		default:
			return fmt.Errorf("unknown format %q, expected csv, xlsx or pdf", format)
		}
		if err != nil {
			return err
		}
		cmd.Printf("✓ Exported %d candidates to %s\n", len(views), path)
		return nil
	},
}

var exportJobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Export the job postings",
	Example: `  talentpipe export jobs
  talentpipe export jobs --format xlsx --status active`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireLogin(cmd)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		outDir, _ := cmd.Flags().GetString("out")
		status, _ := cmd.Flags().GetString("status")

		// The jobs listing is paginated server-side; walk every page.
		var views []*models.JobView
		filters := api.JobFilters{Page: 1, PerPage: 100, Status: status}
		for {
			page, err := application.API.ListJobs(cmd.Context(), filters)
			if err != nil {
				return fmt.Errorf("fetch jobs: %w", err)
			}
			views = append(views, mapping.JobsToView(page.Jobs)...)
			if filters.Page >= page.TotalPages || len(page.Jobs) == 0 {
				break
			}
			filters.Page++
		}

		path := filepath.Join(outDir, export.Filename("jobs", format, time.Now()))
		switch format {
		case "csv":
			err = export.WriteJobsCSV(path, views)
		case "xlsx":
			err = export.WriteJobsExcel(path, views)
		default:
			return fmt.Errorf("unknown format %q, expected csv or xlsx", format)
		}
		if err != nil {
			return err
		}
		cmd.Printf("✓ Exported %d jobs to %s\n", len(views), path)
		return nil
	},
}

var exportPipelineCmd = &cobra.Command{
	Use:     "applications",
	Aliases: []string{"pipeline"},
	Short:   "Export the applications pipeline",
	Example: `  talentpipe export pipeline
  talentpipe export pipeline --job 7 --format pdf`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireLogin(cmd)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		outDir, _ := cmd.Flags().GetString("out")
		jobID, _ := cmd.Flags().GetInt("job")

		snapshot, err := application.API.GetPipeline(cmd.Context(), jobID)
		if err != nil {
			return fmt.Errorf("fetch pipeline: %w", err)
		}

		now := time.Now()
		path := filepath.Join(outDir, export.Filename("pipeline", format, now))
		switch format {
		case "csv":
			err = export.WriteApplicationsCSV(path, snapshot)
		case "pdf":
			meta := export.ReportMeta{Title: "Pipeline Report", GeneratedAt: now}
			err = export.WritePipelinePDF(path, meta, snapshot)
		default:
			return fmt.Errorf("unknown format %q, expected csv or pdf", format)
		}
		if err != nil {
			return err
		}
		cmd.Printf("✓ Exported %d applications to %s\n", snapshot.TotalApplications, path)
		return nil
	},
}

var exportChartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Capture the status chart as a PNG",
	Long:  "Renders the candidates-by-status chart in a headless browser and saves the screenshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireLogin(cmd)
		if err != nil {
			return err
		}
		outDir, _ := cmd.Flags().GetString("out")
		period, _ := cmd.Flags().GetString("period")
		format, _ := cmd.Flags().GetString("format")

		metrics, err := application.API.GetDashboardMetrics(cmd.Context(), api.MetricsFilter{Period: period})
		if err != nil {
			return fmt.Errorf("fetch metrics: %w", err)
		}

		path := filepath.Join(outDir, export.Filename("status_chart", format, time.Now()))
		switch format {
		case "png":
			err = export.WriteStatusChartPNG(cmd.Context(), path, metrics)
		case "pdf":
			err = export.WriteStatusChartPDF(cmd.Context(), path, metrics)
		default:
			return fmt.Errorf("unknown format %q, expected png or pdf", format)
		}
		if err != nil {
			return err
		}
		cmd.Printf("✓ Chart saved to %s\n", path)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{exportCandidatesCmd, exportJobsCmd, exportPipelineCmd, exportChartCmd} {
		c.Flags().String("out", ".", "Output directory")
	}
	exportCandidatesCmd.Flags().String("format", "csv", "Output format (csv, xlsx, pdf)")
	exportCandidatesCmd.Flags().String("search", "", "Filter by name, email or position")
	exportCandidatesCmd.Flags().String("status", "", "Filter by status")
	exportCandidatesCmd.Flags().String("sort", "name_asc", "Sort order")
	exportJobsCmd.Flags().String("format", "csv", "Output format (csv, xlsx)")
	exportJobsCmd.Flags().String("status", "", "Filter by status")
	exportPipelineCmd.Flags().String("format", "csv", "Output format (csv, pdf)")
	exportPipelineCmd.Flags().Int("job", 0, "Narrow to one job")
	exportChartCmd.Flags().String("period", "30d", "Reporting window")
	exportChartCmd.Flags().String("format", "png", "Output format (png, pdf)")

	exportCmd.AddCommand(exportCandidatesCmd, exportJobsCmd, exportPipelineCmd, exportChartCmd)
	rootCmd.AddCommand(exportCmd)
}
