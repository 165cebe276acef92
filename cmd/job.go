package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/talentpipe/talentpipe/internal/api"
	"github.com/talentpipe/talentpipe/internal/forms"
	"github.com/talentpipe/talentpipe/internal/mapping"
	"github.com/talentpipe/talentpipe/pkg/models"
)

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Manage job postings",
	Long:  "List, view, add, update, and remove job postings",
}

var listJobsCmd = &cobra.Command{
	Use:   "list",
	Short: "List job postings",
	Example: `  talentpipe job list
  talentpipe job list --status active --type full-time
  talentpipe job list --search engineer --page 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireLogin(cmd)
		if err != nil {
			return err
		}

		filters := api.JobFilters{PerPage: application.Config.PageSize}
		filters.Page, _ = cmd.Flags().GetInt("page")
		filters.Search, _ = cmd.Flags().GetString("search")
		filters.Status, _ = cmd.Flags().GetString("status")
		filters.EmploymentType, _ = cmd.Flags().GetString("type")
		filters.ExperienceLevel, _ = cmd.Flags().GetString("level")
		filters.Company, _ = cmd.Flags().GetString("company")

		page, err := application.API.ListJobs(cmd.Context(), filters)
		if err != nil {
			return fmt.Errorf("fetch jobs: %w", err)
		}
		if page.Total == 0 {
			cmd.Println("No jobs found. Add one with 'talentpipe job add'.")
			return nil
		}

		cmd.Println(titleStyle.Render("Job Postings"))
		for _, j := range mapping.JobsToView(page.Jobs) {
			cmd.Printf("\n%s %s  %s\n", labelStyle.Render("#"+j.ID), j.Title, renderStatus(string(j.Status)))
			cmd.Printf("   %s %s\n", labelStyle.Render("Company:"), j.Company)
			cmd.Printf("   %s %s\n", labelStyle.Render("Location:"), j.Location)
			cmd.Printf("   %s %s / %s\n", labelStyle.Render("Type:"), j.EmploymentType, j.ExperienceLevel)
			if j.SalaryMin != nil && j.SalaryMax != nil {
				cmd.Printf("   %s %.0f - %.0f\n", labelStyle.Render("Salary:"), *j.SalaryMin, *j.SalaryMax)
			}
			if j.Deadline != nil {
				cmd.Printf("   %s %s\n", labelStyle.Render("Deadline:"), j.Deadline.Format("Jan 2, 2006"))
			}
		}
		cmd.Printf("\n%s\n", dimStyle.Render(fmt.Sprintf("Page %d of %d (%d jobs)",
			page.Page, page.TotalPages, page.Total)))
		return nil
	},
}

var showJobCmd = &cobra.Command{
	Use:   "view ID",
	Short: "Show one job posting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireLogin(cmd)
		if err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid job id %q", args[0])
		}

		record, err := application.API.GetJob(cmd.Context(), id)
		if err != nil {
			return err
		}
		j := mapping.JobToView(record)

		cmd.Println(titleStyle.Render(j.Title))
		cmd.Printf("%s %s\n", labelStyle.Render("Company:"), valueStyle.Render(j.Company))
		cmd.Printf("%s %s\n", labelStyle.Render("Location:"), valueStyle.Render(j.Location))
		cmd.Printf("%s %s\n", labelStyle.Render("Status:"), renderStatus(string(j.Status)))
		cmd.Printf("%s %s / %s\n", labelStyle.Render("Type:"), valueStyle.Render(string(j.EmploymentType)), valueStyle.Render(string(j.ExperienceLevel)))
		if j.SalaryMin != nil && j.SalaryMax != nil {
			cmd.Printf("%s %.0f - %.0f\n", labelStyle.Render("Salary:"), *j.SalaryMin, *j.SalaryMax)
		}
		if j.Deadline != nil {
			cmd.Printf("%s %s\n", labelStyle.Render("Deadline:"), valueStyle.Render(j.Deadline.Format("Jan 2, 2006")))
		}
		if j.Description != "" {
			cmd.Printf("\n%s\n%s\n", labelStyle.Render("Description:"), valueStyle.Render(j.Description))
		}
		if j.Requirements != "" {
			cmd.Printf("\n%s\n%s\n", labelStyle.Render("Requirements:"), valueStyle.Render(j.Requirements))
		}
		if j.Benefits != "" {
			cmd.Printf("\n%s\n%s\n", labelStyle.Render("Benefits:"), valueStyle.Render(j.Benefits))
		}
		return nil
	},
}

// jobFromFlags fills a view from the form flags, prompting when title is
// absent.
func jobFromFlags(cmd *cobra.Command, v *models.JobView) error {
	f := cmd.Flags()
	title, _ := f.GetString("title")
	if title == "" && v.Title == "" {
		v.Title = promptLine("Title")
		v.Company = promptLine("Company")
		v.Location = promptLine("Location")
		v.Description = promptLine("Description (optional)")
		v.EmploymentType = models.EmploymentType(promptDefault("Employment type", string(models.FullTime)))
		v.ExperienceLevel = models.ExperienceLevel(promptDefault("Experience level", string(models.MidLevel)))
	}

	if f.Changed("title") {
		v.Title, _ = f.GetString("title")
	}
	if f.Changed("company") {
		v.Company, _ = f.GetString("company")
	}
	if f.Changed("location") {
		v.Location, _ = f.GetString("location")
	}
	if f.Changed("description") {
		v.Description, _ = f.GetString("description")
	}
	if f.Changed("requirements") {
		v.Requirements, _ = f.GetString("requirements")
	}
	if f.Changed("benefits") {
		v.Benefits, _ = f.GetString("benefits")
	}
	if f.Changed("type") {
		t, _ := f.GetString("type")
		v.EmploymentType = models.EmploymentType(t)
	}
	if f.Changed("level") {
		l, _ := f.GetString("level")
		v.ExperienceLevel = models.ExperienceLevel(l)
	}
	if f.Changed("status") {
		s, _ := f.GetString("status")
		v.Status = models.JobStatus(s)
	}
	if f.Changed("salary-min") {
		min, _ := f.GetFloat64("salary-min")
		v.SalaryMin = &min
	}
	if f.Changed("salary-max") {
		max, _ := f.GetFloat64("salary-max")
		v.SalaryMax = &max
	}
	if f.Changed("deadline") {
		raw, _ := f.GetString("deadline")
		deadline, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return fmt.Errorf("invalid deadline %q, expected YYYY-MM-DD", raw)
		}
		v.Deadline = &deadline
	}
	return nil
}

var addJobCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a job posting",
	Example: `  talentpipe job add
  talentpipe job add --title "Platform Engineer" --company "Acme" --location Remote --type full-time`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireLogin(cmd)
		if err != nil {
			return err
		}

		v := &models.JobView{
			EmploymentType:  models.FullTime,
			ExperienceLevel: models.MidLevel,
			Status:          models.JobActive,
		}
		if err := jobFromFlags(cmd, v); err != nil {
			return err
		}
		if err := forms.Validate(forms.JobRules(v, time.Now())); err != nil {
			return err
		}

		created, err := application.API.CreateJob(cmd.Context(), mapping.JobToPayload(v))
		if err != nil {
			return fmt.Errorf("create job: %w", err)
		}
		cmd.Printf("✓ Job added: %s at %s (ID: %d)\n", created.Title, created.Company, created.ID)
		return nil
	},
}

var updateJobCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update a job posting",
	Example: `  talentpipe job update 7 --status paused
  talentpipe job update 7 --salary-min 8000 --salary-max 12000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireLogin(cmd)
		if err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid job id %q", args[0])
		}

		record, err := application.API.GetJob(cmd.Context(), id)
		if err != nil {
			return err
		}
		v := mapping.JobToView(record)
		if err := jobFromFlags(cmd, v); err != nil {
			return err
		}
		if err := forms.Validate(forms.JobRules(v, time.Now())); err != nil {
			return err
		}

		updated, err := application.API.UpdateJob(cmd.Context(), id, mapping.JobToPayload(v))
		if err != nil {
			return fmt.Errorf("update job: %w", err)
		}
		cmd.Printf("✓ Job updated: %s\n", updated.Title)
		return nil
	},
}

var deleteJobCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a job posting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireLogin(cmd)
		if err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid job id %q", args[0])
		}

		record, err := application.API.GetJob(cmd.Context(), id)
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("yes")
		if !force && !confirm(fmt.Sprintf("Delete job %q and all its applications?", record.Title)) {
			cmd.Println("Aborted.")
			return nil
		}

		if err := application.API.DeleteJob(cmd.Context(), id); err != nil {
			return fmt.Errorf("delete job: %w", err)
		}
		cmd.Printf("✓ Job deleted: %s\n", record.Title)
		return nil
	},
}

var jobOptionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Show the accepted values for job fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireLogin(cmd)
		if err != nil {
			return err
		}
		opts, err := application.API.GetJobOptions(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch job options: %w", err)
		}

		printOptions := func(title string, options []models.JobOption) {
			cmd.Println(titleStyle.Render(title))
			for _, o := range options {
				cmd.Printf("  %s %s\n", labelStyle.Render(o.Value), dimStyle.Render(o.Label))
			}
		}
		printOptions("Employment Types", opts.EmploymentTypes)
		printOptions("Experience Levels", opts.ExperienceLevels)
		printOptions("Statuses", opts.StatusOptions)
		return nil
	},
}

func init() {
	listJobsCmd.Flags().Int("page", 1, "Page number")
	listJobsCmd.Flags().String("search", "", "Filter by title or description")
	listJobsCmd.Flags().String("status", "", "Filter by status (active, paused, closed, draft)")
	listJobsCmd.Flags().String("type", "", "Filter by employment type")
	listJobsCmd.Flags().String("level", "", "Filter by experience level")
	listJobsCmd.Flags().String("company", "", "Filter by company")

	for _, c := range []*cobra.Command{addJobCmd, updateJobCmd} {
		c.Flags().String("title", "", "Job title")
		c.Flags().String("company", "", "Company name")
		c.Flags().String("location", "", "Location")
		c.Flags().String("description", "", "Description")
		c.Flags().String("requirements", "", "Requirements")
		c.Flags().String("benefits", "", "Benefits")
		c.Flags().String("type", "", "Employment type (full-time, part-time, contract, freelance)")
		c.Flags().String("level", "", "Experience level (entry-level, mid-level, senior-level, lead)")
		c.Flags().String("status", "", "Status (active, paused, closed, draft)")
		c.Flags().Float64("salary-min", 0, "Minimum salary")
		c.Flags().Float64("salary-max", 0, "Maximum salary")
		c.Flags().String("deadline", "", "Application deadline (YYYY-MM-DD)")
	}
	deleteJobCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	jobCmd.AddCommand(listJobsCmd, showJobCmd, addJobCmd, updateJobCmd, deleteJobCmd, jobOptionsCmd)
	rootCmd.AddCommand(jobCmd)
}
