package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/talentpipe/talentpipe/internal/api"
	"github.com/talentpipe/talentpipe/internal/mapping"
	"github.com/talentpipe/talentpipe/pkg/models"
)

var applicationCmd = &cobra.Command{
	Use:     "application",
	Aliases: []string{"app"},
	Short:   "Manage applications",
	Long:    "Link candidates to jobs and follow their progress",
}

func applicationCandidateName(a *models.Application) string {
	if a.Candidate != nil {
		return mapping.JoinName(a.Candidate.FirstName, a.Candidate.LastName)
	}
	return fmt.Sprintf("candidate #%d", a.CandidateID)
}

func applicationJobTitle(a *models.Application) string {
	if a.Job != nil {
		return a.Job.Title
	}
	return fmt.Sprintf("job #%d", a.JobID)
}

var listApplicationsCmd = &cobra.Command{
	Use:   "list",
	Short: "List applications",
	Example: `  talentpipe application list
  talentpipe application list --job 7 --status in_progress`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireLogin(cmd)
		if err != nil {
			return err
		}

		filters := api.ApplicationFilters{PerPage: application.Config.PageSize}
		filters.Page, _ = cmd.Flags().GetInt("page")
		filters.Status, _ = cmd.Flags().GetString("status")
		filters.Stage, _ = cmd.Flags().GetInt("stage")
		filters.JobID, _ = cmd.Flags().GetInt("job")
		filters.CandidateID, _ = cmd.Flags().GetInt("candidate")

		page, err := application.API.ListApplications(cmd.Context(), filters)
		if err != nil {
			return fmt.Errorf("fetch applications: %w", err)
		}
		if page.Total == 0 {
			cmd.Println("No applications found.")
			return nil
		}

		cmd.Println(titleStyle.Render("Applications"))
		for _, a := range page.Applications {
			cmd.Printf("\n%s %s → %s  %s\n", labelStyle.Render(fmt.Sprintf("#%d", a.ID)),
				applicationCandidateName(a), applicationJobTitle(a), renderStatus(a.Status))
			if a.StageInfo != nil {
				cmd.Printf("   %s %s\n", labelStyle.Render("Stage:"), a.StageInfo.Name)
			} else {
				cmd.Printf("   %s %d\n", labelStyle.Render("Stage:"), a.Stage)
			}
			cmd.Printf("   %s %s\n", labelStyle.Render("Applied:"), a.AppliedAt.Format("Jan 2, 2006"))
		}
		cmd.Printf("\n%s\n", dimStyle.Render(fmt.Sprintf("Page %d of %d (%d applications)",
			page.Page, page.TotalPages, page.Total)))
		return nil
	},
}

var showApplicationCmd = &cobra.Command{
	Use:   "view ID",
	Short: "Show one application with its history and comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireLogin(cmd)
		if err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid application id %q", args[0])
		}

		a, err := application.API.GetApplication(cmd.Context(), id)
		if err != nil {
			return err
		}

		cmd.Println(titleStyle.Render(fmt.Sprintf("%s → %s", applicationCandidateName(a), applicationJobTitle(a))))
		cmd.Printf("%s %s\n", labelStyle.Render("Status:"), renderStatus(a.Status))
		if a.StageInfo != nil {
			cmd.Printf("%s %s\n", labelStyle.Render("Stage:"), valueStyle.Render(a.StageInfo.Name))
		}
		cmd.Printf("%s %s\n", labelStyle.Render("Applied:"), valueStyle.Render(a.AppliedAt.Format("Jan 2, 2006")))
		if a.Notes != "" {
			cmd.Printf("%s %s\n", labelStyle.Render("Notes:"), valueStyle.Render(a.Notes))
		}

		if len(a.History) > 0 {
			cmd.Println(titleStyle.Render("History"))
			for _, h := range a.History {
				from := "start"
				if h.PreviousStage != nil {
					from = strconv.Itoa(*h.PreviousStage)
				}
				cmd.Printf("  %s stage %s → %d (%s)", dimStyle.Render(h.ChangedAt.Format("Jan 2 15:04")), from, h.NewStage, h.NewStatus)
				if h.Notes != "" {
					cmd.Printf("  %s", dimStyle.Render(h.Notes))
				}
				cmd.Println()
			}
		}
		if len(a.Comments) > 0 {
			cmd.Println(titleStyle.Render("Comments"))
			for _, c := range a.Comments {
				marker := ""
				if c.IsInternal {
					marker = dimStyle.Render(" (internal)")
				}
				cmd.Printf("  %s%s %s\n", dimStyle.Render(c.CreatedAt.Format("Jan 2 15:04")), marker, c.Comment)
			}
		}
		return nil
	},
}

var addApplicationCmd = &cobra.Command{
	Use:     "add",
	Short:   "Apply a candidate to a job",
	Example: `  talentpipe application add --candidate 42 --job 7 --notes "Referred by Grace"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireLogin(cmd)
		if err != nil {
			return err
		}

		candidateID, _ := cmd.Flags().GetInt("candidate")
		jobID, _ := cmd.Flags().GetInt("job")
		notes, _ := cmd.Flags().GetString("notes")
		if candidateID <= 0 || jobID <= 0 {
			return fmt.Errorf("both --candidate and --job are required")
		}

		created, err := application.API.CreateApplication(cmd.Context(), &models.ApplicationPayload{
			CandidateID: candidateID,
			JobID:       jobID,
			Notes:       notes,
		})
		if err != nil {
			return fmt.Errorf("create application: %w", err)
		}
		cmd.Printf("✓ Application created: %s → %s (ID: %d)\n",
			applicationCandidateName(created), applicationJobTitle(created), created.ID)
		return nil
	},
}

var deleteApplicationCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete an application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireLogin(cmd)
		if err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid application id %q", args[0])
		}

		force, _ := cmd.Flags().GetBool("yes")
		if !force && !confirm(fmt.Sprintf("Delete application #%d and its history?", id)) {
			cmd.Println("Aborted.")
			return nil
		}
		if err := application.API.DeleteApplication(cmd.Context(), id); err != nil {
			return fmt.Errorf("delete application: %w", err)
		}
		cmd.Printf("✓ Application deleted: #%d\n", id)
		return nil
	},
}

var commentCmd = &cobra.Command{
	Use:     "comment ID TEXT",
	Short:   "Add a comment to an application",
	Example: `  talentpipe application comment 12 "Strong take-home submission" --internal`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireLogin(cmd)
		if err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid application id %q", args[0])
		}
		internal, _ := cmd.Flags().GetBool("internal")

		if _, err := application.API.AddComment(cmd.Context(), id, args[1], internal); err != nil {
			return fmt.Errorf("add comment: %w", err)
		}
		cmd.Println("✓ Comment added")
		return nil
	},
}

func init() {
	listApplicationsCmd.Flags().Int("page", 1, "Page number")
	listApplicationsCmd.Flags().String("status", "", "Filter by status (applied, in_progress, hired, rejected)")
	listApplicationsCmd.Flags().Int("stage", 0, "Filter by stage id")
	listApplicationsCmd.Flags().Int("job", 0, "Filter by job id")
	listApplicationsCmd.Flags().Int("candidate", 0, "Filter by candidate id")

	addApplicationCmd.Flags().Int("candidate", 0, "Candidate id")
	addApplicationCmd.Flags().Int("job", 0, "Job id")
	addApplicationCmd.Flags().String("notes", "", "Initial notes")

	deleteApplicationCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	commentCmd.Flags().Bool("internal", false, "Mark the comment team-only")

	applicationCmd.AddCommand(listApplicationsCmd, showApplicationCmd, addApplicationCmd, deleteApplicationCmd, commentCmd)
	rootCmd.AddCommand(applicationCmd)
}
