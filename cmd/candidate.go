package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/talentpipe/talentpipe/internal/forms"
	"github.com/talentpipe/talentpipe/internal/listing"
	"github.com/talentpipe/talentpipe/internal/mapping"
	"github.com/talentpipe/talentpipe/pkg/models"
)

var candidateCmd = &cobra.Command{
	Use:   "candidate",
	Short: "Manage candidates",
	Long:  "List, view, add, update, and remove candidates",
}

var listCandidatesCmd = &cobra.Command{
	Use:   "list",
	Short: "List candidates",
	Example: `  talentpipe candidate list
  talentpipe candidate list --search developer --status pending
  talentpipe candidate list --sort newest --page 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireLogin(cmd)
		if err != nil {
			return err
		}

		search, _ := cmd.Flags().GetString("search")
		status, _ := cmd.Flags().GetString("status")
		sortOrder, _ := cmd.Flags().GetString("sort")
		page, _ := cmd.Flags().GetInt("page")

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
		result := listing.Paginate(views, page, application.Config.PageSize)

		if result.TotalItems == 0 {
			cmd.Println("No candidates found.")
			return nil
		}

		cmd.Println(titleStyle.Render("Candidates"))
		for _, v := range result.Items {
			cmd.Printf("\n%s %s  %s\n", labelStyle.Render("#"+v.ID), v.Name, renderStatus(string(v.Status)))
			cmd.Printf("   %s %s\n", labelStyle.Render("Position:"), v.Position)
			cmd.Printf("   %s %s\n", labelStyle.Render("Email:"), v.Email)
			if v.Phone != "" {
				cmd.Printf("   %s %s\n", labelStyle.Render("Phone:"), v.Phone)
			}
		}
		cmd.Printf("\n%s\n", dimStyle.Render(fmt.Sprintf("Page %d of %d (%d candidates)",
			result.Number, result.TotalPages, result.TotalItems)))
		return nil
	},
}

var showCandidateCmd = &cobra.Command{
	Use:   "view ID",
	Short: "Show one candidate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireLogin(cmd)
		if err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid candidate id %q", args[0])
		}

		record, err := application.API.GetCandidate(cmd.Context(), id)
		if err != nil {
			return err
		}
		v := mapping.CandidateToView(record)

		cmd.Println(titleStyle.Render(v.Name))
		cmd.Printf("%s %s\n", labelStyle.Render("Status:"), renderStatus(string(v.Status)))
		cmd.Printf("%s %s\n", labelStyle.Render("Position:"), valueStyle.Render(v.Position))
		cmd.Printf("%s %s\n", labelStyle.Render("Email:"), valueStyle.Render(v.Email))
		if v.Phone != "" {
			cmd.Printf("%s %s\n", labelStyle.Render("Phone:"), valueStyle.Render(v.Phone))
		}
		if v.Address != "" {
			cmd.Printf("%s %s\n", labelStyle.Render("Address:"), valueStyle.Render(v.Address))
		}
		if v.LinkedIn != "" {
			cmd.Printf("%s %s\n", labelStyle.Render("LinkedIn:"), valueStyle.Render(v.LinkedIn))
		}
		if v.Summary != "" {
			cmd.Printf("%s %s\n", labelStyle.Render("Summary:"), valueStyle.Render(v.Summary))
		}
		cmd.Printf("%s %s\n", labelStyle.Render("Added:"), valueStyle.Render(v.CreatedAt.Format("Jan 2, 2006")))
		return nil
	},
}

var addCandidateCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a candidate",
	Example: `  talentpipe candidate add
  talentpipe candidate add --name "Ada Lovelace" --email ada@example.com --phone "11 98888-7777"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireLogin(cmd)
		if err != nil {
			return err
		}

		v := &models.CandidateView{Status: models.CandidatePending}
		v.Name, _ = cmd.Flags().GetString("name")
		v.Email, _ = cmd.Flags().GetString("email")
		v.Phone, _ = cmd.Flags().GetString("phone")
		v.Address, _ = cmd.Flags().GetString("address")
		v.Summary, _ = cmd.Flags().GetString("summary")
		v.LinkedIn, _ = cmd.Flags().GetString("linkedin")

		// Fall back to the interactive form when the flags are not given.
		if v.Name == "" {
			v.Name = promptLine("Full Name")
			v.Email = promptLine("Email")
			v.Phone = promptLine("Phone")
			v.Address = promptLine("Address (optional)")
			v.Summary = promptLine("Summary (optional)")
			v.LinkedIn = promptLine("LinkedIn URL (optional)")
		}

		if err := forms.Validate(forms.CandidateRules(v)); err != nil {
			return err
		}

		created, err := application.API.CreateCandidate(cmd.Context(), mapping.CandidateToPayload(v))
		if err != nil {
			return fmt.Errorf("create candidate: %w", err)
		}
		cmd.Printf("✓ Candidate added: %s (ID: %d)\n", mapping.JoinName(created.FirstName, created.LastName), created.ID)
		return nil
	},
}

var updateCandidateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update a candidate",
	Example: `  talentpipe candidate update 42 --status interviewed
  talentpipe candidate update 42 --phone "11 97777-6666"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireLogin(cmd)
		if err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid candidate id %q", args[0])
		}

		record, err := application.API.GetCandidate(cmd.Context(), id)
		if err != nil {
			return err
		}
		v := mapping.CandidateToView(record)

		if f := cmd.Flags(); f.Changed("name") {
			v.Name, _ = f.GetString("name")
		}
		if f := cmd.Flags(); f.Changed("email") {
			v.Email, _ = f.GetString("email")
		}
		if f := cmd.Flags(); f.Changed("phone") {
			v.Phone, _ = f.GetString("phone")
		}
		if f := cmd.Flags(); f.Changed("address") {
			v.Address, _ = f.GetString("address")
		}
		if f := cmd.Flags(); f.Changed("summary") {
			v.Summary, _ = f.GetString("summary")
		}
		if f := cmd.Flags(); f.Changed("linkedin") {
			v.LinkedIn, _ = f.GetString("linkedin")
		}
		if f := cmd.Flags(); f.Changed("status") {
			status, _ := f.GetString("status")
			v.Status = models.CandidateStatus(status)
		}

		if err := forms.Validate(forms.CandidateRules(v)); err != nil {
			return err
		}

		updated, err := application.API.UpdateCandidate(cmd.Context(), id, mapping.CandidateToPayload(v))
		if err != nil {
			return fmt.Errorf("update candidate: %w", err)
		}
		cmd.Printf("✓ Candidate updated: %s\n", mapping.JoinName(updated.FirstName, updated.LastName))
		return nil
	},
}

var deleteCandidateCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a candidate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireLogin(cmd)
		if err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid candidate id %q", args[0])
		}

		record, err := application.API.GetCandidate(cmd.Context(), id)
		if err != nil {
			return err
		}
		name := mapping.JoinName(record.FirstName, record.LastName)

		force, _ := cmd.Flags().GetBool("yes")
		if !force && !confirm(fmt.Sprintf("Delete candidate %q and all their applications?", name)) {
			cmd.Println("Aborted.")
			return nil
		}

		if err := application.API.DeleteCandidate(cmd.Context(), id); err != nil {
			return fmt.Errorf("delete candidate: %w", err)
		}
		cmd.Printf("✓ Candidate deleted: %s\n", name)
		return nil
	},
}

func init() {
	listCandidatesCmd.Flags().String("search", "", "Filter by name, email or position")
	listCandidatesCmd.Flags().String("status", "", "Filter by status (pending, interviewed, approved, rejected)")
	listCandidatesCmd.Flags().String("sort", "name_asc", "Sort order (name_asc, name_desc, newest, oldest, status_asc, status_desc)")
	listCandidatesCmd.Flags().Int("page", 1, "Page number")

	for _, c := range []*cobra.Command{addCandidateCmd, updateCandidateCmd} {
		c.Flags().String("name", "", "Full name")
		c.Flags().String("email", "", "Email address")
		c.Flags().String("phone", "", "Phone number")
		c.Flags().String("address", "", "Address")
		c.Flags().String("summary", "", "Professional summary")
		c.Flags().String("linkedin", "", "LinkedIn URL")
	}
	updateCandidateCmd.Flags().String("status", "", "Status (pending, interviewed, approved, rejected)")
	deleteCandidateCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	candidateCmd.AddCommand(listCandidatesCmd, showCandidateCmd, addCandidateCmd, updateCandidateCmd, deleteCandidateCmd)
	rootCmd.AddCommand(candidateCmd)
}
