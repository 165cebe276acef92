package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/talentpipe/talentpipe/internal/app"
	"github.com/talentpipe/talentpipe/internal/pipeline"
	"github.com/talentpipe/talentpipe/pkg/models"
)

var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Work the hiring pipeline",
	Long:  "Show the kanban board and move applications between stages",
}

// loadBoard builds a board from the backend's stage table and the pipeline
// snapshot, optionally narrowed to one job.
func loadBoard(cmd *cobra.Command, application *app.App, jobID int) (*pipeline.Board, error) {
	stages, err := application.API.GetStages(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("fetch stages: %w", err)
	}
	snapshot, err := application.API.GetPipeline(cmd.Context(), jobID)
	if err != nil {
		return nil, fmt.Errorf("fetch pipeline: %w", err)
	}
	var apps []*models.Application
	for _, col := range snapshot.Columns {
		apps = append(apps, col.Applications...)
	}
	board := pipeline.NewBoard(stages, application.API)
	board.SetActor(sessionActor(application))
	board.Load(apps)
	return board, nil
}

// sessionActor names the signed-in user for history entries.
func sessionActor(application *app.App) string {
	session := application.Sessions.CurrentSession()
	if session == nil {
		return ""
	}
	if session.User.Name != "" {
		return session.User.Name
	}
	return session.User.Email
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the kanban board",
	Example: `  talentpipe pipeline board
  talentpipe pipeline board --job 7`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireLogin(cmd)
		if err != nil {
			return err
		}
		jobID, _ := cmd.Flags().GetInt("job")

		board, err := loadBoard(cmd, application, jobID)
		if err != nil {
			return err
		}

		snap := board.Snapshot()
		cmd.Println(titleStyle.Render(fmt.Sprintf("Pipeline (%d applications)", snap.TotalApplications)))
		for _, stage := range snap.Stages {
			col := snap.Columns[stage.ID]
			header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(stage.Color))
			cmd.Printf("\n%s %s\n", header.Render(stage.Name), dimStyle.Render(fmt.Sprintf("(%d)", len(col.Applications))))
			for _, a := range col.Applications {
				cmd.Printf("  %s %s → %s  %s\n", labelStyle.Render(fmt.Sprintf("#%d", a.ID)),
					applicationCandidateName(a), applicationJobTitle(a), renderStatus(a.Status))
			}
		}
		return nil
	},
}

var advanceCmd = &cobra.Command{
	Use:     "advance ID",
	Short:   "Move an application to the next stage",
	Example: `  talentpipe pipeline advance 12 --notes "Passed the technical test"`,
	Args:    cobra.ExactArgs(1),
	RunE:    func(cmd *cobra.Command, args []string) error { return runMove(cmd, args[0], "next") },
}

var retreatCmd = &cobra.Command{
	Use:   "retreat ID",
	Short: "Move an application back one stage",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return runMove(cmd, args[0], "previous") },
}

var moveCmd = &cobra.Command{
	Use:     "move ID STAGE",
	Short:   "Move an application to a specific stage",
	Example: `  talentpipe pipeline move 12 5`,
	Args:    cobra.ExactArgs(2),
	RunE:    func(cmd *cobra.Command, args []string) error { return runMove(cmd, args[0], args[1]) },
}

// runMove resolves the application's job so the board carries its column,
// then applies the requested movement.
func runMove(cmd *cobra.Command, idArg, target string) error {
	application, err := requireLogin(cmd)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(idArg)
	if err != nil {
		return fmt.Errorf("invalid application id %q", idArg)
	}

	record, err := application.API.GetApplication(cmd.Context(), id)
	if err != nil {
		return err
	}
	stages, err := application.API.GetStages(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetch stages: %w", err)
	}
	notes, _ := cmd.Flags().GetString("notes")

	board := pipeline.NewBoard(stages, application.API)
	board.SetActor(sessionActor(application))
	board.Load([]*models.Application{record})

	var updated *models.Application
	switch target {
	case "next":
		updated, err = board.Advance(cmd.Context(), id, notes)
	case "previous":
		updated, err = board.Retreat(cmd.Context(), id, notes)
	default:
		stage, convErr := strconv.Atoi(target)
		if convErr != nil {
			return fmt.Errorf("invalid stage %q", target)
		}
		updated, err = board.Jump(cmd.Context(), id, stage, notes)
	}
	if err != nil {
		return err
	}

	stageName := strconv.Itoa(updated.Stage)
	for _, s := range board.Stages() {
		if s.ID == updated.Stage {
			stageName = s.Name
		}
	}
	cmd.Printf("✓ %s is now in %q (%s)\n", applicationCandidateName(updated), stageName, updated.Status)
	return nil
}

var batchMoveCmd = &cobra.Command{
	Use:     "batch-move STAGE ID...",
	Short:   "Move several applications to the same stage",
	Example: `  talentpipe pipeline batch-move 3 12 14 19`,
	Args:    cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireLogin(cmd)
		if err != nil {
			return err
		}
		stage, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid stage %q", args[0])
		}
		ids := make([]int, 0, len(args)-1)
		for _, raw := range args[1:] {
			id, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("invalid application id %q", raw)
			}
			ids = append(ids, id)
		}
		notes, _ := cmd.Flags().GetString("notes")

		moved, err := application.API.BatchMoveStage(cmd.Context(), ids, stage, notes)
		if err != nil {
			return fmt.Errorf("batch move: %w", err)
		}
		cmd.Printf("✓ Moved %d of %d applications to stage %d\n", moved, len(ids), stage)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history ID",
	Short: "Show an application's stage history",
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

		record, err := application.API.GetApplication(cmd.Context(), id)
		if err != nil {
			return err
		}

		cmd.Println(titleStyle.Render(fmt.Sprintf("History: %s → %s",
			applicationCandidateName(record), applicationJobTitle(record))))
		if len(record.History) == 0 {
			cmd.Println("No transitions recorded.")
			return nil
		}
		for _, h := range record.History {
			from := "start"
			if h.PreviousStage != nil {
				from = strconv.Itoa(*h.PreviousStage)
			}
			cmd.Printf("%s  stage %s → %d  %s", dimStyle.Render(h.ChangedAt.Format("Jan 2, 2006 15:04")),
				from, h.NewStage, renderStatus(h.NewStatus))
			if h.ChangedBy != "" {
				cmd.Printf("  %s", dimStyle.Render("by "+h.ChangedBy))
			}
			if h.Notes != "" {
				cmd.Printf("\n    %s", valueStyle.Render(h.Notes))
			}
			cmd.Println()
		}
		return nil
	},
}

var pipelineStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show pipeline statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireLogin(cmd)
		if err != nil {
			return err
		}
		jobID, _ := cmd.Flags().GetInt("job")

		stats, err := application.API.GetPipelineStats(cmd.Context(), jobID)
		if err != nil {
			return fmt.Errorf("fetch pipeline stats: %w", err)
		}

		cmd.Println(titleStyle.Render("Pipeline Statistics"))
		cmd.Printf("%s %d\n", labelStyle.Render("Applications:"), stats.TotalApplications)
		cmd.Printf("%s %d\n", labelStyle.Render("Hired:"), stats.HiredCount)
		cmd.Printf("%s %.1f%%\n", labelStyle.Render("Conversion:"), stats.ConversionRate)
		cmd.Printf("%s %.1f days\n", labelStyle.Render("Avg. time to hire:"), stats.AvgTimeToHireDays)
		if len(stats.StatusCount) > 0 {
			cmd.Println(titleStyle.Render("By Status"))
			for _, status := range []string{"applied", "in_progress", "hired", "rejected"} {
				if n, ok := stats.StatusCount[status]; ok {
					cmd.Printf("  %s %d\n", renderStatus(status), n)
				}
			}
		}
		if len(stats.StageCount) > 0 {
			cmd.Println(titleStyle.Render("By Stage"))
			for stage, n := range stats.StageCount {
				cmd.Printf("  %s %d\n", labelStyle.Render(stage+":"), n)
			}
		}
		return nil
	},
}

func init() {
	boardCmd.Flags().Int("job", 0, "Narrow the board to one job")
	pipelineStatsCmd.Flags().Int("job", 0, "Narrow the stats to one job")
	for _, c := range []*cobra.Command{advanceCmd, retreatCmd, moveCmd, batchMoveCmd} {
		c.Flags().String("notes", "", "Notes recorded on the transition")
	}

	pipelineCmd.AddCommand(boardCmd, advanceCmd, retreatCmd, moveCmd, batchMoveCmd, historyCmd, pipelineStatsCmd)
	rootCmd.AddCommand(pipelineCmd)
}
