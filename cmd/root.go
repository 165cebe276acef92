package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/talentpipe/talentpipe/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "talentpipe",
	Short: "Recruitment management CLI",
	Long: `Talentpipe is a CLI/TUI client for a recruitment management backend.
It tracks candidates and job postings, moves applications through the hiring
pipeline, shows dashboard metrics, and exports reports.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if skipAppInit(cmd) {
			return nil
		}

		// Initialize app with all dependencies
		application, err := app.NewApp(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}
		activeApp = application

		// Store app in command context
		cmd.SetContext(app.NewContext(cmd.Context(), application))
		return nil
	},
	SilenceUsage: true,
}

// activeApp is kept for cleanup after Execute returns.
var activeApp *app.App

// skipAppInit exempts commands that must run before the endpoints are
// configured.
func skipAppInit(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" {
			return true
		}
	}
	switch cmd.Name() {
	case "help", "completion", "version":
		return true
	}
	return false
}

// Execute runs the root command
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()

	if activeApp != nil {
		activeApp.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

// requireApp fetches the initialized app from the command context.
func requireApp(cmd *cobra.Command) (*app.App, error) {
	application := app.FromContext(cmd.Context())
	if application == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return application, nil
}

// requireLogin is requireApp plus a cached-session check.
func requireLogin(cmd *cobra.Command) (*app.App, error) {
	application, err := requireApp(cmd)
	if err != nil {
		return nil, err
	}
	if err := application.RequireSession(); err != nil {
		return nil, err
	}
	return application, nil
}
