package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talentpipe/talentpipe/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  "View and update the backend endpoints and client settings",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Config commands must run before the endpoints are filled in.
		return config.InitializeAllowIncomplete()
	},
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.AppConfig
		cmd.Println(titleStyle.Render("Configuration"))
		cmd.Printf("%s %s\n", labelStyle.Render("Config File:"), config.GetConfigPath())
		cmd.Printf("%s %s\n", labelStyle.Render("API Base URL:"), configured(cfg.APIBaseURL))
		cmd.Printf("%s %s\n", labelStyle.Render("Auth URL:"), configured(cfg.AuthURL))
		if cfg.AuthAnonKey != "" {
			cmd.Printf("%s ✓ Configured\n", labelStyle.Render("Auth Key:"))
		} else {
			cmd.Printf("%s ✗ Not configured\n", labelStyle.Render("Auth Key:"))
		}
		cmd.Printf("%s %d\n", labelStyle.Render("Request Timeout (s):"), cfg.RequestTimeoutSeconds)
		cmd.Printf("%s %d\n", labelStyle.Render("Page Size:"), cfg.PageSize)
		if cfg.RememberEmail != "" {
			cmd.Printf("%s %s\n", labelStyle.Render("Remembered Email:"), cfg.RememberEmail)
		}
		return nil
	},
}

func configured(value string) string {
	if value == "" {
		return "✗ Not configured"
	}
	return valueStyle.Render(value)
}

var validConfigKeys = []string{
	"api_base_url", "auth_url", "auth_anon_key",
	"request_timeout_seconds", "page_size", "remember_email",
}

var setConfigCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Update a configuration value",
	Example: `  talentpipe config set api_base_url https://hr.example.com
  talentpipe config set auth_url https://abc.supabase.co
  talentpipe config set page_size 20`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		valid := false
		for _, k := range validConfigKeys {
			if k == key {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown key %q, valid keys: %v", key, validConfigKeys)
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		cmd.Printf("✓ %s updated\n", key)
		return nil
	},
}

var getConfigCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Println(config.Get(args[0]))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(config.GetConfigPath())
	},
}

func init() {
	configCmd.AddCommand(showConfigCmd, setConfigCmd, getConfigCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}
