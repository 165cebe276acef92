package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	APIBaseURL            string `mapstructure:"api_base_url"`
	AuthURL               string `mapstructure:"auth_url"`
	AuthAnonKey           string `mapstructure:"auth_anon_key"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds"`
	PageSize              int    `mapstructure:"page_size"`
	RememberEmail         string `mapstructure:"remember_email"`
}

var AppConfig *Config

// Initialize loads or creates the configuration file and checks that the
// required endpoints are set.
func Initialize() error {
	if err := load(); err != nil {
		return err
	}
	return AppConfig.Validate()
}

// InitializeAllowIncomplete loads the configuration without requiring the
// endpoints, used by the config commands that exist to fill them in.
func InitializeAllowIncomplete() error {
	return load()
}

func load() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".talentpipe")
	configFile := filepath.Join(configDir, "config.yaml")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := createDefaultConfig(configFile); err != nil {
			return err
		}
	}

	viper.SetConfigFile(configFile)
	viper.SetConfigType("yaml")

	viper.SetDefault("api_base_url", "")
	viper.SetDefault("auth_url", "")
	viper.SetDefault("auth_anon_key", "")
	viper.SetDefault("request_timeout_seconds", 10)
	viper.SetDefault("page_size", 10)
	viper.SetDefault("remember_email", "")

	// Environment overrides: TALENTPIPE_API_BASE_URL etc.
	viper.SetEnvPrefix("talentpipe")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	AppConfig = &Config{}
	if err := viper.Unmarshal(AppConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return nil
}

// Validate checks the required endpoints. Both external endpoints must be
// configured before any command can run.
func (c *Config) Validate() error {
	missing := []string{}
	if c.APIBaseURL == "" {
		missing = append(missing, "api_base_url")
	}
	if c.AuthURL == "" {
		missing = append(missing, "auth_url")
	}
	if c.AuthAnonKey == "" {
		missing = append(missing, "auth_anon_key")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration %v: edit %s or set TALENTPIPE_* environment variables", missing, GetConfigPath())
	}
	if c.RequestTimeoutSeconds <= 0 {
		c.RequestTimeoutSeconds = 10
	}
	if c.PageSize <= 0 {
		c.PageSize = 10
	}
	return nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) error {
	defaultConfig := `# talentpipe configuration
# Backend REST API base URL, e.g. https://hr.example.com
api_base_url: ""

# Auth provider endpoint and publishable key (keep this file secure!)
auth_url: ""
auth_anon_key: ""

request_timeout_seconds: 10
page_size: 10

# Last login email, filled in by "talentpipe login --remember"
remember_email: ""
`
	return os.WriteFile(path, []byte(defaultConfig), 0600)
}

// Set updates a configuration value
func Set(key, value string) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}

// Get retrieves a configuration value
func Get(key string) string {
	return viper.GetString(key)
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".talentpipe", "config.yaml")
}
