package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/talentpipe/talentpipe/internal/api"
	"github.com/talentpipe/talentpipe/internal/auth"
	"github.com/talentpipe/talentpipe/internal/config"
	"github.com/talentpipe/talentpipe/internal/store"
)

// App is the dependency container for the CLI application
type App struct {
	Config     *config.Config
	Store      *store.Store
	Sessions   *auth.Manager
	API        *api.Client
	HTTPClient *http.Client
}

// NewApp initializes and returns a new App instance
func NewApp(ctx context.Context) (*App, error) {
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	cfg := config.AppConfig

	st, err := store.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	httpClient := &http.Client{
		Timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
	}

	sessions, err := auth.NewManager(cfg.AuthURL, cfg.AuthAnonKey, httpClient, st)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to initialize auth: %w", err)
	}

	return &App{
		Config:     cfg,
		Store:      st,
		Sessions:   sessions,
		API:        api.NewClient(cfg.APIBaseURL, httpClient, sessions),
		HTTPClient: httpClient,
	}, nil
}

// RequireSession returns an error when no valid login is cached.
func (a *App) RequireSession() error {
	if a.Sessions.CurrentSession() == nil {
		return ErrNotLoggedIn
	}
	return nil
}

// Close closes all resources
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
