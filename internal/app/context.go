package app

import "context"

type contextKey struct{}

var appContextKey = contextKey{}

// FromContext returns the App installed by the root command's pre-run, or
// nil when the command runs without one (config, completion).
func FromContext(ctx context.Context) *App {
	application, ok := ctx.Value(appContextKey).(*App)
	if !ok {
		return nil
	}
	return application
}

// NewContext returns a context carrying the App for subcommands to retrieve.
func NewContext(ctx context.Context, application *App) context.Context {
	return context.WithValue(ctx, appContextKey, application)
}
