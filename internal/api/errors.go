package api

import "errors"

// Sentinel errors for HTTP-facing failures returned by the API client.
var (
	ErrNotFound       = errors.New("not found")
	ErrForbidden      = errors.New("forbidden")
	ErrSessionExpired = errors.New("session expired, please log in again")
)
