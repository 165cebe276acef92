package app

import "errors"

// Sentinel errors for common application errors
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotLoggedIn     = errors.New("not logged in, run 'talentpipe login'")
)
