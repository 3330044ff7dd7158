// Package service implements the application's domain operations on top of
// the store interfaces.
package service

import "errors"

// Common service errors
var (
	// ErrInvalidCredentials is returned when a login attempt fails.
	// An unknown username and a wrong password produce the same error,
	// so callers cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
