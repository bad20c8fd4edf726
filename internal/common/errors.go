// Package common defines shared constants and sentinel errors used across
// client and backend layers of SITRACK. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Authentication errors.
	ErrAuthentication = errors.New("invalid credentials")
	ErrUnauthorized   = errors.New("unauthorized")

	// Transport / backend errors.
	ErrUnavailable = errors.New("server unavailable")
	ErrNotFound    = errors.New("not found")
	ErrServer      = errors.New("server error")
	ErrBadResponse = errors.New("malformed response")

	// Session errors (invalid or malformed token).
	ErrDecode = errors.New("malformed token")

	// Store errors.
	ErrEmptyID = errors.New("empty identifier")
)
