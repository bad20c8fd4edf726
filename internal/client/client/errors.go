package client

import (
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/sitrack/internal/common"
)

// APIError is returned for any non-2xx response. It unwraps to the sentinel
// matching the status class so callers can use errors.Is.
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (%d): %s", e.Err, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s (%d)", e.Err, e.StatusCode)
}

func (e *APIError) Unwrap() error { return e.Err }

// mapStatus converts an HTTP status into a sentinel error.
func mapStatus(code int) error {
	switch {
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return common.ErrUnauthorized
	case code == http.StatusNotFound:
		return common.ErrNotFound
	case code == http.StatusBadGateway, code == http.StatusServiceUnavailable, code == http.StatusGatewayTimeout:
		return common.ErrUnavailable
	default:
		return common.ErrServer
	}
}
