package api

import (
	"fmt"
	"strings"
)

// Error is the uniform failure shape surfaced by every outbound call and by
// webhook handling. It is constructed once and never mutated afterwards.
type Error struct {
	Message string `json:"message"`

	// StatusCode is the HTTP status of the failed call, 0 when the failure
	// happened before any response was received.
	StatusCode int `json:"status_code,omitempty"`

	// Errors carries field-level validation details keyed by field name.
	Errors map[string][]string `json:"errors,omitempty"`

	// RetryAfter is the server-suggested wait in seconds, 0 when absent.
	RetryAfter int `json:"retry_after,omitempty"`

	// RateLimit is the throttling snapshot taken at failure time, if the
	// response carried rate-limit headers.
	RateLimit *RateLimitInfo `json:"rate_limit,omitempty"`
}

func (e *Error) Error() string {
	var sb strings.Builder
	if e.StatusCode > 0 {
		fmt.Fprintf(&sb, "wasender: %s (status %d)", e.Message, e.StatusCode)
	} else {
		fmt.Fprintf(&sb, "wasender: %s", e.Message)
	}
	if len(e.Errors) > 0 {
		fmt.Fprintf(&sb, " [%d field error(s)]", len(e.Errors))
	}
	return sb.String()
}

// IsUnauthorized reports whether the error maps to HTTP 401.
func (e *Error) IsUnauthorized() bool {
	return e.StatusCode == 401
}

// IsRateLimited reports whether the error maps to HTTP 429.
func (e *Error) IsRateLimited() bool {
	return e.StatusCode == 429
}

// NewError builds an Error with just a message and status code.
func NewError(message string, statusCode int) *Error {
	return &Error{Message: message, StatusCode: statusCode}
}
