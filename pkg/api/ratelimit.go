package api

import (
	"net/http"
	"strconv"
	"time"
)

// RateLimitInfo mirrors the remote server's throttling counters as reported
// in response headers. It is a reflection of the last response only, not
// state owned by this library.
type RateLimitInfo struct {
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	Reset     int64 `json:"reset"` // unix seconds
}

// ResetTime returns the reset instant as a time.Time.
func (r *RateLimitInfo) ResetTime() time.Time {
	return time.Unix(r.Reset, 0)
}

// ParseRateLimit extracts rate-limit counters from response headers.
// It returns nil when the limit header is absent so callers can attach the
// snapshot only when the server actually reported one.
func ParseRateLimit(h http.Header) *RateLimitInfo {
	limitRaw := h.Get("X-RateLimit-Limit")
	if limitRaw == "" {
		return nil
	}

	info := &RateLimitInfo{}
	if n, err := strconv.Atoi(limitRaw); err == nil {
		info.Limit = n
	}
	if n, err := strconv.Atoi(h.Get("X-RateLimit-Remaining")); err == nil {
		info.Remaining = n
	}
	if n, err := strconv.ParseInt(h.Get("X-RateLimit-Reset"), 10, 64); err == nil {
		info.Reset = n
	}
	return info
}

// ParseRetryAfter returns the Retry-After header in seconds, 0 when absent
// or unparseable.
func ParseRetryAfter(h http.Header) int {
	raw := h.Get("Retry-After")
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
