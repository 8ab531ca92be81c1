package models

import (
	"strings"
	"time"
)

// Actor identifies who performed an administrative action.
type Actor struct {
	UserID    string `json:"userId"`
	Role      string `json:"role"`
	Email     string `json:"email,omitempty"`
	IP        string `json:"ip,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
}

// Creator is the minimal identity stamped on domain records.
type Creator struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// EntityRef points at the entity an action targeted.
type EntityRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ClampLimit bounds a caller-supplied list limit to [1, 200], substituting
// fallback when the limit is unset.
func ClampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > 200 {
		return 200
	}
	return limit
}

// FormatTimestamp renders a timestamp the way persisted records store it:
// UTC, RFC 3339 with nanoseconds. Hashes are computed over this rendering so
// a stored record re-hashes identically after a round trip.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseTimestamp parses a timestamp stored by FormatTimestamp.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
