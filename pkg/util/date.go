package util

import (
	"strconv"
	"time"
)

// DateLayout is the civil-date format used across data files and API
// payloads.
const DateLayout = "2006-01-02"

// ParseDate parses a civil date, accepting a bare date, an RFC3339
// timestamp (time part dropped) or unix seconds.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC().Truncate(24 * time.Hour), true
	}
	if ts, err := strconv.ParseInt(s, 10, 64); err == nil && ts > 0 {
		return time.Unix(ts, 0).UTC().Truncate(24 * time.Hour), true
	}
	return time.Time{}, false
}

// FormatDate renders t as a civil date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
