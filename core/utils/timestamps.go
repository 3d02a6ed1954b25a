package utils

import (
	"fmt"
	"time"
)

// EpochSentinel is the reset epoch stored before the first reset ever fires.
const EpochSentinel = "1970-01-01T00:00:00Z"

// FormatUTC renders t as an ISO-8601 UTC string that round-trips through ParseUTC.
func FormatUTC(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseUTC parses an ISO-8601 timestamp and returns it in UTC.
// Offsets other than Z are accepted and converted.
func ParseUTC(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}

// ParseUTCPtr parses an optional column value. nil and "" yield nil.
func ParseUTCPtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := ParseUTC(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
