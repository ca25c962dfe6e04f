package helper_util

import (
	"time"
)

// ParseTime parses an RFC3339 timestamp as stored on graph vertices.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// ParseDate parses a calendar date as stored on TestResult vertices.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
