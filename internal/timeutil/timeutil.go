package timeutil

import (
	"fmt"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// DefaultTimezone is used when no timezone is configured or the configured one cannot be loaded.
const DefaultTimezone = "America/New_York"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// NormalizeDate validates a YYYY-MM-DD string and returns it in canonical form.
func NormalizeDate(value string) (string, error) {
	parsed, err := ParseDate(value)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return FormatDate(parsed), nil
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the calendar date of now in loc.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return FormatDate(now.In(loc))
}

// LoadLocation resolves a timezone name, falling back to DefaultTimezone and then UTC.
func LoadLocation(name string) *time.Location {
	if name == "" {
		name = DefaultTimezone
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}
