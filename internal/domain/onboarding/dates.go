package onboarding

import "time"

// parseDate accepts RFC3339 or YYYY-MM-DD; empty input yields the
// zero time with no error.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}
