package shared

import "time"

// ParseDate accepts RFC3339 or YYYY-MM-DD.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}

// ParseMonth parses a YYYY-MM query value into its year and month.
func ParseMonth(value string) (int, time.Month, error) {
	parsed, err := time.Parse("2006-01", value)
	if err != nil {
		return 0, 0, err
	}
	return parsed.Year(), parsed.Month(), nil
}
