package leave

import (
	"errors"
	"time"
)

// CalculateDays returns the inclusive day count between start and end,
// never less than 1.
func CalculateDays(start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, errors.New("end date before start date")
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days, nil
}
