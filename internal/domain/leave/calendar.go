package leave

import (
	"time"

	"hrx/internal/domain/data"
)

// At most this many per-day indicators are listed; further leaves on the same
// day only raise the count and set Overflow.
const maxDayIndicators = 2

type CalendarDay struct {
	Day        int      `json:"day"`
	IsToday    bool     `json:"isToday"`
	LeaveIDs   []string `json:"leaveIds,omitempty"`
	LeaveCount int      `json:"leaveCount"`
	Overflow   bool     `json:"overflow"`
}

type Calendar struct {
	Year         int           `json:"year"`
	Month        time.Month    `json:"month"`
	LeadingBlank int           `json:"leadingBlank"`
	Days         []CalendarDay `json:"days"`
}

// BuildCalendar buckets each request into every day of the displayed month it
// overlaps. The month and the highlighted "today" come from the caller; the
// calendar itself is date-agnostic.
func BuildCalendar(year int, month time.Month, today time.Time, requests []data.LeaveRequest) Calendar {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	byDay := make(map[int][]string)
	for _, request := range requests {
		start, err := time.Parse("2006-01-02", request.StartDate)
		if err != nil {
			continue
		}
		end, err := time.Parse("2006-01-02", request.EndDate)
		if err != nil || end.Before(start) {
			continue
		}
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if d.Year() == year && d.Month() == month {
				byDay[d.Day()] = append(byDay[d.Day()], request.ID)
			}
		}
	}

	calendar := Calendar{
		Year:         year,
		Month:        month,
		LeadingBlank: int(first.Weekday()),
		Days:         make([]CalendarDay, 0, daysInMonth),
	}
	for day := 1; day <= daysInMonth; day++ {
		ids := byDay[day]
		cell := CalendarDay{
			Day:        day,
			IsToday:    today.Year() == year && today.Month() == month && today.Day() == day,
			LeaveCount: len(ids),
			Overflow:   len(ids) > maxDayIndicators,
		}
		if len(ids) > maxDayIndicators {
			cell.LeaveIDs = ids[:maxDayIndicators]
		} else {
			cell.LeaveIDs = ids
		}
		calendar.Days = append(calendar.Days, cell)
	}
	return calendar
}
