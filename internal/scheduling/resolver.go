package scheduling

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ResolveWorkingWindows returns the working windows of the calendar date in loc,
// sorted by start. An empty result means the business is closed that day.
//
// Rules that do not describe a valid interval (start >= end, bad HH:MM) are not
// fatal: they are skipped and returned so the caller can log them.
func ResolveWorkingWindows(
	rules []domain.WeeklyAvailabilityRule,
	date time.Time,
	loc *time.Location,
) ([]domain.TimeWindow, []domain.WeeklyAvailabilityRule) {
	if loc == nil {
		loc = time.UTC
	}

	weekday := Weekday(date)
	windows := make([]domain.TimeWindow, 0)
	skipped := make([]domain.WeeklyAvailabilityRule, 0)

	for _, rule := range rules {
		if rule.DayOfWeek != weekday {
			continue
		}
		if !rule.IsValid() {
			skipped = append(skipped, rule)
			continue
		}

		// Переход на летнее время может "съесть" интервал целиком
		w, err := domain.NewTimeWindow(rule.StartTime.On(date, loc), rule.EndTime.On(date, loc))
		if err != nil {
			skipped = append(skipped, rule)
			continue
		}
		windows = append(windows, w)
	}

	sort.SliceStable(windows, func(i, j int) bool {
		return windows[i].Start.Before(windows[j].Start)
	})

	return windows, skipped
}

// Weekday of the calendar date, independent of the value's location
func Weekday(date time.Time) time.Weekday {
	return time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, time.UTC).Weekday()
}
