package scheduling

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ApplyBlockedDates removes blocked intervals of the calendar date from windows.
// A full-day block (or a block with unusable bounds) closes the day: nil is returned.
// Partial blocks truncate or split the windows they touch.
func ApplyBlockedDates(
	windows []domain.TimeWindow,
	blocked []domain.BlockedDate,
	date time.Time,
	loc *time.Location,
) []domain.TimeWindow {
	if loc == nil {
		loc = time.UTC
	}

	result := windows
	for i := range blocked {
		b := &blocked[i]
		if !b.AppliesTo(date) {
			continue
		}

		block, ok := blockWindow(b, date, loc)
		if !ok {
			return nil
		}

		next := make([]domain.TimeWindow, 0, len(result)+1)
		for _, w := range result {
			next = append(next, w.Subtract(block)...)
		}
		result = next
	}

	return result
}

// blockWindow converts a partial block to absolute instants.
// ok=false means the whole day is blocked.
func blockWindow(b *domain.BlockedDate, date time.Time, loc *time.Location) (domain.TimeWindow, bool) {
	if b.IsFullDay() {
		return domain.TimeWindow{}, false
	}
	if b.StartTime.Validate() != nil || b.EndTime.Validate() != nil {
		return domain.TimeWindow{}, false
	}

	w, err := domain.NewTimeWindow(b.StartTime.On(date, loc), b.EndTime.On(date, loc))
	if err != nil {
		return domain.TimeWindow{}, false
	}
	return w, true
}

// IsFullDayBlocked reports whether any record closes the whole calendar date
func IsFullDayBlocked(blocked []domain.BlockedDate, date time.Time) bool {
	for i := range blocked {
		if blocked[i].AppliesTo(date) && blocked[i].IsFullDay() {
			return true
		}
	}
	return false
}
