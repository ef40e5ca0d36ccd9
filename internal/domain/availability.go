package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// WeeklyAvailabilityRule is a recurring working interval on one day of the week.
// Rules of one business and day must not overlap; that is enforced on write.
type WeeklyAvailabilityRule struct {
	ID         int64
	BusinessID int64
	DayOfWeek  time.Weekday // 0 = Sunday ... 6 = Saturday
	StartTime  types.TimeString
	EndTime    types.TimeString
}

// IsValid returns true when the rule describes a non-empty interval
func (r *WeeklyAvailabilityRule) IsValid() bool {
	if r.DayOfWeek < time.Sunday || r.DayOfWeek > time.Saturday {
		return false
	}
	if r.StartTime.Validate() != nil || r.EndTime.Validate() != nil {
		return false
	}
	return r.StartTime.IsBefore(r.EndTime)
}

// BlockedDate closes a business for a whole day or, with bounds, for part of it
type BlockedDate struct {
	ID         int64
	BusinessID int64
	Date       time.Time // calendar date, time of day ignored
	StartTime  *types.TimeString
	EndTime    *types.TimeString
	Reason     *string
}

// IsFullDay returns true when the record blocks the entire day
func (b *BlockedDate) IsFullDay() bool {
	return b.StartTime == nil || b.EndTime == nil
}

// AppliesTo reports whether the record belongs to the given calendar date
func (b *BlockedDate) AppliesTo(date time.Time) bool {
	return SameDate(b.Date, date)
}

// SameDate compares calendar dates, ignoring time of day and location
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly returns midnight of the calendar date of t in loc
func DateOnly(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
