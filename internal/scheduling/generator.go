package scheduling

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// SlotInput everything the generator needs for one business, service and date
type SlotInput struct {
	Date            time.Time      // calendar date; time of day and location are ignored
	Location        *time.Location // business timezone
	Rules           []domain.WeeklyAvailabilityRule
	BlockedDates    []domain.BlockedDate
	Bookings        []*domain.Booking
	ServiceDuration time.Duration
	Granularity     time.Duration // step between candidate starts
	MinNotice       time.Duration
	MaxAdvanceDays  int // 0 = unlimited
	Now             time.Time
}

// SlotResult generated slots plus the rules that had to be skipped
type SlotResult struct {
	Slots        []domain.Slot
	SkippedRules []domain.WeeklyAvailabilityRule
}

// AvailableCount returns the number of bookable slots
func (r SlotResult) AvailableCount() int {
	n := 0
	for _, s := range r.Slots {
		if s.Available {
			n++
		}
	}
	return n
}

// GenerateSlots lists every candidate slot of the date in chronological order.
//
// Candidates start at every Granularity step from the beginning of each working window and
// last ServiceDuration; a candidate that would end after its window is not emitted.
// Unbookable candidates are kept with Available=false: past starts, starts inside the
// minimum notice, dates beyond the advance window, and overlaps with any booking that
// still holds its time.
func GenerateSlots(in SlotInput) SlotResult {
	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}

	windows, skipped := ResolveWorkingWindows(in.Rules, in.Date, loc)
	result := SlotResult{Slots: make([]domain.Slot, 0), SkippedRules: skipped}

	if len(windows) == 0 || in.ServiceDuration <= 0 {
		return result
	}
	if IsFullDayBlocked(in.BlockedDates, in.Date) {
		return result
	}
	windows = ApplyBlockedDates(windows, in.BlockedDates, in.Date, loc)

	step := in.Granularity
	if step <= 0 {
		step = time.Duration(domain.DefaultSlotGranularityMinutes) * time.Minute
	}

	busy := busyWindows(in.Bookings)
	earliest := in.Now.Add(in.MinNotice)

	for _, w := range windows {
		if w.IsEmpty() || w.Duration() < in.ServiceDuration {
			continue
		}

		// Граница итераций выводится из длины окна
		maxSteps := int(w.Duration()/step) + 1
		for i := 0; i < maxSteps; i++ {
			start := w.Start.Add(time.Duration(i) * step)
			end := start.Add(in.ServiceDuration)
			if end.After(w.End) {
				break
			}

			candidate, err := domain.NewTimeWindow(start, end)
			if err != nil {
				break
			}
			result.Slots = append(result.Slots, domain.Slot{
				Window:    candidate,
				Available: isBookable(candidate, in.Now, earliest, in.MaxAdvanceDays, loc, busy),
			})
		}
	}

	return result
}

func isBookable(
	candidate domain.TimeWindow,
	now time.Time,
	earliest time.Time,
	maxAdvanceDays int,
	loc *time.Location,
	busy []domain.TimeWindow,
) bool {
	if candidate.Start.Before(now) {
		return false
	}
	if candidate.Start.Before(earliest) {
		return false
	}
	if maxAdvanceDays > 0 && DaysBetween(now, candidate.Start, loc) > maxAdvanceDays {
		return false
	}
	return !overlapsAny(candidate, busy)
}

func busyWindows(bookings []*domain.Booking) []domain.TimeWindow {
	busy := make([]domain.TimeWindow, 0, len(bookings))
	for _, b := range bookings {
		if b == nil || !b.BlocksTime() || b.Window.IsEmpty() {
			continue
		}
		busy = append(busy, b.Window)
	}
	return busy
}

func overlapsAny(candidate domain.TimeWindow, busy []domain.TimeWindow) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}

// DaysBetween counts calendar days from the date of from to the date of to, both taken in loc
func DaysBetween(from, to time.Time, loc *time.Location) int {
	f := from.In(loc)
	t := to.In(loc)
	fd := time.Date(f.Year(), f.Month(), f.Day(), 0, 0, 0, 0, time.UTC)
	td := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(td.Sub(fd).Hours() / 24)
}
