package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeWindow is returned when a window's start is not strictly before its end
var ErrInvalidTimeWindow = errors.New("domain: time window start must be before end")

// TimeWindow is a half-open interval [Start, End)
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// NewTimeWindow validates start < end
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if !start.Before(end) {
		return TimeWindow{}, fmt.Errorf("%w: start=%s end=%s", ErrInvalidTimeWindow,
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return TimeWindow{Start: start, End: end}, nil
}

// Duration returns End - Start
func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// IsEmpty returns true for zero-length or inverted windows
func (w TimeWindow) IsEmpty() bool {
	return !w.Start.Before(w.End)
}

// Overlaps reports whether two half-open windows intersect.
// Adjacent windows (a.End == b.Start) do not overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// Subtract removes other from w and returns the remaining parts (0, 1 or 2 windows)
func (w TimeWindow) Subtract(other TimeWindow) []TimeWindow {
	if !w.Overlaps(other) {
		return []TimeWindow{w}
	}

	parts := make([]TimeWindow, 0, 2)
	if w.Start.Before(other.Start) {
		parts = append(parts, TimeWindow{Start: w.Start, End: other.Start})
	}
	if other.End.Before(w.End) {
		parts = append(parts, TimeWindow{Start: other.End, End: w.End})
	}
	return parts
}

// In returns the window with both bounds converted to loc
func (w TimeWindow) In(loc *time.Location) TimeWindow {
	return TimeWindow{Start: w.Start.In(loc), End: w.End.In(loc)}
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("[%s, %s)", w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
}
