package domain

// Slot is a candidate bookable interval the length of a service, tagged with availability
type Slot struct {
	Window    TimeWindow
	Available bool
}
