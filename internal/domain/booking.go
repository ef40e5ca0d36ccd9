package domain

import (
	"time"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	StatusPending             BookingStatus = "pending"
	StatusConfirmed           BookingStatus = "confirmed"
	StatusCompleted           BookingStatus = "completed"
	StatusCancelledByCustomer BookingStatus = "cancelled_by_customer"
	StatusCancelledByBusiness BookingStatus = "cancelled_by_business"
	StatusNoShow              BookingStatus = "no_show"
)

// IsValid returns true for a known status
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted,
		StatusCancelledByCustomer, StatusCancelledByBusiness, StatusNoShow:
		return true
	}
	return false
}

// IsCancelled returns true for both cancellation flavours
func (s BookingStatus) IsCancelled() bool {
	return s == StatusCancelledByCustomer || s == StatusCancelledByBusiness
}

// IsTerminal returns true if no transition can leave the status
func (s BookingStatus) IsTerminal() bool {
	return s.IsCancelled() || s == StatusCompleted || s == StatusNoShow
}

// Label is the lifecycle name of the status ("cancelled" for both cancellation flavours)
func (s BookingStatus) Label() string {
	if s.IsCancelled() {
		return "cancelled"
	}
	return string(s)
}

// transitions lists allowed moves of the lifecycle state machine.
// confirmed -> completed is reserved for the lifecycle sweep; callers enforce that.
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending: {
		StatusConfirmed,
		StatusCancelledByCustomer,
		StatusCancelledByBusiness,
		StatusCompleted,
	},
	StatusConfirmed: {
		StatusCompleted,
		StatusCancelledByCustomer,
		StatusCancelledByBusiness,
		StatusNoShow,
	},
}

// CanTransition reports whether from -> to is allowed
func CanTransition(from, to BookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Booking represents a customer's reservation of a service
type Booking struct {
	ID            int64
	BusinessID    int64
	ServiceID     int64
	CustomerID    int64
	Window        TimeWindow
	Status        BookingStatus
	PaymentAmount float64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlocksTime returns true if the booking occupies its window for slot generation.
// Only cancelled bookings release their time.
func (b *Booking) BlocksTime() bool {
	return !b.Status.IsCancelled()
}

// BookingsFilter фильтр для выборки бронирований бизнеса
type BookingsFilter struct {
	BusinessID       int64           // Обязательный параметр
	From             *time.Time      // Бронирования, заканчивающиеся после From (опционально)
	To               *time.Time      // Бронирования, начинающиеся до To (опционально)
	Statuses         []BookingStatus // Фильтр по статусам (опционально)
	IncludeCancelled bool            // Включать ли отменённые бронирования
}
