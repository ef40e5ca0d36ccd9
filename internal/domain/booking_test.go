package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var terminalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelledByCustomer,
	StatusCancelledByBusiness,
	StatusNoShow,
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	for _, s := range terminalStatuses {
		assert.True(t, s.IsTerminal(), s)
	}
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
}

func TestBookingStatus_Label(t *testing.T) {
	assert.Equal(t, "cancelled", StatusCancelledByCustomer.Label())
	assert.Equal(t, "cancelled", StatusCancelledByBusiness.Label())
	assert.Equal(t, "completed", StatusCompleted.Label())
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusConfirmed))
	assert.True(t, CanTransition(StatusConfirmed, StatusCompleted))
	assert.True(t, CanTransition(StatusConfirmed, StatusCancelledByCustomer))
	assert.True(t, CanTransition(StatusConfirmed, StatusNoShow))

	assert.False(t, CanTransition(StatusPending, StatusNoShow))
	assert.False(t, CanTransition(StatusConfirmed, StatusPending))

	// Из терминальных статусов выхода нет
	for _, from := range terminalStatuses {
		for _, to := range []BookingStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelledByCustomer, StatusNoShow} {
			assert.False(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestBooking_BlocksTime(t *testing.T) {
	b := &Booking{Status: StatusConfirmed, Window: window(10, 0, 10, 30)}
	assert.True(t, b.BlocksTime())

	b.Status = StatusNoShow
	assert.True(t, b.BlocksTime())

	b.Status = StatusCancelledByBusiness
	assert.False(t, b.BlocksTime())
}
