// Package cancellation decides whether a booking may still be cancelled under
// a business's cancellation policy.
package cancellation

import (
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

const (
	ReasonAlreadyStarted = "booking has already started/passed"
	reasonAlreadyFormat  = "booking already %s"
	reasonTooLateFormat  = "cancellation requires at least %d hours notice, only %.1f hours remaining"
)

// Decision result of a cancellation check.
// A refused cancellation is a normal result, not an error.
type Decision struct {
	CanCancel         bool
	Reason            *string
	HoursUntilBooking float64
}

// Evaluate checks booking against policy at the moment now
func Evaluate(booking *domain.Booking, policy domain.CancellationPolicy, now time.Time) Decision {
	hours := HoursUntil(booking.Window.Start, now)
	decision := Decision{HoursUntilBooking: roundHours(hours)}

	switch {
	case booking.Status.IsTerminal():
		decision.Reason = reason(fmt.Sprintf(reasonAlreadyFormat, booking.Status.Label()))
	case hours < 0:
		decision.Reason = reason(ReasonAlreadyStarted)
	case hours < float64(policy.EffectiveRequiredHours()):
		decision.Reason = reason(fmt.Sprintf(reasonTooLateFormat, policy.EffectiveRequiredHours(), hours))
	default:
		decision.CanCancel = true
	}

	return decision
}

// HoursUntil returns fractional hours from now to start; negative once start has passed
func HoursUntil(start, now time.Time) float64 {
	return start.Sub(now).Hours()
}

// roundHours оставляет два знака после запятой для ответа клиенту
func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

func reason(s string) *string {
	return &s
}
