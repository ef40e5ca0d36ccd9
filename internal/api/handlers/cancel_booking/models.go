package cancel_booking

import (
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancelledBy        string  `json:"cancelledBy,omitempty"` // customer (по умолчанию) или business
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
// Пустая причина считается отсутствующей
func (r *CancelBookingRequest) ToServiceRequest() *models.CancelBookingRequest {
	var reason *string
	if r.CancellationReason != nil && strings.TrimSpace(*r.CancellationReason) != "" {
		reason = r.CancellationReason
	}

	return &models.CancelBookingRequest{
		CancelledBy:        r.CancelledBy,
		CancellationReason: reason,
	}
}
