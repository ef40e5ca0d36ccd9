package check_cancellation

import (
	checkCancellation "github.com/m04kA/SMC-SchedulingService/internal/usecase/check_cancellation"
)

// CancellationCheckResponse HTTP response model
type CancellationCheckResponse struct {
	BookingID         int64   `json:"bookingId"`
	CanCancel         bool    `json:"canCancel"`
	Reason            *string `json:"reason"`
	HoursUntilBooking float64 `json:"hoursUntilBooking"`
	PolicyDescription string  `json:"policyDescription"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkCancellation.Response) *CancellationCheckResponse {
	return &CancellationCheckResponse{
		BookingID:         resp.BookingID,
		CanCancel:         resp.CanCancel,
		Reason:            resp.Reason,
		HoursUntilBooking: resp.HoursUntilBooking,
		PolicyDescription: resp.PolicyDescription,
	}
}
