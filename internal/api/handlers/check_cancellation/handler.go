package check_cancellation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	checkCancellation "github.com/m04kA/SMC-SchedulingService/internal/usecase/check_cancellation"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
)

type Handler struct {
	useCase CheckCancellationUseCase
	logger  Logger
}

func NewHandler(useCase CheckCancellationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/cancellation
// Отказ в отмене возвращается как 200 с canCancel=false и причиной
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingIDStr := mux.Vars(r)["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("GET /bookings/{id}/cancellation - Invalid booking ID: %q", bookingIDStr)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkCancellation.Request{BookingID: bookingID})
	if err != nil {
		switch {
		case errors.Is(err, checkCancellation.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{id}/cancellation - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, checkCancellation.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/cancellation - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{id}/cancellation - Failed to check cancellation: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id}/cancellation - Checked: booking_id=%d, can_cancel=%t", bookingID, result.CanCancel)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
