package check_cancellation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/cancellation"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	businessRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/business"
)

// UseCase use case проверки возможности отмены бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	businessRepo BusinessRepository
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	businessRepo BusinessRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		businessRepo: businessRepo,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute проверяет, можно ли отменить бронирование прямо сейчас
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckCancellation: booking=%d", req.BookingID)

	if req.BookingID <= 0 {
		uc.logger.Warn("CheckCancellation: invalid booking id=%d", req.BookingID)
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CheckCancellation: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CheckCancellation: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	business, err := uc.businessRepo.GetByID(ctx, booking.BusinessID)
	if err != nil {
		// Бронирование без бизнеса означает нарушение целостности данных
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Error("CheckCancellation: business id=%d of booking id=%d not found", booking.BusinessID, booking.ID)
		} else {
			uc.logger.Error("CheckCancellation: failed to get business id=%d: %v", booking.BusinessID, err)
		}
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	decision := cancellation.Evaluate(booking, business.Policy, uc.timeProvider.Now())
	if uc.metrics != nil {
		uc.metrics.ObserveCancellationCheck(decision.CanCancel)
	}

	uc.logger.Info("CheckCancellation: booking=%d canCancel=%t hoursUntilBooking=%.2f",
		booking.ID, decision.CanCancel, decision.HoursUntilBooking)

	return &Response{
		BookingID:         booking.ID,
		CanCancel:         decision.CanCancel,
		Reason:            decision.Reason,
		HoursUntilBooking: decision.HoursUntilBooking,
		PolicyDescription: cancellation.PolicyDescription(business.Policy),
	}, nil
}
