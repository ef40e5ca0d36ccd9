package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/cancellation"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	businessRepo BusinessRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	businessRepo BusinessRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		businessRepo: businessRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование, если это разрешает политика отмены бизнеса.
// Клиент отменяет со статусом cancelled_by_customer, бизнес со статусом cancelled_by_business.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by %s", bookingID, req.CancelledBy)

	cancelStatus, err := models.ToCancelStatus(req.CancelledBy)
	if err != nil {
		s.logger.Warn("Cancel: invalid cancelledBy=%q for booking id=%d", req.CancelledBy, bookingID)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var cancelled *domain.Booking
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.getBooking(ctx, "Cancel", bookingID)
		if err != nil {
			return err
		}

		business, err := s.businessRepo.GetByID(ctx, booking.BusinessID)
		if err != nil {
			s.logger.Error("Cancel: failed to get business id=%d: %v", booking.BusinessID, err)
			return fmt.Errorf("%w: Cancel - business lookup: %v", ErrInternal, err)
		}

		// Проверяем политику отмены
		decision := cancellation.Evaluate(booking, business.Policy, s.timeProvider.Now())
		if !decision.CanCancel {
			reason := ""
			if decision.Reason != nil {
				reason = *decision.Reason
			}
			s.logger.Warn("Cancel: booking id=%d cannot be cancelled: %s", bookingID, reason)
			return &CancelRefusedError{Reason: reason}
		}

		if !domain.CanTransition(booking.Status, cancelStatus) {
			s.logger.Warn("Cancel: transition %s -> %s not allowed for booking id=%d", booking.Status, cancelStatus, bookingID)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, cancelStatus)
		}

		if err := s.bookingRepo.Cancel(ctx, bookingID, cancelStatus, req.CancellationReason); err != nil {
			if errors.Is(err, bookingRepo.ErrCannotCancel) {
				s.logger.Warn("Cancel: booking id=%d changed status during cancellation", bookingID)
				return ErrConflict
			}
			s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		cancelled, err = s.getBooking(ctx, "Cancel", bookingID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d with status=%s", bookingID, cancelStatus)
	return models.FromDomainBooking(cancelled), nil
}

// UpdateStatus выполняет ручной переход статуса (pending -> confirmed, confirmed -> no_show).
// Отмена выполняется только через Cancel, завершение только через sweep.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if newStatus.IsCancelled() || newStatus == domain.StatusCompleted {
		s.logger.Warn("UpdateStatus: status=%s cannot be set manually", newStatus)
		return nil, fmt.Errorf("%w: %s cannot be set manually", ErrInvalidTransition, newStatus)
	}

	var updated *domain.Booking
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.getBooking(ctx, "UpdateStatus", bookingID)
		if err != nil {
			return err
		}

		if !domain.CanTransition(booking.Status, newStatus) {
			s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking id=%d", booking.Status, newStatus, bookingID)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
		}

		if err := s.bookingRepo.UpdateStatus(ctx, bookingID, booking.Status, newStatus); err != nil {
			if errors.Is(err, bookingRepo.ErrStatusChanged) {
				s.logger.Warn("UpdateStatus: booking id=%d changed status concurrently", bookingID)
				return ErrConflict
			}
			s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		updated, err = s.getBooking(ctx, "UpdateStatus", bookingID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return models.FromDomainBooking(updated), nil
}

// Вспомогательные методы

// getBooking получает бронирование и переводит ошибки репозитория в ошибки сервиса
func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}
