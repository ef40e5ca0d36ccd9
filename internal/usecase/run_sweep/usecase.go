package run_sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// UseCase use case перевода завершившихся бронирований в completed.
// Прогон идемпотентен: повторный запуск находит 0 бронирований,
// поэтому параллельные запуски не требуют блокировок.
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	statuses     []domain.BookingStatus
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// includePending добавляет pending к подтверждённым бронированиям.
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	includePending bool,
	metrics Metrics,
	logger Logger,
) *UseCase {
	statuses := []domain.BookingStatus{domain.StatusConfirmed}
	if includePending {
		statuses = append(statuses, domain.StatusPending)
	}

	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		statuses:     statuses,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет один прогон в транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	trigger := req.Trigger
	if trigger == "" {
		trigger = TriggerHTTP
	}

	now := uc.timeProvider.Now()
	uc.logger.Info("RunSweep: trigger=%s, now=%s, statuses=%v", trigger, now.Format(time.RFC3339), uc.statuses)

	var ids []int64
	err := uc.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		ids, err = uc.bookingRepo.CompleteElapsed(ctx, uc.statuses, now)
		return err
	})
	// Откат транзакции отменяет обновление целиком
	if err != nil {
		ids = nil
	}

	if uc.metrics != nil {
		uc.metrics.ObserveSweep(trigger, len(ids), err)
	}

	if err != nil {
		uc.logger.Error("RunSweep: failed to complete elapsed bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to complete elapsed bookings: %v", ErrInternal, err)
	}

	if len(ids) > 0 {
		uc.logger.Info("RunSweep: completed %d bookings: %v", len(ids), ids)
	} else {
		uc.logger.Info("RunSweep: nothing to complete")
	}

	return &Response{
		Count:      len(ids),
		BookingIDs: ids,
		RanAt:      now,
	}, nil
}
