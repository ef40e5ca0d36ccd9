package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	businessRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/business"
	configRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/config"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// UseCase use case для получения слотов на дату
type UseCase struct {
	businessRepo     BusinessRepository
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	configRepo       ConfigRepository
	metrics          Metrics
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	businessRepo BusinessRepository,
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	configRepo ConfigRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		businessRepo:     businessRepo,
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		configRepo:       configRepo,
		metrics:          metrics,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%d, service=%d, date=%s",
		req.BusinessID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем бизнес и его часовой пояс
	business, err := uc.businessRepo.GetByID(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailableSlots: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	loc, err := business.Location()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Получаем услугу
	service, err := uc.businessRepo.GetService(ctx, req.BusinessID, req.ServiceID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found in business id=%d", req.ServiceID, req.BusinessID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. Получаем конфигурацию слотов с учетом иерархии
	config, err := uc.configRepo.GetConfigWithHierarchy(ctx, req.BusinessID, ptr.Ptr(req.ServiceID))
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	// Если конфигурация не найдена, используем дефолтные значения
	if config == nil {
		config = domain.DefaultSlotsConfig(req.BusinessID)
		uc.logger.Info("GetAvailableSlots: using default config for business=%d, service=%d",
			req.BusinessID, req.ServiceID)
	} else {
		uc.logger.Info("GetAvailableSlots: using config id=%d", config.ID)
	}

	// 6. Календарная дата в часовом поясе бизнеса
	date := domain.DateOnly(req.Date, loc)
	weekday := scheduling.Weekday(date)

	rules, err := uc.availabilityRepo.GetRulesByBusiness(ctx, req.BusinessID, &weekday)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availability rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability rules: %v", ErrInternal, err)
	}

	blocked, err := uc.availabilityRepo.GetBlockedDates(ctx, req.BusinessID, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocked dates: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked dates: %v", ErrInternal, err)
	}

	// 7. Бронирования, занимающие время в этот день (отменённые не нужны)
	dayStart := date
	dayEnd := date.AddDate(0, 0, 1)
	bookings, err := uc.bookingRepo.GetByBusinessWithFilter(ctx, domain.BookingsFilter{
		BusinessID: req.BusinessID,
		From:       &dayStart,
		To:         &dayEnd,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 8. Генерируем слоты
	result := scheduling.GenerateSlots(scheduling.SlotInput{
		Date:            date,
		Location:        loc,
		Rules:           rules,
		BlockedDates:    blocked,
		Bookings:        bookings,
		ServiceDuration: service.Duration(),
		Granularity:     config.Granularity(),
		MinNotice:       config.MinNotice(),
		MaxAdvanceDays:  config.MaxAdvanceDays,
		Now:             now,
	})

	for _, rule := range result.SkippedRules {
		uc.logger.Warn("GetAvailableSlots: skipped invalid availability rule id=%d (day=%d, %s-%s) of business=%d",
			rule.ID, rule.DayOfWeek, rule.StartTime, rule.EndTime, req.BusinessID)
	}

	available := result.AvailableCount()
	if len(result.Slots) > domain.LegacySlotCap {
		uc.logger.Info("GetAvailableSlots: %d candidates exceed the legacy cap of %d for business=%d, date=%s",
			len(result.Slots), domain.LegacySlotCap, req.BusinessID, date.Format(domain.DateFormat))
	}
	if uc.metrics != nil {
		uc.metrics.ObserveSlots(len(result.Slots), available)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots (%d available) for business=%d, service=%d, date=%s",
		len(result.Slots), available, req.BusinessID, req.ServiceID, date.Format(domain.DateFormat))

	return &Response{
		Date:            date,
		BusinessID:      req.BusinessID,
		ServiceID:       req.ServiceID,
		Timezone:        loc.String(),
		DurationMinutes: service.DurationMinutes,
		Slots:           toSlots(result.Slots, loc),
	}, nil
}

// toSlots конвертирует доменные слоты в модели ответа
func toSlots(slots []domain.Slot, loc *time.Location) []Slot {
	result := make([]Slot, 0, len(slots))
	for _, s := range slots {
		w := s.Window.In(loc)
		result = append(result, Slot{
			StartTime: types.NewTimeString(w.Start),
			EndTime:   endTimeString(w),
			StartAt:   w.Start,
			EndAt:     w.End,
			Available: s.Available,
		})
	}
	return result
}

// endTimeString возвращает "24:00" для слота, заканчивающегося в полночь следующего дня
func endTimeString(w domain.TimeWindow) types.TimeString {
	if !domain.SameDate(w.Start, w.End) {
		return "24:00"
	}
	return types.NewTimeString(w.End)
}
