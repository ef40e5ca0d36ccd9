package sweeper

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	runSweep "github.com/m04kA/SMC-SchedulingService/internal/usecase/run_sweep"
)

// ErrInvalidSchedule возвращается при некорректном cron выражении
var ErrInvalidSchedule = errors.New("sweeper: invalid schedule")

type RunSweepUseCase interface {
	Execute(ctx context.Context, req *runSweep.Request) (*runSweep.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler запускает перевод завершившихся бронирований по расписанию.
// Прогоны не накладываются: если предыдущий ещё идёт, очередной пропускается.
type Scheduler struct {
	cron     *cron.Cron
	useCase  RunSweepUseCase
	timeout  time.Duration
	schedule string
	logger   Logger
}

// New создает планировщик. schedule в стандартном cron формате или дескриптор (@hourly, @every 5m)
func New(schedule string, useCase RunSweepUseCase, timeout time.Duration, logger Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:     cron.New(cron.WithChain(cron.Recover(cron.DiscardLogger), cron.SkipIfStillRunning(cron.DiscardLogger))),
		useCase:  useCase,
		timeout:  timeout,
		schedule: schedule,
		logger:   logger,
	}

	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSchedule, schedule, err)
	}

	return s, nil
}

// Start запускает планировщик в фоне
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Sweep scheduler started: schedule=%s", s.schedule)
}

// Stop останавливает планировщик и ждёт завершения текущего прогона, но не дольше ctx
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()

	select {
	case <-done.Done():
		s.logger.Info("Sweep scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) run() {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result, err := s.useCase.Execute(ctx, &runSweep.Request{Trigger: runSweep.TriggerSchedule})
	if err != nil {
		s.logger.Error("Scheduled sweep failed: %v", err)
		return
	}

	s.logger.Info("Scheduled sweep finished: completed=%d", result.Count)
}
