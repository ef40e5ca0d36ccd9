package sweeper

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	runSweep "github.com/m04kA/SMC-SchedulingService/internal/usecase/run_sweep"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeUseCase struct {
	mu       sync.Mutex
	triggers []string
	deadline bool
	err      error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *runSweep.Request) (*runSweep.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.triggers = append(f.triggers, req.Trigger)
	_, f.deadline = ctx.Deadline()
	if f.err != nil {
		return nil, f.err
	}
	return &runSweep.Response{Count: 1}, nil
}

func TestNew_InvalidSchedule(t *testing.T) {
	_, err := New("every now and then", &fakeUseCase{}, time.Minute, logger.NewNop())
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestNew_Descriptors(t *testing.T) {
	for _, schedule := range []string{"@hourly", "@every 5m", "*/10 * * * *"} {
		_, err := New(schedule, &fakeUseCase{}, time.Minute, logger.NewNop())
		assert.NoError(t, err, schedule)
	}
}

func TestRun_UsesScheduleTrigger(t *testing.T) {
	uc := &fakeUseCase{}
	s, err := New("@hourly", uc, time.Minute, logger.NewNop())
	require.NoError(t, err)

	s.run()

	assert.Equal(t, []string{runSweep.TriggerSchedule}, uc.triggers)
	assert.True(t, uc.deadline)
}

func TestRun_ErrorIsSwallowed(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("db down")}
	s, err := New("@hourly", uc, 0, logger.NewNop())
	require.NoError(t, err)

	assert.NotPanics(t, s.run)
	assert.False(t, uc.deadline)
}

func TestStartStop(t *testing.T) {
	s, err := New("@hourly", &fakeUseCase{}, time.Minute, logger.NewNop())
	require.NoError(t, err)

	s.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}
