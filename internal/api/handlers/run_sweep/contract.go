package run_sweep

import (
	"context"

	runSweep "github.com/m04kA/SMC-SchedulingService/internal/usecase/run_sweep"
)

type RunSweepUseCase interface {
	Execute(ctx context.Context, req *runSweep.Request) (*runSweep.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
