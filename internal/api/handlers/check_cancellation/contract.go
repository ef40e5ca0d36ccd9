package check_cancellation

import (
	"context"

	checkCancellation "github.com/m04kA/SMC-SchedulingService/internal/usecase/check_cancellation"
)

type CheckCancellationUseCase interface {
	Execute(ctx context.Context, req *checkCancellation.Request) (*checkCancellation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
