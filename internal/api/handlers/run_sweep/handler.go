package run_sweep

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	runSweep "github.com/m04kA/SMC-SchedulingService/internal/usecase/run_sweep"
)

type Handler struct {
	useCase RunSweepUseCase
	logger  Logger
}

func NewHandler(useCase RunSweepUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/internal/cron/sweep
// Секрет проверяется в middleware.CronSecret
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context(), &runSweep.Request{Trigger: runSweep.TriggerHTTP})
	if err != nil {
		h.logger.Error("POST /internal/cron/sweep - Sweep failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /internal/cron/sweep - Sweep finished: completed=%d", result.Count)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
