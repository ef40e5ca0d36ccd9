package run_sweep

import (
	"time"

	runSweep "github.com/m04kA/SMC-SchedulingService/internal/usecase/run_sweep"
)

// SweepResponse HTTP response model
type SweepResponse struct {
	Count      int       `json:"count"`
	BookingIDs []int64   `json:"bookingIds"`
	RanAt      time.Time `json:"ranAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *runSweep.Response) *SweepResponse {
	ids := resp.BookingIDs
	if ids == nil {
		ids = []int64{}
	}

	return &SweepResponse{
		Count:      resp.Count,
		BookingIDs: ids,
		RanAt:      resp.RanAt,
	}
}
