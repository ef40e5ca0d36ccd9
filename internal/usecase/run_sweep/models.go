package run_sweep

import "time"

// Источники запуска
const (
	TriggerHTTP     = "http"
	TriggerSchedule = "schedule"
)

// Request модель запроса на прогон
type Request struct {
	Trigger string // Кто запустил прогон: http или schedule
}

// Response результат прогона
type Response struct {
	Count      int
	BookingIDs []int64
	RanAt      time.Time // Момент, относительно которого считались завершённые бронирования
}
