package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса на получение слотов
type Request struct {
	BusinessID int64     // ID бизнеса
	ServiceID  int64     // ID услуги
	Date       time.Time // Календарная дата (время и часовой пояс игнорируются)
}

// Response модель ответа со списком слотов
type Response struct {
	Date            time.Time // Дата в часовом поясе бизнеса
	BusinessID      int64
	ServiceID       int64
	Timezone        string // Часовой пояс бизнеса (IANA)
	DurationMinutes int    // Длительность услуги
	Slots           []Slot // Все кандидаты в хронологическом порядке, включая недоступные
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString // Локальное время начала в часовом поясе бизнеса ("10:00")
	EndTime   types.TimeString // Локальное время окончания
	StartAt   time.Time        // Абсолютное время начала
	EndAt     time.Time        // Абсолютное время окончания
	Available bool
}
