package check_cancellation

// Request модель запроса проверки возможности отмены
type Request struct {
	BookingID int64
}

// Response результат проверки.
// CanCancel=false с причиной это обычный ответ, а не ошибка.
type Response struct {
	BookingID         int64
	CanCancel         bool
	Reason            *string
	HoursUntilBooking float64
	PolicyDescription string
}
