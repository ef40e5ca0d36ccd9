package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCancel возвращается, когда политика отмены запрещает отмену.
	// Текст ошибки содержит причину.
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrConflict возвращается, когда статус бронирования изменился параллельно
	ErrConflict = errors.New("booking was modified concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// CancelRefusedError отказ политики отмены с причиной для клиента
type CancelRefusedError struct {
	Reason string
}

func (e *CancelRefusedError) Error() string {
	return ErrCannotCancel.Error() + ": " + e.Reason
}

func (e *CancelRefusedError) Unwrap() error {
	return ErrCannotCancel
}
