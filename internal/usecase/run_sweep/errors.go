package run_sweep

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase.
	// Прогон можно безопасно повторить.
	ErrInternal = errors.New("usecase: internal error")
)
