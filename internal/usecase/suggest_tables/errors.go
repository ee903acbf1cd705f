package suggest_tables

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("suggest_tables: invalid input data")

	// ErrStoreUnavailable возвращается, когда хранилище бронирований недоступно
	ErrStoreUnavailable = errors.New("suggest_tables: reservation store unavailable")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("suggest_tables: internal error")
)
