package create_reservation

import "errors"

var (
	// ErrStoreUnavailable возвращается, когда хранилище бронирований недоступно
	ErrStoreUnavailable = errors.New("create_reservation: reservation store unavailable")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("create_reservation: internal error")
)
