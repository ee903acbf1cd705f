package update_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrAccessDenied возвращается, когда вызывающий не владелец и не администратор
	ErrAccessDenied = errors.New("update_reservation: access denied")

	// ErrCannotModify возвращается, когда бронирование нельзя редактировать;
	// оборачивается с причиной ("terminal status" / "past reservation")
	ErrCannotModify = errors.New("update_reservation: reservation cannot be modified")

	// ErrStoreUnavailable возвращается, когда хранилище бронирований недоступно
	ErrStoreUnavailable = errors.New("update_reservation: reservation store unavailable")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("update_reservation: internal error")
)
