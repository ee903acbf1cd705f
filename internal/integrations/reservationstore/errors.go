package reservationstore

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено в хранилище
	ErrReservationNotFound = errors.New("reservationstore client: reservation not found")

	// ErrConflict возвращается, когда хранилище отклонило операцию из-за
	// двойного бронирования столика. Детали доступны через ConflictDetailsOf.
	ErrConflict = errors.New("reservationstore client: table conflict")

	// ErrInvalidInput возвращается, когда хранилище отклонило данные запроса
	ErrInvalidInput = errors.New("reservationstore client: invalid input")

	// ErrInvalidResponse возвращается при некорректном ответе хранилища
	ErrInvalidResponse = errors.New("reservationstore client: invalid response")

	// ErrUnavailable возвращается, когда хранилище недоступно или ответило 5xx
	ErrUnavailable = errors.New("reservationstore client: store unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("reservationstore client: internal error")
)
