package domain

import (
	"fmt"
	"strings"
)

// ValidationError содержит полный список нарушений бизнес-правил запроса.
// Все проверки выполняются независимо, сообщения накапливаются -
// ошибка всегда исправима корректировкой входных данных.
type ValidationError struct {
	Messages []string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Messages, "; "))
}

// TransitionError возвращается при недопустимом переходе статуса.
// Всегда называет оба статуса и обнаруживается до любого I/O.
type TransitionError struct {
	From ReservationStatus
	To   ReservationStatus
}

// Error implements the error interface
func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
}

// ConflictError возвращается при попытке занять столик, уже удерживаемый
// другим бронированием на ту же дату и слот. Несёт конфликтующие
// бронирования и, если их удалось вычислить, свободные альтернативы.
type ConflictError struct {
	Conflicts       []*Reservation
	AvailableTables []int // Свободные столики на эту дату и слот
	Suggested       []int // Рекомендованная комбинация под размер группы
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	return fmt.Sprintf("table conflict with %d existing reservation(s)", len(e.Conflicts))
}
