package domain

import (
	"time"

	"github.com/restoh/ReservationService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmed"
	StatusSeated    ReservationStatus = "seated"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusNoShow    ReservationStatus = "no-show"
)

// AllStatuses список всех статусов бронирования.
// Используется для инициализации статистических структур, чтобы каждый
// статус присутствовал в ответе даже с нулевым счётчиком.
var AllStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusSeated,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// TerminalStatuses статусы, из которых нет допустимых переходов
var TerminalStatuses = []ReservationStatus{
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// HoldingStatuses статусы, при которых бронирование удерживает столики.
// Только такие бронирования участвуют в проверке двойного бронирования.
var HoldingStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusSeated,
}

// CountedStatuses статусы, учитываемые в подсчёте гостей.
// Отменённые и no-show исключаются из суммы посадочных мест.
var CountedStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusSeated,
	StatusCompleted,
}

// IsValidStatus проверяет, что строка является допустимым статусом
func IsValidStatus(s string) bool {
	for _, status := range AllStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}

// Reservation represents a table reservation in the system
type Reservation struct {
	ID     string
	UserID string

	// Контактные данные гостя
	Name  string
	Email string
	Phone string

	Date   types.DateString // Календарная дата без времени суток
	Slot   int              // Ссылка на каталог временных слотов
	Guests int

	// Назначенные столики. Пустой список - бронирование ожидает назначения.
	Tables []int

	Status          ReservationStatus
	SpecialRequests string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if the reservation is in a terminal status
func (r *Reservation) IsTerminal() bool {
	return r.Status.IsTerminal()
}

// HoldsTables returns true if the reservation holds its tables
// (participates in double-booking detection)
func (r *Reservation) HoldsTables() bool {
	return r.Status == StatusConfirmed || r.Status == StatusSeated
}

// CountsGuests returns true if the reservation counts toward guest totals
func (r *Reservation) CountsGuests() bool {
	return r.Status == StatusConfirmed || r.Status == StatusSeated || r.Status == StatusCompleted
}

// HasTables returns true if at least one table is assigned
func (r *Reservation) HasTables() bool {
	return len(r.Tables) > 0
}

// HasTable returns true if the given table is assigned to the reservation
func (r *Reservation) HasTable(tableID int) bool {
	for _, id := range r.Tables {
		if id == tableID {
			return true
		}
	}
	return false
}

// IsTerminal returns true if the status has no outgoing transitions
func (s ReservationStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}
