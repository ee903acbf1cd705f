package domain

import (
	"time"
)

// transitionTable задаёт полный граф допустимых переходов статусов.
// Переход, отсутствующий в таблице, запрещён. Терминальные статусы
// (completed, cancelled, no-show) не имеют исходящих рёбер.
var transitionTable = map[ReservationStatus][]ReservationStatus{
	StatusConfirmed: {StatusSeated, StatusCancelled, StatusNoShow},
	StatusSeated:    {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusNoShow:    {},
}

// CanTransition возвращает true, если переход from -> to присутствует в графе
func CanTransition(from, to ReservationStatus) bool {
	for _, allowed := range transitionTable[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition проверяет переход статуса и возвращает *TransitionError,
// если переход не разрешён. Проверка выполняется до любого I/O.
func Transition(from, to ReservationStatus) error {
	if !CanTransition(from, to) {
		return &TransitionError{From: from, To: to}
	}
	return nil
}

// AllowedTransitions возвращает список статусов, достижимых из from
func AllowedTransitions(from ReservationStatus) []ReservationStatus {
	allowed := transitionTable[from]
	result := make([]ReservationStatus, len(allowed))
	copy(result, allowed)
	return result
}

// Причины отказа для пользовательских операций изменения/отмены
const (
	ReasonTerminalStatus  = "terminal status"
	ReasonPastReservation = "past reservation"
)

// CanModify проверяет, может ли пользователь редактировать бронирование.
// Возвращает признак и человекочитаемую причину отказа.
func CanModify(r *Reservation, catalog *SlotCatalog, now time.Time) (bool, string) {
	if r.Status.IsTerminal() {
		return false, ReasonTerminalStatus
	}
	if catalog.HasPassed(r.Date, r.Slot, now) {
		return false, ReasonPastReservation
	}
	return true, ""
}

// CanCancel проверяет, может ли пользователь отменить бронирование.
// Форма ответа идентична CanModify.
func CanCancel(r *Reservation, catalog *SlotCatalog, now time.Time) (bool, string) {
	if r.Status == StatusCancelled || r.Status == StatusCompleted || r.Status == StatusNoShow {
		return false, ReasonTerminalStatus
	}
	if catalog.HasPassed(r.Date, r.Slot, now) {
		return false, ReasonPastReservation
	}
	return true, ""
}
