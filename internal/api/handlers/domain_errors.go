package handlers

import (
	"net/http"

	"github.com/restoh/ReservationService/internal/domain"
)

// conflictDetails полезная нагрузка конфликта столиков:
// даёт вызывающему достаточно данных для восстановления без
// повторного запроса
type conflictDetails struct {
	ConflictIDs     []string `json:"conflictIds"`
	AvailableTables []int    `json:"availableTables"`
	Suggested       []int    `json:"suggested,omitempty"`
}

// RespondValidationError пишет 400 с полным списком нарушений
func RespondValidationError(w http.ResponseWriter, err *domain.ValidationError) {
	RespondErrorDetails(w, http.StatusBadRequest, "validation failed", CodeValidation, err.Messages)
}

// RespondTransitionError пишет 409 с обоими статусами в сообщении
func RespondTransitionError(w http.ResponseWriter, err *domain.TransitionError) {
	RespondError(w, http.StatusConflict, err.Error(), CodeTransition)
}

// RespondConflictError пишет 409 с конфликтующими бронированиями и
// альтернативными свободными столиками
func RespondConflictError(w http.ResponseWriter, err *domain.ConflictError) {
	ids := make([]string, 0, len(err.Conflicts))
	for _, r := range err.Conflicts {
		ids = append(ids, r.ID)
	}

	available := err.AvailableTables
	if available == nil {
		available = []int{}
	}

	RespondErrorDetails(w, http.StatusConflict, "selected tables are already reserved for this date and slot", CodeConflict, conflictDetails{
		ConflictIDs:     ids,
		AvailableTables: available,
		Suggested:       err.Suggested,
	})
}
