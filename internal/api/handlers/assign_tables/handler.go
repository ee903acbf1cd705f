package assign_tables

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/restoh/ReservationService/internal/api/handlers"
	"github.com/restoh/ReservationService/internal/api/middleware"
	"github.com/restoh/ReservationService/internal/domain"
	"github.com/restoh/ReservationService/internal/service/reservations"
	"github.com/restoh/ReservationService/internal/service/reservations/models"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgReservationNotFound = "reservation not found"
	msgStoreUnavailable    = "reservation store is unavailable, try again later"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{id}/tables (только администратор)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	callerID := middleware.UserID(r.Context())

	var req AssignTablesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/tables - Invalid request body: reservation_id=%s, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.AssignTablesRequest{
		CallerID: callerID,
		Tables:   req.TableNumber,
	}

	if err := h.service.AssignTables(r.Context(), id, serviceReq); err != nil {
		var conflictErr *domain.ConflictError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("PATCH /reservations/{id}/tables - Table conflict: reservation_id=%s, tables=%v",
				id, req.TableNumber)
			handlers.RespondConflictError(w, conflictErr)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/tables - Invalid assignment: reservation_id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/tables - Not found: reservation_id=%s", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrStoreUnavailable):
			h.logger.Error("PATCH /reservations/{id}/tables - Store unavailable: reservation_id=%s, error=%v", id, err)
			handlers.RespondUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("PATCH /reservations/{id}/tables - Failed to assign tables: reservation_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/tables - Tables assigned: reservation_id=%s, tables=%v, caller=%s",
		id, req.TableNumber, callerID)
	handlers.RespondJSON(w, http.StatusOK, AssignTablesResponse{ID: id, TableNumber: req.TableNumber})
}
