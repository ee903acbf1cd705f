package update_status

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
	msgInvalidStatus       = "invalid reservation status"
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

// Handle PATCH /api/v1/reservations/{id}/status (только администратор)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	callerID := middleware.UserID(r.Context())

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/status - Invalid request body: reservation_id=%s, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.UpdateStatusRequest{
		CallerID: callerID,
		Status:   req.Status,
	}

	if err := h.service.UpdateStatus(r.Context(), id, serviceReq); err != nil {
		var transitionErr *domain.TransitionError

		switch {
		case errors.As(err, &transitionErr):
			h.logger.Warn("PATCH /reservations/{id}/status - Illegal transition: reservation_id=%s, from=%s, to=%s",
				id, transitionErr.From, transitionErr.To)
			handlers.RespondTransitionError(w, transitionErr)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/status - Invalid status: reservation_id=%s, status=%q", id, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/status - Not found: reservation_id=%s", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrStoreUnavailable):
			h.logger.Error("PATCH /reservations/{id}/status - Store unavailable: reservation_id=%s, error=%v", id, err)
			handlers.RespondUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("PATCH /reservations/{id}/status - Failed to update status: reservation_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/status - Status updated: reservation_id=%s, status=%s, caller=%s",
		id, req.Status, callerID)
	handlers.RespondJSON(w, http.StatusOK, UpdateStatusResponse{ID: id, Status: req.Status})
}
