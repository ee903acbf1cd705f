package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/restoh/ReservationService/internal/api/handlers"
	"github.com/restoh/ReservationService/internal/api/middleware"
	"github.com/restoh/ReservationService/internal/service/reservations"
	"github.com/restoh/ReservationService/internal/service/reservations/models"
)

const (
	msgReservationNotFound = "reservation not found"
	msgAccessDenied        = "access to this reservation is denied"
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

// Handle PATCH /api/v1/reservations/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	callerID := middleware.UserID(r.Context())

	req := &models.CancelRequest{
		CallerID: callerID,
		IsAdmin:  middleware.IsAdmin(r.Context()),
	}

	result, err := h.service.Cancel(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Not found: reservation_id=%s, caller=%s", id, callerID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Access denied: reservation_id=%s, caller=%s", id, callerID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reservations.ErrCannotCancel):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Cannot cancel: reservation_id=%s, error=%v", id, err)
			handlers.RespondError(w, http.StatusConflict, err.Error(), handlers.CodeTransition)

		case errors.Is(err, reservations.ErrStoreUnavailable):
			h.logger.Error("PATCH /reservations/{id}/cancel - Store unavailable: reservation_id=%s, error=%v", id, err)
			handlers.RespondUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("PATCH /reservations/{id}/cancel - Failed to cancel: reservation_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/cancel - Reservation cancelled: reservation_id=%s, caller=%s", id, callerID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
