package get_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/restoh/ReservationService/internal/api/handlers"
	"github.com/restoh/ReservationService/internal/api/middleware"
	"github.com/restoh/ReservationService/internal/service/reservations"
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

// Handle GET /api/v1/reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	callerID := middleware.UserID(r.Context())

	result, err := h.service.GetByID(r.Context(), id, callerID, middleware.IsAdmin(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{id} - Not found: reservation_id=%s, caller=%s", id, callerID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /reservations/{id} - Access denied: reservation_id=%s, caller=%s", id, callerID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reservations.ErrStoreUnavailable):
			h.logger.Error("GET /reservations/{id} - Store unavailable: reservation_id=%s, error=%v", id, err)
			handlers.RespondUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /reservations/{id} - Failed to get reservation: reservation_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
