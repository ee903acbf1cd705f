package update_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/restoh/ReservationService/internal/api/handlers"
	"github.com/restoh/ReservationService/internal/api/middleware"
	"github.com/restoh/ReservationService/internal/domain"
	updateReservation "github.com/restoh/ReservationService/internal/usecase/update_reservation"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgReservationNotFound = "reservation not found"
	msgAccessDenied        = "access to this reservation is denied"
	msgStoreUnavailable    = "reservation store is unavailable, try again later"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	callerID := middleware.UserID(r.Context())

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: reservation_id=%s, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq := req.ToUseCaseRequest(id, callerID, middleware.IsAdmin(r.Context()))

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *domain.ValidationError
		var conflictErr *domain.ConflictError

		switch {
		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Not found: reservation_id=%s, caller=%s", id, callerID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, updateReservation.ErrAccessDenied):
			h.logger.Warn("PUT /reservations/{id} - Access denied: reservation_id=%s, caller=%s", id, callerID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, updateReservation.ErrCannotModify):
			h.logger.Warn("PUT /reservations/{id} - Cannot modify: reservation_id=%s, error=%v", id, err)
			handlers.RespondError(w, http.StatusConflict, err.Error(), handlers.CodeTransition)

		case errors.As(err, &validationErr):
			h.logger.Warn("PUT /reservations/{id} - Validation failed: reservation_id=%s, violations=%d",
				id, len(validationErr.Messages))
			handlers.RespondValidationError(w, validationErr)

		case errors.As(err, &conflictErr):
			h.logger.Warn("PUT /reservations/{id} - Table conflict: reservation_id=%s", id)
			handlers.RespondConflictError(w, conflictErr)

		case errors.Is(err, updateReservation.ErrStoreUnavailable):
			h.logger.Error("PUT /reservations/{id} - Store unavailable: reservation_id=%s, error=%v", id, err)
			handlers.RespondUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("PUT /reservations/{id} - Failed to update reservation: reservation_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/{id} - Reservation updated: reservation_id=%s, caller=%s", id, callerID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
