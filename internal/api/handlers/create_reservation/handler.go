package create_reservation

import (
	"errors"
	"net/http"

	"github.com/restoh/ReservationService/internal/api/handlers"
	"github.com/restoh/ReservationService/internal/api/middleware"
	"github.com/restoh/ReservationService/internal/domain"
	createReservation "github.com/restoh/ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgStoreUnavailable   = "reservation store is unavailable, try again later"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID := middleware.UserID(r.Context())
	useCaseReq := req.ToUseCaseRequest(userID)

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *domain.ValidationError
		var conflictErr *domain.ConflictError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /reservations - Validation failed: user_id=%s, violations=%d",
				userID, len(validationErr.Messages))
			handlers.RespondValidationError(w, validationErr)

		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /reservations - Table conflict: user_id=%s, date=%s, slot=%d",
				userID, req.Date, req.Slot)
			handlers.RespondConflictError(w, conflictErr)

		case errors.Is(err, createReservation.ErrStoreUnavailable):
			h.logger.Error("POST /reservations - Store unavailable: user_id=%s, error=%v", userID, err)
			handlers.RespondUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%s, user_id=%s", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
