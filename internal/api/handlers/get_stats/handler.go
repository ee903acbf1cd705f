package get_stats

import (
	"errors"
	"net/http"

	"github.com/restoh/ReservationService/internal/api/handlers"
	"github.com/restoh/ReservationService/internal/service/reservations"
	"github.com/restoh/ReservationService/internal/service/reservations/models"
)

const (
	msgInvalidDateRange = "invalid date range, expected from=YYYY-MM-DD&to=YYYY-MM-DD"
	msgStoreUnavailable = "reservation store is unavailable, try again later"
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

// Handle GET /api/v1/reservations/stats (только администратор).
// Опциональное окно дат: ?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.StatsRequest{}
	if from := query.Get("from"); from != "" {
		req.StartDate = &from
	}
	if to := query.Get("to"); to != "" {
		req.EndDate = &to
	}

	// Окно задаётся только целиком
	if (req.StartDate == nil) != (req.EndDate == nil) {
		h.logger.Warn("GET /reservations/stats - Incomplete date range: from=%v, to=%v", req.StartDate, req.EndDate)
		handlers.RespondBadRequest(w, msgInvalidDateRange)
		return
	}

	result, err := h.service.Stats(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations/stats - Invalid date range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, reservations.ErrStoreUnavailable):
			h.logger.Error("GET /reservations/stats - Store unavailable: %v", err)
			handlers.RespondUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /reservations/stats - Failed to compute stats: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/stats - Returning stats: total=%d", result.Summary.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
