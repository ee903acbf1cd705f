package list_reservations

import (
	"errors"
	"net/http"

	"github.com/restoh/ReservationService/internal/api/handlers"
	"github.com/restoh/ReservationService/internal/api/middleware"
	"github.com/restoh/ReservationService/internal/service/reservations"
	"github.com/restoh/ReservationService/internal/service/reservations/models"
	"github.com/restoh/ReservationService/pkg/ptr"
)

const (
	msgInvalidFilter    = "invalid filter parameters"
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

// Handle GET /api/v1/reservations
//
// Параметры запроса: timeRange (today|upcoming|past), status, date,
// userId (только для администратора), search, staff (принудительная
// перезагрузка коллекции из хранилища).
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListRequest{
		CallerID:  middleware.UserID(r.Context()),
		IsAdmin:   middleware.IsAdmin(r.Context()),
		Staff:     query.Get("staff") == "true",
		TimeRange: query.Get("timeRange"),
		Search:    query.Get("search"),
	}

	if status := query.Get("status"); status != "" {
		req.Status = ptr.Ptr(status)
	}
	if date := query.Get("date"); date != "" {
		req.Date = ptr.Ptr(date)
	}
	if userID := query.Get("userId"); userID != "" {
		req.UserID = ptr.Ptr(userID)
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations - Invalid filter: caller=%s, error=%v", req.CallerID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		case errors.Is(err, reservations.ErrStoreUnavailable):
			h.logger.Error("GET /reservations - Store unavailable: caller=%s, error=%v", req.CallerID, err)
			handlers.RespondUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: caller=%s, error=%v", req.CallerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Returning %d reservation(s): caller=%s", result.Total, req.CallerID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
