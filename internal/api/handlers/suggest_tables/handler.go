package suggest_tables

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/restoh/ReservationService/internal/api/handlers"
	suggestTables "github.com/restoh/ReservationService/internal/usecase/suggest_tables"
	"github.com/restoh/ReservationService/pkg/types"
)

const (
	msgInvalidQuery     = "invalid query parameters, expected date=YYYY-MM-DD&slot=N&guests=N"
	msgStoreUnavailable = "reservation store is unavailable, try again later"
)

type Handler struct {
	useCase SuggestTablesUseCase
	logger  Logger
}

func NewHandler(useCase SuggestTablesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tables/available?date=YYYY-MM-DD&slot=N&guests=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	slot, err := strconv.Atoi(query.Get("slot"))
	if err != nil {
		h.logger.Warn("GET /tables/available - Invalid slot: %q", query.Get("slot"))
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	guests, err := strconv.Atoi(query.Get("guests"))
	if err != nil {
		h.logger.Warn("GET /tables/available - Invalid guests: %q", query.Get("guests"))
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	req := &suggestTables.Request{
		Date:   types.NormalizeDateString(query.Get("date")),
		Slot:   slot,
		Guests: guests,
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, suggestTables.ErrInvalidInput):
			h.logger.Warn("GET /tables/available - Invalid request: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, suggestTables.ErrStoreUnavailable):
			h.logger.Error("GET /tables/available - Store unavailable: %v", err)
			handlers.RespondUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /tables/available - Failed to suggest tables: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tables/available - %d free table(s) for date=%s slot=%d", len(result.FreeTables), result.Date, result.Slot)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
