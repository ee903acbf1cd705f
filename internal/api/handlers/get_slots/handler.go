package get_slots

import (
	"net/http"

	"github.com/restoh/ReservationService/internal/api/handlers"
	"github.com/restoh/ReservationService/internal/domain"
)

type Handler struct {
	catalog *domain.SlotCatalog
}

func NewHandler(catalog *domain.SlotCatalog) *Handler {
	return &Handler{catalog: catalog}
}

// Handle GET /api/v1/slots
//
// Каталог слотов - статические данные конфигурации, хранилище не
// участвует.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slots := h.catalog.Slots()

	result := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, SlotResponse{
			ID:      s.ID,
			Label:   s.Label,
			Session: s.Session,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, SlotsResponse{Slots: result, Total: len(result)})
}
