package cancel_reservation

import (
	"time"

	"github.com/restoh/ReservationService/internal/service/reservations/models"
)

// CancelReservationResponse HTTP response model.
// Отмена - переход статуса: запись остаётся в коллекции.
type CancelReservationResponse struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Date        string `json:"date"`
	Slot        int    `json:"slot"`
	SlotLabel   string `json:"slotLabel"`
	TableNumber []int  `json:"tableNumber"`
	UpdatedAt   string `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(r *models.ReservationResponse) *CancelReservationResponse {
	return &CancelReservationResponse{
		ID:          r.ID,
		Status:      r.Status,
		Date:        r.Date,
		Slot:        r.Slot,
		SlotLabel:   r.SlotLabel,
		TableNumber: r.Tables,
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}
}
