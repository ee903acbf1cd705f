package get_reservation

import (
	"time"

	"github.com/restoh/ReservationService/internal/service/reservations/models"
)

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Date            string `json:"date"`
	Slot            int    `json:"slot"`
	SlotLabel       string `json:"slotLabel"`
	Session         string `json:"session"`
	Guests          int    `json:"guests"`
	TableNumber     []int  `json:"tableNumber"`
	Status          string `json:"status"`
	SpecialRequests string `json:"specialRequests,omitempty"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(r *models.ReservationResponse) *ReservationResponse {
	return &ReservationResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Date:            r.Date,
		Slot:            r.Slot,
		SlotLabel:       r.SlotLabel,
		Session:         r.Session,
		Guests:          r.Guests,
		TableNumber:     r.Tables,
		Status:          r.Status,
		SpecialRequests: r.SpecialRequests,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       r.UpdatedAt.Format(time.RFC3339),
	}
}
