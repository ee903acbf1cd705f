package update_reservation

import (
	"time"

	updateReservation "github.com/restoh/ReservationService/internal/usecase/update_reservation"
	"github.com/restoh/ReservationService/pkg/types"
)

// UpdateReservationRequest HTTP request model.
// Вызывающий передаёт полное желаемое состояние редактируемых полей.
// Телефон принимается под двумя именами (phone/phoneNumber), столики
// указателем - отсутствие поля означает "не менять назначение".
type UpdateReservationRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	PhoneNumber     string `json:"phoneNumber"`
	Date            string `json:"date"`
	Slot            int    `json:"slot"`
	Guests          int    `json:"guests"`
	TableNumber     *[]int `json:"tableNumber"`
	SpecialRequests string `json:"specialRequests"`
}

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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateReservationRequest) ToUseCaseRequest(id, callerID string, isAdmin bool) *updateReservation.Request {
	phone := r.Phone
	if phone == "" {
		phone = r.PhoneNumber
	}

	req := &updateReservation.Request{
		ID:              id,
		CallerID:        callerID,
		IsAdmin:         isAdmin,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           phone,
		Date:            types.NormalizeDateString(r.Date),
		Slot:            r.Slot,
		Guests:          r.Guests,
		SpecialRequests: r.SpecialRequests,
	}

	if r.TableNumber != nil {
		req.Tables = *r.TableNumber
		req.TablesProvided = true
	}

	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		Name:            resp.Name,
		Email:           resp.Email,
		Phone:           resp.Phone,
		Date:            resp.Date,
		Slot:            resp.Slot,
		SlotLabel:       resp.SlotLabel,
		Session:         resp.Session,
		Guests:          resp.Guests,
		TableNumber:     resp.Tables,
		Status:          resp.Status,
		SpecialRequests: resp.SpecialRequests,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
