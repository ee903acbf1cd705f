package create_reservation

import (
	"time"

	"github.com/restoh/ReservationService/internal/domain"
	"github.com/restoh/ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования.
// Телефон приходит уже в каноническом поле - двойное имя поля
// (phone/phoneNumber) нормализуется на границе API.
// TablesProvided отличает отсутствие поля столиков (допустимо)
// от явно переданного пустого набора (ошибка).
type Request struct {
	UserID          string
	Name            string
	Email           string
	Phone           string
	Date            types.DateString
	Slot            int
	Guests          int
	Tables          []int
	TablesProvided  bool
	SpecialRequests string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              string
	UserID          string
	Name            string
	Email           string
	Phone           string
	Date            string
	Slot            int
	SlotLabel       string
	Session         string
	Guests          int
	Tables          []int
	Status          string
	SpecialRequests string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// fromDomain конвертирует созданное бронирование в ответ use case
func fromDomain(r *domain.Reservation, catalog *domain.SlotCatalog) *Response {
	tables := r.Tables
	if tables == nil {
		tables = []int{}
	}
	return &Response{
		ID:              r.ID,
		UserID:          r.UserID,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Date:            r.Date.String(),
		Slot:            r.Slot,
		SlotLabel:       catalog.LabelFor(r.Slot),
		Session:         catalog.SessionFor(r.Slot),
		Guests:          r.Guests,
		Tables:          tables,
		Status:          string(r.Status),
		SpecialRequests: r.SpecialRequests,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
