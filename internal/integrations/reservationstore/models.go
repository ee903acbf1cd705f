package reservationstore

import (
	"encoding/json"
	"time"

	"github.com/restoh/ReservationService/internal/domain"
	"github.com/restoh/ReservationService/pkg/types"
)

// apiResponse конверт ответа хранилища бронирований.
// Сервис зависит только от этой формы, не от конкретного транспорта.
type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Code    string          `json:"code,omitempty"`
	Details json.RawMessage `json:"details,omitempty"`
}

// ConflictDetails детали конфликта столиков от хранилища.
// Позволяют вызывающему предложить гостю альтернативу без повторного запроса.
type ConflictDetails struct {
	ConflictIDs     []string `json:"conflictIds,omitempty"`
	AvailableTables []int    `json:"availableTables,omitempty"`
}

// reservationPayload проводная модель бронирования
type reservationPayload struct {
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Date            string `json:"date"`
	Slot            int    `json:"slot"`
	Guests          int    `json:"guests"`
	Tables          []int  `json:"tableNumber"`
	Status          string `json:"status"`
	SpecialRequests string `json:"specialRequests,omitempty"`
	CreatedAt       string `json:"createdAt,omitempty"`
	UpdatedAt       string `json:"updatedAt,omitempty"`
}

// createPayload тело запроса на создание бронирования
type createPayload struct {
	UserID          string `json:"userId"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Date            string `json:"date"`
	Slot            int    `json:"slot"`
	Guests          int    `json:"guests"`
	Tables          []int  `json:"tableNumber,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// updatePayload тело запроса на изменение бронирования
type updatePayload struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Date            string `json:"date"`
	Slot            int    `json:"slot"`
	Guests          int    `json:"guests"`
	Tables          []int  `json:"tableNumber,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// statusPayload тело запроса на смену статуса
type statusPayload struct {
	Status string `json:"status"`
}

// tablesPayload тело запроса на назначение столиков
type tablesPayload struct {
	Tables []int `json:"tableNumber"`
}

// toDomain конвертирует проводную модель в доменную.
// Дата нормализуется: хранилище может вернуть как голую дату,
// так и timestamp.
func (p *reservationPayload) toDomain() *domain.Reservation {
	r := &domain.Reservation{
		ID:              p.ID,
		UserID:          p.UserID,
		Name:            p.Name,
		Email:           p.Email,
		Phone:           p.Phone,
		Date:            types.NormalizeDateString(p.Date),
		Slot:            p.Slot,
		Guests:          p.Guests,
		Tables:          p.Tables,
		Status:          domain.ReservationStatus(p.Status),
		SpecialRequests: p.SpecialRequests,
	}
	if p.Tables == nil {
		r.Tables = []int{}
	}
	if t, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
		r.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, p.UpdatedAt); err == nil {
		r.UpdatedAt = t
	}
	return r
}

func toDomainList(payloads []reservationPayload) []*domain.Reservation {
	result := make([]*domain.Reservation, 0, len(payloads))
	for i := range payloads {
		result = append(result, payloads[i].toDomain())
	}
	return result
}
