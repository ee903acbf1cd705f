package models

import (
	"time"

	"github.com/restoh/ReservationService/internal/domain"
	"github.com/restoh/ReservationService/internal/query"
	"github.com/restoh/ReservationService/internal/stats"
	"github.com/restoh/ReservationService/pkg/types"
)

// ReservationResponse модель бронирования для вызывающего слоя
type ReservationResponse struct {
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

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse
	Total        int
}

// ListRequest запрос списка бронирований.
// Staff-режим всегда перечитывает коллекцию из хранилища; пользовательский
// режим обслуживается из уже заполненного кеша, иначе грузит один раз.
type ListRequest struct {
	CallerID string
	IsAdmin  bool
	Staff    bool

	Status    *string
	Date      *string
	UserID    *string
	TimeRange string
	Search    string
}

// CancelRequest запрос на отмену бронирования
type CancelRequest struct {
	CallerID string
	IsAdmin  bool
}

// UpdateStatusRequest административный запрос на смену статуса
type UpdateStatusRequest struct {
	CallerID string
	Status   string
}

// AssignTablesRequest административный запрос на назначение столиков
type AssignTablesRequest struct {
	CallerID string
	Tables   []int
}

// StatsRequest запрос статистики с опциональным окном дат
type StatsRequest struct {
	StartDate *string
	EndDate   *string
}

// StatsResponse сводная операционная статистика
type StatsResponse struct {
	Summary          stats.Summary
	PeakHours        []stats.SlotCount
	Utilization      stats.Utilization
	Cancellation     stats.Cancellation
	AveragePartySize float64
}

// FromDomainReservation конвертирует доменную модель в ответ сервиса
func FromDomainReservation(r *domain.Reservation, catalog *domain.SlotCatalog) *ReservationResponse {
	tables := r.Tables
	if tables == nil {
		tables = []int{}
	}
	return &ReservationResponse{
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

// FromDomainReservationList конвертирует список доменных моделей
func FromDomainReservationList(reservations []*domain.Reservation, catalog *domain.SlotCatalog) *ReservationListResponse {
	result := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		result = append(result, *FromDomainReservation(r, catalog))
	}
	return &ReservationListResponse{
		Reservations: result,
		Total:        len(result),
	}
}

// ToQueryFilter конвертирует запрос списка в фильтр движка запросов
func (r *ListRequest) ToQueryFilter() (query.Filter, error) {
	filter := query.Filter{TimeRange: r.TimeRange}

	if r.Status != nil {
		if !domain.IsValidStatus(*r.Status) {
			return query.Filter{}, ErrInvalidStatus
		}
		status := domain.ReservationStatus(*r.Status)
		filter.Status = &status
	}

	if r.Date != nil {
		date := types.NormalizeDateString(*r.Date)
		filter.Date = &date
	}

	// Не-администратор видит только собственные бронирования;
	// администратор может фильтровать по любому пользователю
	if r.IsAdmin {
		filter.UserID = r.UserID
	} else {
		callerID := r.CallerID
		filter.UserID = &callerID
	}

	return filter, nil
}
