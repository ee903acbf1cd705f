package reservationstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/restoh/ReservationService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsCollector интерфейс для записи метрик исходящих запросов
type MetricsCollector interface {
	ObserveStoreRequest(operation, outcome string, duration time.Duration)
}

// StoreConflictError ошибка конфликта столиков с деталями от хранилища
type StoreConflictError struct {
	Details ConflictDetails
}

// Error implements the error interface
func (e *StoreConflictError) Error() string {
	return ErrConflict.Error()
}

// Unwrap позволяет errors.Is(err, ErrConflict)
func (e *StoreConflictError) Unwrap() error {
	return ErrConflict
}

// ConflictDetailsOf извлекает детали конфликта из цепочки ошибок
func ConflictDetailsOf(err error) (ConflictDetails, bool) {
	var conflictErr *StoreConflictError
	if errors.As(err, &conflictErr) {
		return conflictErr.Details, true
	}
	return ConflictDetails{}, false
}

// Client клиент хранилища бронирований (persistence boundary).
// Ретраев нет: временный сбой возвращается вызывающему как обычная
// ошибка, решение о повторе остаётся за ним.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsCollector // nil-safe
}

// NewClient создает новый экземпляр клиента хранилища
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// WithMetrics подключает коллектор метрик исходящих запросов
func (c *Client) WithMetrics(m MetricsCollector) *Client {
	c.metrics = m
	return c
}

// List получает полную коллекцию бронирований
func (c *Client) List(ctx context.Context) ([]*domain.Reservation, error) {
	data, err := c.do(ctx, "list", http.MethodGet, "/internal/reservations", nil, nil)
	if err != nil {
		return nil, err
	}

	var payloads []reservationPayload
	if err := json.Unmarshal(data, &payloads); err != nil {
		return nil, fmt.Errorf("%w: failed to decode reservation list: %v", ErrInvalidResponse, err)
	}

	return toDomainList(payloads), nil
}

// Get получает бронирование по id
func (c *Client) Get(ctx context.Context, id string) (*domain.Reservation, error) {
	data, err := c.do(ctx, "get", http.MethodGet, "/internal/reservations/"+id, nil, nil)
	if err != nil {
		return nil, err
	}
	return c.decodeReservation(data)
}

// Create создает бронирование. Передаёт идемпотентный ключ, чтобы
// повтор запроса после сетевого сбоя не породил дубль.
func (c *Client) Create(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	body := createPayload{
		UserID:          r.UserID,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Date:            r.Date.String(),
		Slot:            r.Slot,
		Guests:          r.Guests,
		Tables:          r.Tables,
		SpecialRequests: r.SpecialRequests,
	}

	headers := map[string]string{"Idempotency-Key": uuid.NewString()}

	data, err := c.do(ctx, "create", http.MethodPost, "/internal/reservations", body, headers)
	if err != nil {
		return nil, err
	}
	return c.decodeReservation(data)
}

// Update изменяет существующее бронирование
func (c *Client) Update(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	body := updatePayload{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Date:            r.Date.String(),
		Slot:            r.Slot,
		Guests:          r.Guests,
		Tables:          r.Tables,
		SpecialRequests: r.SpecialRequests,
	}

	data, err := c.do(ctx, "update", http.MethodPut, "/internal/reservations/"+r.ID, body, nil)
	if err != nil {
		return nil, err
	}
	return c.decodeReservation(data)
}

// Cancel отменяет бронирование (переход статуса, запись сохраняется)
func (c *Client) Cancel(ctx context.Context, id string) (*domain.Reservation, error) {
	data, err := c.do(ctx, "cancel", http.MethodPatch, "/internal/reservations/"+id+"/cancel", nil, nil)
	if err != nil {
		return nil, err
	}
	return c.decodeReservation(data)
}

// SetStatus устанавливает статус бронирования (административная операция)
func (c *Client) SetStatus(ctx context.Context, id string, status domain.ReservationStatus) (*domain.Reservation, error) {
	data, err := c.do(ctx, "set_status", http.MethodPatch, "/internal/reservations/"+id+"/status", statusPayload{Status: string(status)}, nil)
	if err != nil {
		return nil, err
	}
	return c.decodeReservation(data)
}

// AssignTables назначает столики бронированию (административная операция).
// Хранилище может попутно продвинуть статус - вызывающий обязан
// перезагрузить коллекцию после успеха.
func (c *Client) AssignTables(ctx context.Context, id string, tables []int) (*domain.Reservation, error) {
	data, err := c.do(ctx, "assign_tables", http.MethodPatch, "/internal/reservations/"+id+"/tables", tablesPayload{Tables: tables}, nil)
	if err != nil {
		return nil, err
	}
	return c.decodeReservation(data)
}

// do выполняет запрос и разбирает конверт {success, data|error, code, details}
func (c *Client) do(ctx context.Context, operation, method, path string, body interface{}, headers map[string]string) (json.RawMessage, error) {
	started := time.Now()

	data, err := c.doRequest(ctx, method, path, body, headers)

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	if c.metrics != nil {
		c.metrics.ObserveStoreRequest(operation, outcome, time.Since(started))
	}

	return data, err
}

func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, headers map[string]string) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Reservation store request failed: %s %s: %v", method, path, err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		raw, _ := io.ReadAll(resp.Body)
		c.log.Error("Reservation store returned %d: %s %s: %s", resp.StatusCode, method, path, string(raw))
		return nil, fmt.Errorf("%w: status code %d", ErrUnavailable, resp.StatusCode)
	}

	var envelope apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode envelope: %v", ErrInvalidResponse, err)
	}

	if envelope.Success {
		return envelope.Data, nil
	}

	return nil, c.envelopeError(resp.StatusCode, &envelope)
}

// envelopeError конвертирует неуспешный конверт в ошибку клиента
func (c *Client) envelopeError(statusCode int, envelope *apiResponse) error {
	switch {
	case statusCode == http.StatusNotFound || envelope.Code == "NOT_FOUND":
		return ErrReservationNotFound

	case statusCode == http.StatusConflict || envelope.Code == "TABLE_CONFLICT":
		var details ConflictDetails
		if len(envelope.Details) > 0 {
			if err := json.Unmarshal(envelope.Details, &details); err != nil {
				c.log.Warn("Failed to decode conflict details: %v", err)
			}
		}
		return &StoreConflictError{Details: details}

	case statusCode == http.StatusBadRequest || envelope.Code == "VALIDATION":
		return fmt.Errorf("%w: %s", ErrInvalidInput, envelope.Error)

	default:
		return fmt.Errorf("%w: code=%s: %s", ErrInvalidResponse, envelope.Code, envelope.Error)
	}
}

func (c *Client) decodeReservation(data json.RawMessage) (*domain.Reservation, error) {
	var payload reservationPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode reservation: %v", ErrInvalidResponse, err)
	}
	return payload.toDomain(), nil
}
