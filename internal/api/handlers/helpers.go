package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Машиночитаемые коды ошибок в конверте ответа
const (
	CodeValidation   = "VALIDATION"
	CodeTransition   = "INVALID_TRANSITION"
	CodeConflict     = "TABLE_CONFLICT"
	CodeNotFound     = "NOT_FOUND"
	CodeAccessDenied = "ACCESS_DENIED"
	CodeUnavailable  = "STORE_UNAVAILABLE"
	CodeInternal     = "INTERNAL"
)

const msgInternalError = "internal server error"

// Envelope единый конверт ответа API: {success, data | error, code?, details?}.
// Форма совпадает с контрактом хранилища бронирований.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// ErrEmptyBody возвращается при пустом теле запроса
var ErrEmptyBody = errors.New("request body is empty")

// DecodeJSON разбирает JSON тело запроса в dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}

// RespondJSON пишет успешный ответ в конверте
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{Success: true, Data: data})
}

// RespondError пишет ошибку в конверте
func RespondError(w http.ResponseWriter, status int, message string, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{Success: false, Error: message, Code: code})
}

// RespondErrorDetails пишет ошибку с полезной нагрузкой деталей
// (например, список альтернативных свободных столиков)
func RespondErrorDetails(w http.ResponseWriter, status int, message string, code string, details interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{Success: false, Error: message, Code: code, Details: details})
}

// RespondBadRequest пишет 400 с сообщением
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message, CodeValidation)
}

// RespondNotFound пишет 404 с сообщением
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message, CodeNotFound)
}

// RespondForbidden пишет 403 с сообщением
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message, CodeAccessDenied)
}

// RespondUnavailable пишет 503 с сообщением
func RespondUnavailable(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusServiceUnavailable, message, CodeUnavailable)
}

// RespondInternalError пишет 500 с обезличенным сообщением
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError, CodeInternal)
}
