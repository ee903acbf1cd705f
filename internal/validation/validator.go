package validation

import (
	"fmt"
	"regexp"
	"time"

	"github.com/restoh/ReservationService/internal/domain"
	"github.com/restoh/ReservationService/pkg/types"
)

// Сообщения об ошибках валидации
const (
	MsgDateRequired    = "Date is required"
	MsgDateInPast      = "Cannot book a date in the past"
	MsgDateTooFar      = "Cannot book more than 3 months in advance"
	MsgDateInvalid     = "Invalid date format, expected YYYY-MM-DD"
	MsgGuestsTooFew    = "Number of guests must be at least 1"
	MsgSlotRequired    = "Time slot is required"
	MsgSlotOutOfRange  = "Invalid time slot"
	MsgPhoneRequired   = "Phone number is required"
	MsgPhoneInvalid    = "Invalid phone number format"
	MsgTablesEmpty     = "Table selection cannot be empty"
)

// phonePattern национальный формат телефона: ведущий 0, затем цифра 1-9,
// далее четыре пары цифр с необязательными разделителями (пробел, точка, дефис)
var phonePattern = regexp.MustCompile(`^0[1-9]([ .\-]?[0-9]{2}){4}$`)

// Request запрос на создание или изменение бронирования.
// Поле Tables остаётся nil, если столики не передавались вовсе:
// явная передача пустого набора - ошибка, отсутствие поля - нет.
type Request struct {
	Date            types.DateString
	Slot            int
	Guests          int
	Phone           string
	Tables          []int
	TablesProvided  bool
	SpecialRequests string
}

// Result структурированный результат валидации.
// Валидатор никогда не паникует и не прерывается на первой ошибке -
// собираются все нарушения.
type Result struct {
	Valid  bool
	Errors []string
}

// Validate проверяет запрос на бронирование против бизнес-правил.
// Каждая проверка выполняется независимо от остальных.
func Validate(req *Request, policy domain.BookingPolicy, catalog *domain.SlotCatalog, now time.Time) Result {
	errs := make([]string, 0)

	errs = append(errs, validateDate(req.Date, policy, now)...)
	errs = append(errs, validateGuests(req.Guests, policy)...)
	errs = append(errs, validateSlot(req.Slot, catalog)...)
	errs = append(errs, validatePhone(req.Phone)...)
	errs = append(errs, validateTables(req)...)

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// validateDate проверяет дату: обязательна, не раньше сегодня
// (с точностью до календарного дня), не дальше горизонта бронирования
func validateDate(date types.DateString, policy domain.BookingPolicy, now time.Time) []string {
	if date.IsZero() {
		return []string{MsgDateRequired}
	}

	day, err := date.Parse()
	if err != nil {
		return []string{MsgDateInvalid}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return []string{MsgDateInPast}
	}

	horizon := today.AddDate(0, policy.BookingHorizonMonths, 0)
	if day.After(horizon) {
		return []string{MsgDateTooFar}
	}

	return nil
}

// validateGuests проверяет размер группы: целое от 1 до настроенного максимума
func validateGuests(guests int, policy domain.BookingPolicy) []string {
	errs := make([]string, 0, 1)
	if guests < domain.MinGuests {
		errs = append(errs, MsgGuestsTooFew)
	}
	if guests > policy.MaxGuests {
		errs = append(errs, fmt.Sprintf("Number of guests cannot exceed %d", policy.MaxGuests))
	}
	return errs
}

// validateSlot проверяет, что слот задан и присутствует в каталоге
func validateSlot(slot int, catalog *domain.SlotCatalog) []string {
	if slot == 0 {
		return []string{MsgSlotRequired}
	}
	if !catalog.InRange(slot) {
		return []string{MsgSlotOutOfRange}
	}
	return nil
}

// validatePhone проверяет телефон против национального формата.
// Нормализация двух принимаемых имён поля выполняется на границе API,
// сюда телефон приходит уже в каноническом поле.
func validatePhone(phone string) []string {
	if phone == "" {
		return []string{MsgPhoneRequired}
	}
	if !phonePattern.MatchString(phone) {
		return []string{MsgPhoneInvalid}
	}
	return nil
}

// validateTables проверяет назначение столиков: поле опционально,
// но явно переданный пустой набор - ошибка
func validateTables(req *Request) []string {
	if req.TablesProvided && len(req.Tables) == 0 {
		return []string{MsgTablesEmpty}
	}
	return nil
}
