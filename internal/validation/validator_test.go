package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/restoh/ReservationService/internal/domain"
	"github.com/restoh/ReservationService/pkg/types"
)

var testNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.Local)

func validRequest() *Request {
	return &Request{
		Date:   types.DateString("2026-10-20"),
		Slot:   5,
		Guests: 4,
		Phone:  "0612345678",
	}
}

func runValidate(req *Request) Result {
	return Validate(req, domain.DefaultBookingPolicy(), domain.DefaultSlotCatalog(), testNow)
}

func TestValidateAcceptsValidRequest(t *testing.T) {
	result := runValidate(validRequest())

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name string
		date types.DateString
		want string
	}{
		{"missing", "", MsgDateRequired},
		{"malformed", "20/10/2026", MsgDateInvalid},
		{"in the past", "2026-10-14", MsgDateInPast},
		{"beyond horizon", "2027-01-16", MsgDateTooFar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Date = tt.date

			result := runValidate(req)
			assert.False(t, result.Valid)
			assert.Contains(t, result.Errors, tt.want)
		})
	}
}

func TestValidateDateBoundaries(t *testing.T) {
	// Сегодня - допустимо, независимо от времени суток
	req := validRequest()
	req.Date = "2026-10-15"
	assert.True(t, runValidate(req).Valid)

	// Ровно три месяца вперёд - допустимо
	req.Date = "2027-01-15"
	assert.True(t, runValidate(req).Valid)

	// На день дальше - отказ с точным текстом сообщения
	req.Date = "2027-01-16"
	result := runValidate(req)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Cannot book more than 3 months in advance")
}

func TestValidateGuests(t *testing.T) {
	req := validRequest()
	req.Guests = 0
	result := runValidate(req)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, MsgGuestsTooFew)

	req.Guests = -3
	result = runValidate(req)
	assert.Contains(t, result.Errors, MsgGuestsTooFew)

	req.Guests = 13
	result = runValidate(req)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Number of guests cannot exceed 12")

	req.Guests = 12
	assert.True(t, runValidate(req).Valid)
}

func TestValidateSlot(t *testing.T) {
	req := validRequest()
	req.Slot = 0
	result := runValidate(req)
	assert.Contains(t, result.Errors, MsgSlotRequired)

	req.Slot = 13
	result = runValidate(req)
	assert.Contains(t, result.Errors, MsgSlotOutOfRange)

	req.Slot = -1
	result = runValidate(req)
	assert.Contains(t, result.Errors, MsgSlotOutOfRange)
}

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"0612345678",
		"06 12 34 56 78",
		"06.12.34.56.78",
		"06-12-34-56-78",
	}
	for _, phone := range valid {
		req := validRequest()
		req.Phone = phone
		assert.True(t, runValidate(req).Valid, "phone %q must be accepted", phone)
	}

	invalid := []string{
		"0012345678",   // Вторая цифра не может быть 0
		"1612345678",   // Не начинается с 0
		"06123456",     // Слишком короткий
		"061234567890", // Слишком длинный
		"06_12_34_56_78",
		"abcdefghij",
	}
	for _, phone := range invalid {
		req := validRequest()
		req.Phone = phone
		result := runValidate(req)
		assert.False(t, result.Valid, "phone %q must be rejected", phone)
		assert.Contains(t, result.Errors, MsgPhoneInvalid)
	}

	req := validRequest()
	req.Phone = ""
	result := runValidate(req)
	assert.Contains(t, result.Errors, MsgPhoneRequired)
}

func TestValidateTables(t *testing.T) {
	// Поле не передавалось - столики назначат позже
	req := validRequest()
	req.Tables = nil
	req.TablesProvided = false
	assert.True(t, runValidate(req).Valid)

	// Явно переданный пустой набор - ошибка
	req.Tables = []int{}
	req.TablesProvided = true
	result := runValidate(req)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, MsgTablesEmpty)

	// Непустой набор проходит (вместимость проверяет аллокатор)
	req.Tables = []int{11}
	assert.True(t, runValidate(req).Valid)
}

func TestValidateCollectsAllViolations(t *testing.T) {
	req := &Request{
		Date:           types.DateString("2026-10-01"), // В прошлом
		Slot:           99,                             // Вне каталога
		Guests:         0,                              // Слишком мало
		Phone:          "12345",                        // Неверный формат
		Tables:         []int{},
		TablesProvided: true, // Пустой набор
	}

	result := runValidate(req)

	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 5)
	assert.Contains(t, result.Errors, MsgDateInPast)
	assert.Contains(t, result.Errors, MsgSlotOutOfRange)
	assert.Contains(t, result.Errors, MsgGuestsTooFew)
	assert.Contains(t, result.Errors, MsgPhoneInvalid)
	assert.Contains(t, result.Errors, MsgTablesEmpty)
}
