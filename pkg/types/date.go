package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateFormat формат календарной даты (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// ErrInvalidDateFormat возвращается при некорректном формате даты
var ErrInvalidDateFormat = errors.New("invalid date string format, expected YYYY-MM-DD")

// DateString календарная дата в формате "YYYY-MM-DD" без времени суток.
// Все сравнения выполняются с точностью до календарного дня в локальном
// часовом поясе - конвертация через UTC запрещена, чтобы не получить
// сдвиг на день около полуночи.
type DateString string

// NewDateString создает DateString из time.Time (время суток отбрасывается)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateFormat))
}

// NormalizeDateString приводит дату к виду "YYYY-MM-DD".
// Входные значения могут приходить как голой датой, так и timestamp'ом
// ("2025-10-15T19:00:00Z", "2025-10-15 19:00:00") - обрезаем по первому
// разделителю времени.
func NormalizeDateString(s string) DateString {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "T "); i >= 0 {
		s = s[:i]
	}
	return DateString(s)
}

// String возвращает строковое представление даты
func (d DateString) String() string {
	return string(d)
}

// IsZero возвращает true, если дата не задана
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate проверяет, что дата имеет корректный формат
func (d DateString) Validate() error {
	if _, err := time.ParseInLocation(DateFormat, string(d), time.Local); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	return nil
}

// Parse разбирает дату в time.Time (полночь локального времени)
func (d DateString) Parse() (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, string(d), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	return t, nil
}

// Equal возвращает true, если даты совпадают после нормализации
func (d DateString) Equal(other DateString) bool {
	return NormalizeDateString(string(d)) == NormalizeDateString(string(other))
}

// Before возвращает true, если дата строго раньше other.
// Лексикографическое сравнение корректно для формата YYYY-MM-DD.
func (d DateString) Before(other DateString) bool {
	return string(NormalizeDateString(string(d))) < string(NormalizeDateString(string(other)))
}

// After возвращает true, если дата строго позже other
func (d DateString) After(other DateString) bool {
	return string(NormalizeDateString(string(d))) > string(NormalizeDateString(string(other)))
}

// Today возвращает сегодняшнюю дату по локальным часам вызывающего
func Today(now time.Time) DateString {
	return NewDateString(now)
}
