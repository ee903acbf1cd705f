package query

import (
	"sort"
	"strings"
	"time"

	"github.com/restoh/ReservationService/internal/domain"
	"github.com/restoh/ReservationService/pkg/types"
)

// Временные корзины фильтрации
const (
	TimeRangeToday    = "today"
	TimeRangeUpcoming = "upcoming"
	TimeRangePast     = "past"
)

// Filter композитный фильтр коллекции бронирований.
// Каждое поле опционально и независимо; пустой фильтр - no-op,
// возвращающий вход без изменений, никогда не ошибка.
type Filter struct {
	Status    *domain.ReservationStatus
	Date      *types.DateString
	UserID    *string
	TimeRange string // today | upcoming | past | ""
}

// IsValidTimeRange проверяет значение временной корзины
func IsValidTimeRange(s string) bool {
	return s == "" || s == TimeRangeToday || s == TimeRangeUpcoming || s == TimeRangePast
}

// Apply применяет фильтр к коллекции: сначала временная корзина,
// затем независимые предикаты статуса, даты и владельца.
func Apply(reservations []*domain.Reservation, f Filter, now time.Time) []*domain.Reservation {
	result := ByTimeRange(reservations, f.TimeRange, now)

	if f.Status != nil {
		result = ByStatus(result, *f.Status)
	}
	if f.Date != nil {
		result = ByDate(result, *f.Date)
	}
	if f.UserID != nil {
		result = ByUserID(result, *f.UserID)
	}

	return result
}

// ByStatus отбирает бронирования с точным совпадением статуса
func ByStatus(reservations []*domain.Reservation, status domain.ReservationStatus) []*domain.Reservation {
	result := make([]*domain.Reservation, 0)
	for _, r := range reservations {
		if r.Status == status {
			result = append(result, r)
		}
	}
	return result
}

// ByDate отбирает бронирования на указанную дату.
// Обе стороны сравнения нормализуются к YYYY-MM-DD: входная дата может
// прийти как голой датой, так и timestamp'ом.
func ByDate(reservations []*domain.Reservation, date types.DateString) []*domain.Reservation {
	result := make([]*domain.Reservation, 0)
	for _, r := range reservations {
		if r.Date.Equal(date) {
			result = append(result, r)
		}
	}
	return result
}

// ByUserID отбирает бронирования владельца
func ByUserID(reservations []*domain.Reservation, userID string) []*domain.Reservation {
	result := make([]*domain.Reservation, 0)
	for _, r := range reservations {
		if r.UserID == userID {
			result = append(result, r)
		}
	}
	return result
}

// ByTimeRange применяет временную корзину:
//   - today: дата равна локальному "сегодня" вызывающего;
//   - upcoming: дата >= сегодня И статус != cancelled, сортировка по дате
//     по возрастанию;
//   - past: дата < сегодня, сортировка по убыванию (свежие первыми).
//
// Пустая корзина возвращает вход без изменений.
func ByTimeRange(reservations []*domain.Reservation, timeRange string, now time.Time) []*domain.Reservation {
	today := types.Today(now)

	switch timeRange {
	case TimeRangeToday:
		result := make([]*domain.Reservation, 0)
		for _, r := range reservations {
			if r.Date.Equal(today) {
				result = append(result, r)
			}
		}
		return result

	case TimeRangeUpcoming:
		result := make([]*domain.Reservation, 0)
		for _, r := range reservations {
			if !r.Date.Before(today) && r.Status != domain.StatusCancelled {
				result = append(result, r)
			}
		}
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Date.Before(result[j].Date)
		})
		return result

	case TimeRangePast:
		result := make([]*domain.Reservation, 0)
		for _, r := range reservations {
			if r.Date.Before(today) {
				result = append(result, r)
			}
		}
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Date.After(result[j].Date)
		})
		return result

	default:
		return reservations
	}
}

// Search выполняет регистронезависимый поиск подстроки по имени, email,
// телефону и особым пожеланиям. Запрос обрезается по пробелам; пустой
// запрос возвращает вход без фильтрации.
func Search(reservations []*domain.Reservation, text string) []*domain.Reservation {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return reservations
	}

	result := make([]*domain.Reservation, 0)
	for _, r := range reservations {
		if strings.Contains(strings.ToLower(r.Name), needle) ||
			strings.Contains(strings.ToLower(r.Email), needle) ||
			strings.Contains(strings.ToLower(r.Phone), needle) ||
			strings.Contains(strings.ToLower(r.SpecialRequests), needle) {
			result = append(result, r)
		}
	}
	return result
}
