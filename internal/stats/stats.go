package stats

import (
	"math"
	"sort"
	"time"

	"github.com/restoh/ReservationService/internal/domain"
	"github.com/restoh/ReservationService/pkg/types"
)

// Summary сводные счётчики по коллекции бронирований.
// Все редьюсеры - тотальные функции: пустой или nil вход даёт полностью
// заполненную нулевую структуру, а не ошибку и не отсутствующие поля.
type Summary struct {
	Total         int
	ByStatus      map[domain.ReservationStatus]int
	TodayTotal    int
	TodayByStatus map[domain.ReservationStatus]int

	// Суммы гостей учитывают только статусы confirmed/seated/completed:
	// отменённые и no-show исключаются из посадочных мест
	TotalGuests int
	TodayGuests int
}

// SlotCount количество бронирований на один слот
type SlotCount struct {
	Slot  int
	Label string
	Count int
}

// Utilization загрузка зала
type Utilization struct {
	UsedSlots       int
	TotalSlots      int
	UtilizationRate float64 // Процент, округлён до одного знака
}

// Cancellation счётчики и доли отмен
type Cancellation struct {
	Total            int
	Cancelled        int
	NoShow           int
	Completed        int
	CancellationRate float64 // Проценты от всей коллекции, один знак
	NoShowRate       float64
	CompletionRate   float64
}

// PartyFilter опциональный фильтр для среднего размера группы
type PartyFilter struct {
	Status    *domain.ReservationStatus
	StartDate *types.DateString
	EndDate   *types.DateString
}

// newStatusCounts возвращает карту счётчиков со всеми статусами,
// инициализированными нулём - ни одно поле не отсутствует в ответе
func newStatusCounts() map[domain.ReservationStatus]int {
	counts := make(map[domain.ReservationStatus]int, len(domain.AllStatuses))
	for _, s := range domain.AllStatuses {
		counts[s] = 0
	}
	return counts
}

// Stats считает сводку по всей коллекции: общий счётчик, разбивку по
// статусам, ту же разбивку по сегодняшнему дню и суммы гостей.
func Stats(reservations []*domain.Reservation, now time.Time) Summary {
	summary := Summary{
		ByStatus:      newStatusCounts(),
		TodayByStatus: newStatusCounts(),
	}

	today := types.Today(now)

	for _, r := range reservations {
		summary.Total++
		summary.ByStatus[r.Status]++

		counted := r.CountsGuests()
		if counted {
			summary.TotalGuests += r.Guests
		}

		if r.Date.Equal(today) {
			summary.TodayTotal++
			summary.TodayByStatus[r.Status]++
			if counted {
				summary.TodayGuests += r.Guests
			}
		}
	}

	return summary
}

// DateRangeStats считает ту же сводку по включительному окну дат
func DateRangeStats(reservations []*domain.Reservation, start, end types.DateString, now time.Time) Summary {
	window := make([]*domain.Reservation, 0)
	for _, r := range reservations {
		if r.Date.Before(start) || r.Date.After(end) {
			continue
		}
		window = append(window, r)
	}
	return Stats(window, now)
}

// PeakHours строит гистограмму слот -> количество бронирований по ВСЕМ
// статусам (сигнал спроса, отмены учитываются) и сортирует по убыванию
// счётчика. Слоты без бронирований опускаются, не заполняются нулями.
// При равных счётчиках порядок - по возрастанию id слота, для
// детерминизма.
func PeakHours(reservations []*domain.Reservation, catalog *domain.SlotCatalog) []SlotCount {
	counts := make(map[int]int)
	for _, r := range reservations {
		counts[r.Slot]++
	}

	result := make([]SlotCount, 0, len(counts))
	for slot, count := range counts {
		result = append(result, SlotCount{
			Slot:  slot,
			Label: catalog.LabelFor(slot),
			Count: count,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Slot < result[j].Slot
	})

	return result
}

// TableUtilization считает загрузку зала.
// usedSlots - бронирования со статусом confirmed/seated/completed,
// удерживающие хотя бы один столик. totalSlots - различные даты
// коллекции x слотов в дне x столиков. Пустая коллекция или нулевое
// число столиков дают нулевую загрузку.
func TableUtilization(reservations []*domain.Reservation, totalTables int, slotsPerDay int) Utilization {
	if totalTables <= 0 || len(reservations) == 0 {
		return Utilization{}
	}

	used := 0
	dates := make(map[types.DateString]bool)

	for _, r := range reservations {
		dates[types.NormalizeDateString(r.Date.String())] = true
		if r.CountsGuests() && r.HasTables() {
			used++
		}
	}

	total := len(dates) * slotsPerDay * totalTables
	if total == 0 {
		return Utilization{UsedSlots: used}
	}

	return Utilization{
		UsedSlots:       used,
		TotalSlots:      total,
		UtilizationRate: round1(float64(used) / float64(total) * 100),
	}
}

// CancellationRate считает счётчики и процентные доли отмен, no-show и
// завершённых бронирований от всей коллекции. Проценты округляются до
// одного знака после запятой.
func CancellationRate(reservations []*domain.Reservation) Cancellation {
	result := Cancellation{Total: len(reservations)}

	for _, r := range reservations {
		switch r.Status {
		case domain.StatusCancelled:
			result.Cancelled++
		case domain.StatusNoShow:
			result.NoShow++
		case domain.StatusCompleted:
			result.Completed++
		}
	}

	if result.Total == 0 {
		return result
	}

	total := float64(result.Total)
	result.CancellationRate = round1(float64(result.Cancelled) / total * 100)
	result.NoShowRate = round1(float64(result.NoShow) / total * 100)
	result.CompletionRate = round1(float64(result.Completed) / total * 100)

	return result
}

// AveragePartySize считает средний размер группы после применения
// опционального фильтра по статусу и окну дат. Пустой результат даёт 0.
// Округление до одного знака.
func AveragePartySize(reservations []*domain.Reservation, filter *PartyFilter) float64 {
	guests := 0
	count := 0

	for _, r := range reservations {
		if filter != nil {
			if filter.Status != nil && r.Status != *filter.Status {
				continue
			}
			if filter.StartDate != nil && r.Date.Before(*filter.StartDate) {
				continue
			}
			if filter.EndDate != nil && r.Date.After(*filter.EndDate) {
				continue
			}
		}
		guests += r.Guests
		count++
	}

	if count == 0 {
		return 0
	}
	return round1(float64(guests) / float64(count))
}

// round1 округляет до одного знака после запятой
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
