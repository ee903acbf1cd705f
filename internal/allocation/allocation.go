package allocation

import (
	"fmt"
	"sort"

	"github.com/restoh/ReservationService/internal/domain"
	"github.com/restoh/ReservationService/pkg/types"
)

// TotalCapacity возвращает суммарную вместимость набора столиков.
// Неизвестные id вносят 0 мест.
func TotalCapacity(plan *domain.FloorPlan, tableIDs []int) int {
	return plan.TotalCapacity(tableIDs)
}

// WouldExceedCapacity проверяет, приведёт ли добавление столика candidateID
// к превышению допустимой вместимости partySize + slack.
// Снятие уже выбранного столика превышением не считается никогда.
// Запас slack - осознанное бизнес-правило (одно свободное место допустимо),
// порог должен сохраняться точно.
func WouldExceedCapacity(plan *domain.FloorPlan, selected []int, candidateID int, partySize int, slack int) bool {
	for _, id := range selected {
		if id == candidateID {
			return false
		}
	}
	total := plan.TotalCapacity(selected) + plan.CapacityOf(candidateID)
	return total > partySize+slack
}

// SuggestTables подбирает столики под размер группы из доступных.
// Кандидаты сортируются по вместимости по возрастанию (при равенстве -
// по id, для детерминизма). Если есть одиночный столик с вместимостью
// >= partySize, возвращается именно он (best-fit, не first-fit). Иначе
// столики накапливаются от меньшего к большему, пока суммарная
// вместимость не покроет группу.
func SuggestTables(partySize int, available []domain.Table) []int {
	if partySize <= 0 || len(available) == 0 {
		return []int{}
	}

	candidates := make([]domain.Table, len(available))
	copy(candidates, available)
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Capacity != candidates[j].Capacity {
			return candidates[i].Capacity < candidates[j].Capacity
		}
		return candidates[i].ID < candidates[j].ID
	})

	// Best-fit: наименьший одиночный столик, вмещающий всю группу
	for _, t := range candidates {
		if t.Capacity >= partySize {
			return []int{t.ID}
		}
	}

	// Комбинация: накапливаем от меньшего к большему
	combo := make([]int, 0)
	total := 0
	for _, t := range candidates {
		combo = append(combo, t.ID)
		total += t.Capacity
		if total >= partySize {
			return combo
		}
	}

	// Вместимости всех доступных столиков не хватает
	return []int{}
}

// Conflicts возвращает бронирования, конфликтующие с кандидатом.
// Конфликт - совпадение даты, слота и хотя бы одного столика при
// статусе существующего бронирования confirmed или seated. Отменённые,
// завершённые и no-show бронирования конфликтов не создают.
// Собственная запись кандидата (по id) исключается, чтобы обновление
// не конфликтовало само с собой.
//
// Этот предикат - ключевая гарантия корректности: два нетерминальных
// бронирования не должны удерживать один столик в один дата+слот.
func Conflicts(candidate *domain.Reservation, existing []*domain.Reservation) []*domain.Reservation {
	conflicts := make([]*domain.Reservation, 0)

	if candidate == nil || len(candidate.Tables) == 0 {
		return conflicts
	}

	for _, r := range existing {
		if r.ID != "" && r.ID == candidate.ID {
			continue
		}
		if !r.HoldsTables() {
			continue
		}
		if !r.Date.Equal(candidate.Date) || r.Slot != candidate.Slot {
			continue
		}
		if sharesTable(candidate.Tables, r.Tables) {
			conflicts = append(conflicts, r)
		}
	}

	return conflicts
}

// FreeTables возвращает столики, не удерживаемые ни одним нетерминальным
// бронированием на указанную дату и слот. Собственная запись excludeID
// не учитывается как занимающая.
func FreeTables(plan *domain.FloorPlan, date types.DateString, slot int, existing []*domain.Reservation, excludeID string) []domain.Table {
	held := make(map[int]bool)
	for _, r := range existing {
		if r.ID != "" && r.ID == excludeID {
			continue
		}
		if !r.HoldsTables() {
			continue
		}
		if !r.Date.Equal(date) || r.Slot != slot {
			continue
		}
		for _, id := range r.Tables {
			held[id] = true
		}
	}

	free := make([]domain.Table, 0)
	for _, t := range plan.Tables() {
		if !held[t.ID] {
			free = append(free, t)
		}
	}
	return free
}

// ValidateAssignment проверяет инвариант назначения столиков:
// все столики существуют в плане зала, а суммарная вместимость лежит
// в окне [guests, guests+slack].
func ValidateAssignment(plan *domain.FloorPlan, tableIDs []int, guests int, slack int) error {
	for _, id := range tableIDs {
		if !plan.Exists(id) {
			return fmt.Errorf("%w: table %d", ErrUnknownTable, id)
		}
	}

	total := plan.TotalCapacity(tableIDs)
	if total < guests {
		return fmt.Errorf("%w: capacity %d is below party size %d", ErrInsufficientCapacity, total, guests)
	}
	if total > guests+slack {
		return fmt.Errorf("%w: capacity %d exceeds party size %d plus %d spare seat(s)", ErrExcessiveCapacity, total, guests, slack)
	}
	return nil
}

func sharesTable(a, b []int) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
