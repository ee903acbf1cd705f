package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/restoh/ReservationService/internal/domain"
	"github.com/restoh/ReservationService/pkg/types"
)

func testReservation(id string, date types.DateString, slot int, tables []int, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:     id,
		Date:   date,
		Slot:   slot,
		Tables: tables,
		Status: status,
	}
}

func TestWouldExceedCapacity(t *testing.T) {
	plan := domain.DefaultFloorPlan()
	slack := 1

	// Двушка для пары: 2 <= 2+1
	assert.False(t, WouldExceedCapacity(plan, nil, 1, 2, slack))

	// Четвёрка для пары: 4 > 2+1
	assert.True(t, WouldExceedCapacity(plan, nil, 11, 2, slack))

	// Двушка к уже выбранной двушке для двоих: 4 > 3
	assert.True(t, WouldExceedCapacity(plan, []int{1}, 2, 2, slack))

	// Двушка к двушке для четверых: 4 <= 5
	assert.False(t, WouldExceedCapacity(plan, []int{1}, 2, 4, slack))

	// Уже выбранный столик никогда не считается превышением:
	// повторный клик - это снятие выбора
	assert.False(t, WouldExceedCapacity(plan, []int{11}, 11, 2, slack))
}

func TestSuggestTablesBestFitSingle(t *testing.T) {
	available := []domain.Table{
		{ID: 1, Capacity: 2},
		{ID: 11, Capacity: 4},
		{ID: 19, Capacity: 6},
	}

	// Для четверых - четвёрка, а не шестёрка и не 2+2
	assert.Equal(t, []int{11}, SuggestTables(4, available))

	// Для двоих - двушка
	assert.Equal(t, []int{1}, SuggestTables(2, available))

	// Для троих - наименьший вмещающий одиночный, это четвёрка
	assert.Equal(t, []int{11}, SuggestTables(3, available))

	// Для шестерых - шестёрка
	assert.Equal(t, []int{19}, SuggestTables(6, available))
}

func TestSuggestTablesAccumulatesSmallestFirst(t *testing.T) {
	available := []domain.Table{
		{ID: 2, Capacity: 2},
		{ID: 1, Capacity: 2},
		{ID: 11, Capacity: 4},
	}

	// Никто не вмещает 7 в одиночку: копим от меньшего к большему,
	// при равной вместимости - по возрастанию id
	assert.Equal(t, []int{1, 2, 11}, SuggestTables(7, available))
}

func TestSuggestTablesInsufficientCapacity(t *testing.T) {
	available := []domain.Table{{ID: 1, Capacity: 2}, {ID: 2, Capacity: 2}}

	assert.Empty(t, SuggestTables(10, available))
	assert.Empty(t, SuggestTables(4, nil))
	assert.Empty(t, SuggestTables(0, available))
}

func TestConflicts(t *testing.T) {
	date := types.DateString("2026-10-20")
	existing := []*domain.Reservation{
		testReservation("r1", date, 5, []int{1, 2}, domain.StatusConfirmed),
		testReservation("r2", date, 5, []int{3}, domain.StatusSeated),
		testReservation("r3", date, 5, []int{4}, domain.StatusCancelled),
		testReservation("r4", date, 6, []int{1}, domain.StatusConfirmed),
		testReservation("r5", "2026-10-21", 5, []int{1}, domain.StatusConfirmed),
	}

	// Пересечение по столику 1 в ту же дату и слот
	candidate := testReservation("", date, 5, []int{1}, domain.StatusConfirmed)
	conflicts := Conflicts(candidate, existing)
	assert.Len(t, conflicts, 1)
	assert.Equal(t, "r1", conflicts[0].ID)

	// Отменённое бронирование столик не удерживает
	candidate = testReservation("", date, 5, []int{4}, domain.StatusConfirmed)
	assert.Empty(t, Conflicts(candidate, existing))

	// Другой слот того же дня - не конфликт
	candidate = testReservation("", date, 7, []int{1}, domain.StatusConfirmed)
	assert.Empty(t, Conflicts(candidate, existing))

	// Seated удерживает столик
	candidate = testReservation("", date, 5, []int{3}, domain.StatusConfirmed)
	conflicts = Conflicts(candidate, existing)
	assert.Len(t, conflicts, 1)
	assert.Equal(t, "r2", conflicts[0].ID)
}

func TestConflictsExcludesSelf(t *testing.T) {
	date := types.DateString("2026-10-20")
	existing := []*domain.Reservation{
		testReservation("r1", date, 5, []int{1}, domain.StatusConfirmed),
	}

	// Обновление r1 не конфликтует с собственной записью
	candidate := testReservation("r1", date, 5, []int{1, 2}, domain.StatusConfirmed)
	assert.Empty(t, Conflicts(candidate, existing))
}

func TestConflictsNormalizesDates(t *testing.T) {
	existing := []*domain.Reservation{
		testReservation("r1", "2026-10-20T00:00:00Z", 5, []int{1}, domain.StatusConfirmed),
	}

	candidate := testReservation("", "2026-10-20", 5, []int{1}, domain.StatusConfirmed)
	assert.Len(t, Conflicts(candidate, existing), 1)
}

func TestConflictsWithoutTables(t *testing.T) {
	existing := []*domain.Reservation{
		testReservation("r1", "2026-10-20", 5, []int{1}, domain.StatusConfirmed),
	}

	// Кандидат без столиков не может конфликтовать
	candidate := testReservation("", "2026-10-20", 5, nil, domain.StatusConfirmed)
	assert.Empty(t, Conflicts(candidate, existing))
	assert.Empty(t, Conflicts(nil, existing))
}

func TestFreeTables(t *testing.T) {
	plan := domain.NewFloorPlan([]domain.Table{
		{ID: 1, Capacity: 2},
		{ID: 2, Capacity: 2},
		{ID: 3, Capacity: 4},
	})
	date := types.DateString("2026-10-20")
	existing := []*domain.Reservation{
		testReservation("r1", date, 5, []int{1}, domain.StatusConfirmed),
		testReservation("r2", date, 5, []int{2}, domain.StatusCancelled),
	}

	free := FreeTables(plan, date, 5, existing, "")
	assert.Equal(t, []domain.Table{{ID: 2, Capacity: 2}, {ID: 3, Capacity: 4}}, free)

	// Исключение собственной записи освобождает её столики
	free = FreeTables(plan, date, 5, existing, "r1")
	assert.Len(t, free, 3)

	// В другом слоте всё свободно
	free = FreeTables(plan, date, 6, existing, "")
	assert.Len(t, free, 3)
}

func TestValidateAssignment(t *testing.T) {
	plan := domain.DefaultFloorPlan()
	slack := 1

	// Четвёрка для четверых - в окне [4, 5]
	assert.NoError(t, ValidateAssignment(plan, []int{11}, 4, slack))

	// Двушка+двушка для троих: 4 в окне [3, 4]
	assert.NoError(t, ValidateAssignment(plan, []int{1, 2}, 3, slack))

	// Неизвестный столик
	assert.ErrorIs(t, ValidateAssignment(plan, []int{99}, 2, slack), ErrUnknownTable)

	// Вместимости не хватает
	assert.ErrorIs(t, ValidateAssignment(plan, []int{1}, 4, slack), ErrInsufficientCapacity)

	// Слишком много мест: шестёрка для троих, 6 > 3+1
	assert.ErrorIs(t, ValidateAssignment(plan, []int{19}, 3, slack), ErrExcessiveCapacity)
}

func TestTotalCapacity(t *testing.T) {
	plan := domain.DefaultFloorPlan()

	assert.Equal(t, 6, TotalCapacity(plan, []int{1, 2, 3}))
	assert.Equal(t, 0, TotalCapacity(plan, nil))
}
