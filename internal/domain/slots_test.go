package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/restoh/ReservationService/pkg/types"
)

func TestDefaultSlotCatalog(t *testing.T) {
	catalog := DefaultSlotCatalog()

	assert.Equal(t, 12, catalog.SlotsPerDay())
	assert.Equal(t, "12:00", catalog.LabelFor(1))
	assert.Equal(t, "13:30", catalog.LabelFor(4))
	assert.Equal(t, "19:00", catalog.LabelFor(5))
	assert.Equal(t, "22:30", catalog.LabelFor(12))

	assert.Equal(t, SessionLunch, catalog.SessionFor(4))
	assert.Equal(t, SessionDinner, catalog.SessionFor(5))
}

func TestLabelForUnknownSlot(t *testing.T) {
	catalog := DefaultSlotCatalog()

	assert.Equal(t, UnknownSlotLabel, catalog.LabelFor(0))
	assert.Equal(t, UnknownSlotLabel, catalog.LabelFor(99))
	assert.Equal(t, "", catalog.SessionFor(99))
}

func TestInRange(t *testing.T) {
	catalog := DefaultSlotCatalog()

	assert.True(t, catalog.InRange(1))
	assert.True(t, catalog.InRange(12))
	assert.False(t, catalog.InRange(0))
	assert.False(t, catalog.InRange(13))
	assert.False(t, catalog.InRange(-1))
}

func TestHasPassed(t *testing.T) {
	catalog := DefaultSlotCatalog()
	// 15 октября, 20:15 по локальным часам
	now := time.Date(2026, 10, 15, 20, 15, 0, 0, time.Local)

	tests := []struct {
		name string
		date types.DateString
		slot int
		want bool
	}{
		{"earlier slot today", "2026-10-15", 5, true},   // 19:00
		{"later slot today", "2026-10-15", 9, false},    // 21:00
		{"yesterday", "2026-10-14", 12, true},           // 22:30
		{"tomorrow lunch", "2026-10-16", 1, false},      // 12:00
		{"unknown slot", "2026-10-16", 99, true},        // Считается прошедшим
		{"invalid date", "not-a-date", 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.HasPassed(tt.date, tt.slot, now))
		})
	}
}

// Время слота комбинируется с датой в локальном поясе: около полуночи
// конвертация через UTC сдвинула бы дату и дала бы неверный результат.
func TestHasPassedNearMidnightUsesLocalTime(t *testing.T) {
	catalog := DefaultSlotCatalog()
	loc := time.FixedZone("UTC+3", 3*60*60)

	// 23:30 локального времени 15-го: последний слот (22:30) уже прошёл,
	// хотя в UTC ещё 20:30 того же дня
	now := time.Date(2026, 10, 15, 23, 30, 0, 0, loc)
	assert.True(t, catalog.HasPassed("2026-10-15", 12, now))

	// Завтрашний ужин не прошёл
	assert.False(t, catalog.HasPassed("2026-10-16", 12, now))
}
