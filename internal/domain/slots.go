package domain

import (
	"time"

	"github.com/restoh/ReservationService/pkg/types"
)

// Сессии обслуживания
const (
	SessionLunch  = "lunch"
	SessionDinner = "dinner"
)

// UnknownSlotLabel возвращается для слота, отсутствующего в каталоге
const UnknownSlotLabel = "N/A"

// TimeSlot описывает один бронируемый временной слот.
// Каталог слотов - конфигурационные данные, в бронировании хранится
// только целочисленный id.
type TimeSlot struct {
	ID      int
	Label   string // Время подачи в формате "HH:MM"
	Session string // lunch | dinner
}

// SlotCatalog статический каталог бронируемых слотов на день
type SlotCatalog struct {
	slots []TimeSlot
	byID  map[int]TimeSlot
}

// NewSlotCatalog создает каталог из списка слотов
func NewSlotCatalog(slots []TimeSlot) *SlotCatalog {
	byID := make(map[int]TimeSlot, len(slots))
	for _, s := range slots {
		byID[s.ID] = s
	}
	return &SlotCatalog{slots: slots, byID: byID}
}

// DefaultSlotCatalog возвращает каталог эталонного ресторана:
// обед 12:00-13:30, ужин 19:00-22:30 с шагом 30 минут.
// Граница между сессиями - данные каталога, а не литерал в коде.
func DefaultSlotCatalog() *SlotCatalog {
	return NewSlotCatalog([]TimeSlot{
		{ID: 1, Label: "12:00", Session: SessionLunch},
		{ID: 2, Label: "12:30", Session: SessionLunch},
		{ID: 3, Label: "13:00", Session: SessionLunch},
		{ID: 4, Label: "13:30", Session: SessionLunch},
		{ID: 5, Label: "19:00", Session: SessionDinner},
		{ID: 6, Label: "19:30", Session: SessionDinner},
		{ID: 7, Label: "20:00", Session: SessionDinner},
		{ID: 8, Label: "20:30", Session: SessionDinner},
		{ID: 9, Label: "21:00", Session: SessionDinner},
		{ID: 10, Label: "21:30", Session: SessionDinner},
		{ID: 11, Label: "22:00", Session: SessionDinner},
		{ID: 12, Label: "22:30", Session: SessionDinner},
	})
}

// Slots возвращает копию списка слотов каталога
func (c *SlotCatalog) Slots() []TimeSlot {
	result := make([]TimeSlot, len(c.slots))
	copy(result, c.slots)
	return result
}

// SlotsPerDay возвращает количество бронируемых слотов в дне
func (c *SlotCatalog) SlotsPerDay() int {
	return len(c.slots)
}

// InRange проверяет, что id слота присутствует в каталоге
func (c *SlotCatalog) InRange(slotID int) bool {
	_, ok := c.byID[slotID]
	return ok
}

// LabelFor возвращает время подачи слота или "N/A" для неизвестного id
func (c *SlotCatalog) LabelFor(slotID int) string {
	slot, ok := c.byID[slotID]
	if !ok {
		return UnknownSlotLabel
	}
	return slot.Label
}

// SessionFor возвращает сессию слота ("lunch"/"dinner") или пустую строку
func (c *SlotCatalog) SessionFor(slotID int) string {
	slot, ok := c.byID[slotID]
	if !ok {
		return ""
	}
	return slot.Session
}

// HasPassed проверяет, прошло ли время слота для указанной даты.
// Дата и настенное время слота комбинируются в ЛОКАЛЬНОМ часовом поясе
// вызывающего - конвертация через UTC дала бы сдвиг на день около полуночи.
// Неизвестный слот и некорректная дата считаются прошедшими.
func (c *SlotCatalog) HasPassed(date types.DateString, slotID int, now time.Time) bool {
	slot, ok := c.byID[slotID]
	if !ok {
		return true
	}

	day, err := date.Parse()
	if err != nil {
		return true
	}

	clock, err := time.Parse("15:04", slot.Label)
	if err != nil {
		return true
	}

	slotTime := time.Date(
		day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		now.Location(),
	)

	return slotTime.Before(now)
}
