package domain

// Default booking policy values
const (
	DefaultMaxGuests            = 12
	DefaultCapacitySlack        = 1 // Одно запасное место сверх числа гостей
	DefaultBookingHorizonMonths = 3
)

// Business validation constants
const (
	MinGuests                = 1
	MaxSpecialRequestsLength = 500
	MaxNameLength            = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BookingPolicy параметры бизнес-правил бронирования.
// Заполняется из конфигурации; литералы в алгоритмах запрещены.
type BookingPolicy struct {
	MaxGuests            int
	CapacitySlack        int // Допустимый запас мест при назначении столиков
	BookingHorizonMonths int // Горизонт бронирования вперёд
}

// DefaultBookingPolicy возвращает политику эталонного ресторана
func DefaultBookingPolicy() BookingPolicy {
	return BookingPolicy{
		MaxGuests:            DefaultMaxGuests,
		CapacitySlack:        DefaultCapacitySlack,
		BookingHorizonMonths: DefaultBookingHorizonMonths,
	}
}
