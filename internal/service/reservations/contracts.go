package reservations

import (
	"context"
	"time"

	"github.com/restoh/ReservationService/internal/domain"
)

// StoreClient интерфейс клиента хранилища бронирований
type StoreClient interface {
	List(ctx context.Context) ([]*domain.Reservation, error)
	Get(ctx context.Context, id string) (*domain.Reservation, error)
	Cancel(ctx context.Context, id string) (*domain.Reservation, error)
	SetStatus(ctx context.Context, id string, status domain.ReservationStatus) (*domain.Reservation, error)
	AssignTables(ctx context.Context, id string, tables []int) (*domain.Reservation, error)
}

// ReservationRegistry интерфейс in-memory коллекции бронирований
type ReservationRegistry interface {
	Loaded() bool
	Len() int
	Snapshot() []*domain.Reservation
	Get(id string) (*domain.Reservation, bool)
	ReplaceAll(reservations []*domain.Reservation)
	Add(r *domain.Reservation)
	Update(r *domain.Reservation) bool
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsCollector интерфейс для метрик размера кеша
type MetricsCollector interface {
	SetCachedReservations(n int)
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
