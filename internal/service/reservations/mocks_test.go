package reservations

import (
	"context"
	"time"

	"github.com/restoh/ReservationService/internal/domain"
	storeClient "github.com/restoh/ReservationService/internal/integrations/reservationstore"
)

// mockStoreClient мок клиента хранилища: настраиваемые ответы плюс
// счётчики вызовов для проверки политики перезагрузки
type mockStoreClient struct {
	reservations []*domain.Reservation
	listErr      error
	getErr       error
	cancelErr    error
	setStatusErr error
	assignErr    error

	listCalls      int
	cancelCalls    int
	setStatusCalls int
	assignCalls    int
}

func (m *mockStoreClient) List(_ context.Context) ([]*domain.Reservation, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.reservations, nil
}

func (m *mockStoreClient) Get(_ context.Context, id string) (*domain.Reservation, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, r := range m.reservations {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, storeClient.ErrReservationNotFound
}

func (m *mockStoreClient) Cancel(_ context.Context, id string) (*domain.Reservation, error) {
	m.cancelCalls++
	if m.cancelErr != nil {
		return nil, m.cancelErr
	}
	for _, r := range m.reservations {
		if r.ID == id {
			c := *r
			c.Status = domain.StatusCancelled
			return &c, nil
		}
	}
	return nil, storeClient.ErrReservationNotFound
}

func (m *mockStoreClient) SetStatus(_ context.Context, id string, status domain.ReservationStatus) (*domain.Reservation, error) {
	m.setStatusCalls++
	if m.setStatusErr != nil {
		return nil, m.setStatusErr
	}
	for _, r := range m.reservations {
		if r.ID == id {
			r.Status = status
			return r, nil
		}
	}
	return nil, storeClient.ErrReservationNotFound
}

func (m *mockStoreClient) AssignTables(_ context.Context, id string, tables []int) (*domain.Reservation, error) {
	m.assignCalls++
	if m.assignErr != nil {
		return nil, m.assignErr
	}
	for _, r := range m.reservations {
		if r.ID == id {
			r.Tables = tables
			return r, nil
		}
	}
	return nil, storeClient.ErrReservationNotFound
}

// fixedTimeProvider провайдер фиксированного времени для тестов
type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

// nopLogger глушит логи в тестах
type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
