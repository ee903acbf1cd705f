package update_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restoh/ReservationService/internal/domain"
	"github.com/restoh/ReservationService/internal/infra/registry"
	storeClient "github.com/restoh/ReservationService/internal/integrations/reservationstore"
	"github.com/restoh/ReservationService/pkg/types"
)

var testNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.Local)

type mockStore struct {
	reservations []*domain.Reservation
	listErr      error
	updateErr    error
	updateCalls  int
}

func (m *mockStore) List(_ context.Context) ([]*domain.Reservation, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.reservations, nil
}

func (m *mockStore) Get(_ context.Context, id string) (*domain.Reservation, error) {
	for _, r := range m.reservations {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, storeClient.ErrReservationNotFound
}

func (m *mockStore) Update(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	m.updateCalls++
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	updated := *r
	updated.UpdatedAt = testNow
	return &updated, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

func setupUseCase(store *mockStore) (*UseCase, *registry.Registry) {
	reg := registry.New()
	uc := NewUseCase(
		store,
		reg,
		domain.DefaultSlotCatalog(),
		domain.DefaultFloorPlan(),
		domain.DefaultBookingPolicy(),
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc, reg
}

func storeFixture() *mockStore {
	return &mockStore{reservations: []*domain.Reservation{
		{ID: "r1", UserID: "u1", Name: "Alice", Phone: "0612345678", Date: "2026-10-20",
			Slot: 5, Guests: 2, Tables: []int{1}, Status: domain.StatusConfirmed},
		{ID: "r2", UserID: "u2", Name: "Bob", Phone: "0698765432", Date: "2026-10-20",
			Slot: 5, Guests: 4, Tables: []int{11}, Status: domain.StatusConfirmed},
		{ID: "r3", UserID: "u1", Name: "Alice", Phone: "0612345678", Date: "2026-10-01",
			Slot: 5, Guests: 2, Tables: []int{2}, Status: domain.StatusCompleted},
	}}
}

func validUpdateRequest() *Request {
	return &Request{
		ID:       "r1",
		CallerID: "u1",
		Name:     "Alice Martin",
		Email:    "alice@example.com",
		Phone:    "0612345678",
		Date:     types.DateString("2026-10-21"),
		Slot:     6,
		Guests:   2,
	}
}

func TestExecuteUpdatesReservation(t *testing.T) {
	store := storeFixture()
	uc, reg := setupUseCase(store)

	result, err := uc.Execute(context.Background(), validUpdateRequest())
	require.NoError(t, err)

	assert.Equal(t, "r1", result.ID)
	assert.Equal(t, "2026-10-21", result.Date)
	assert.Equal(t, 6, result.Slot)
	assert.Equal(t, 2, result.Guests)
	// Столики не передавались - назначение сохраняется
	assert.Equal(t, []int{1}, result.Tables)

	// Запись заменена на месте
	cached, ok := reg.Get("r1")
	require.True(t, ok)
	assert.Equal(t, types.DateString("2026-10-21"), cached.Date)
	assert.Equal(t, 3, reg.Len())
}

func TestExecuteNotFound(t *testing.T) {
	uc, _ := setupUseCase(storeFixture())

	req := validUpdateRequest()
	req.ID = "missing"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecuteAccessDenied(t *testing.T) {
	store := storeFixture()
	uc, _ := setupUseCase(store)

	req := validUpdateRequest()
	req.CallerID = "u2"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Администратор может редактировать чужое
	req.CallerID = "admin-1"
	req.IsAdmin = true
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecuteRefusesTerminalAndPast(t *testing.T) {
	store := storeFixture()
	store.reservations = append(store.reservations,
		&domain.Reservation{ID: "r4", UserID: "u1", Date: "2026-10-01", Slot: 5,
			Guests: 2, Status: domain.StatusConfirmed},
	)
	uc, _ := setupUseCase(store)

	// Завершённое бронирование
	req := validUpdateRequest()
	req.ID = "r3"
	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrCannotModify)
	assert.Contains(t, err.Error(), domain.ReasonTerminalStatus)

	// Прошедшее бронирование
	req.ID = "r4"
	_, err = uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrCannotModify)
	assert.Contains(t, err.Error(), domain.ReasonPastReservation)
}

func TestExecuteRevalidatesFields(t *testing.T) {
	store := storeFixture()
	uc, _ := setupUseCase(store)

	req := validUpdateRequest()
	req.Phone = "bad"
	req.Guests = 0

	_, err := uc.Execute(context.Background(), req)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Messages, 2)
	assert.Equal(t, 0, store.updateCalls)
}

func TestExecuteValidatesReassignedTables(t *testing.T) {
	store := storeFixture()
	uc, _ := setupUseCase(store)

	req := validUpdateRequest()
	req.Guests = 2
	req.Tables = []int{19} // Шестёрка для пары
	req.TablesProvided = true

	_, err := uc.Execute(context.Background(), req)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Messages, msgTooMuchCapacity)
}

func TestExecuteSelfConflictExcluded(t *testing.T) {
	store := storeFixture()
	uc, _ := setupUseCase(store)

	// r1 сохраняет свой столик на ту же дату и слот: собственная запись
	// не считается конфликтом
	req := validUpdateRequest()
	req.Date = "2026-10-20"
	req.Slot = 5
	req.Guests = 2
	req.Tables = []int{1}
	req.TablesProvided = true

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecuteConflictWithOtherReservation(t *testing.T) {
	store := storeFixture()
	uc, _ := setupUseCase(store)

	// Попытка пересесть на столик 11, удерживаемый r2
	req := validUpdateRequest()
	req.Date = "2026-10-20"
	req.Slot = 5
	req.Guests = 4
	req.Tables = []int{11}
	req.TablesProvided = true

	_, err := uc.Execute(context.Background(), req)

	var conflictErr *domain.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	require.Len(t, conflictErr.Conflicts, 1)
	assert.Equal(t, "r2", conflictErr.Conflicts[0].ID)
	// Собственный столик кандидата свободен для него
	assert.Contains(t, conflictErr.AvailableTables, 1)
	assert.Equal(t, 0, store.updateCalls)
}

func TestExecuteStoreFailureLeavesCacheUntouched(t *testing.T) {
	store := storeFixture()
	uc, reg := setupUseCase(store)

	store.updateErr = storeClient.ErrUnavailable

	_, err := uc.Execute(context.Background(), validUpdateRequest())
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	cached, ok := reg.Get("r1")
	require.True(t, ok)
	assert.Equal(t, types.DateString("2026-10-20"), cached.Date)
	assert.Equal(t, 2, cached.Guests)
}
