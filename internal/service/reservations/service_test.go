package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restoh/ReservationService/internal/domain"
	"github.com/restoh/ReservationService/internal/infra/registry"
	storeClient "github.com/restoh/ReservationService/internal/integrations/reservationstore"
	"github.com/restoh/ReservationService/internal/query"
	"github.com/restoh/ReservationService/internal/service/reservations/models"
)

var testNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.Local)

func setupService(store *mockStoreClient) (*Service, *registry.Registry) {
	reg := registry.New()
	svc := NewService(
		store,
		reg,
		domain.DefaultSlotCatalog(),
		domain.DefaultFloorPlan(),
		domain.DefaultBookingPolicy(),
		nopLogger{},
	)
	svc.timeProvider = &fixedTimeProvider{now: testNow}
	return svc, reg
}

func storeFixture() *mockStoreClient {
	return &mockStoreClient{reservations: []*domain.Reservation{
		{ID: "r1", UserID: "u1", Date: "2026-10-20", Slot: 5, Guests: 2, Tables: []int{1}, Status: domain.StatusConfirmed},
		{ID: "r2", UserID: "u2", Date: "2026-10-20", Slot: 5, Guests: 4, Tables: []int{11}, Status: domain.StatusConfirmed},
		{ID: "r3", UserID: "u1", Date: "2026-10-10", Slot: 7, Guests: 2, Tables: []int{2}, Status: domain.StatusCompleted},
	}}
}

func TestListLoadsOnceForUserMode(t *testing.T) {
	store := storeFixture()
	svc, _ := setupService(store)

	req := &models.ListRequest{CallerID: "u1", IsAdmin: true}

	_, err := svc.List(context.Background(), req)
	require.NoError(t, err)
	_, err = svc.List(context.Background(), req)
	require.NoError(t, err)

	// Пользовательский режим обслуживается из кеша после первой загрузки
	assert.Equal(t, 1, store.listCalls)
}

func TestListStaffModeForcesReload(t *testing.T) {
	store := storeFixture()
	svc, _ := setupService(store)

	req := &models.ListRequest{CallerID: "u1", IsAdmin: true, Staff: true}

	_, err := svc.List(context.Background(), req)
	require.NoError(t, err)
	_, err = svc.List(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 2, store.listCalls)
}

func TestListNonAdminSeesOnlyOwnReservations(t *testing.T) {
	svc, _ := setupService(storeFixture())

	result, err := svc.List(context.Background(), &models.ListRequest{CallerID: "u1"})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Total)
	for _, r := range result.Reservations {
		assert.Equal(t, "u1", r.UserID)
	}
}

func TestListAdminFiltersByUserID(t *testing.T) {
	svc, _ := setupService(storeFixture())

	userID := "u2"
	result, err := svc.List(context.Background(), &models.ListRequest{
		CallerID: "admin-1",
		IsAdmin:  true,
		UserID:   &userID,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Total)
	assert.Equal(t, "r2", result.Reservations[0].ID)
}

func TestListRejectsUnknownTimeRange(t *testing.T) {
	svc, _ := setupService(storeFixture())

	_, err := svc.List(context.Background(), &models.ListRequest{CallerID: "u1", TimeRange: "tomorrow"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListAppliesTimeRangeAndSearch(t *testing.T) {
	store := &mockStoreClient{reservations: []*domain.Reservation{
		{ID: "r1", UserID: "u1", Name: "Alice", Date: "2026-10-20", Slot: 5, Status: domain.StatusConfirmed},
		{ID: "r2", UserID: "u1", Name: "Bob", Date: "2026-10-21", Slot: 5, Status: domain.StatusConfirmed},
		{ID: "r3", UserID: "u1", Name: "Alice", Date: "2026-10-01", Slot: 5, Status: domain.StatusCompleted},
	}}
	svc, _ := setupService(store)

	result, err := svc.List(context.Background(), &models.ListRequest{
		CallerID:  "u1",
		TimeRange: query.TimeRangeUpcoming,
		Search:    "alice",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Total)
	assert.Equal(t, "r1", result.Reservations[0].ID)
}

func TestGetByIDOwnership(t *testing.T) {
	svc, _ := setupService(storeFixture())

	// Владелец видит своё бронирование
	result, err := svc.GetByID(context.Background(), "r1", "u1", false)
	require.NoError(t, err)
	assert.Equal(t, "r1", result.ID)

	// Чужое бронирование - отказ
	_, err = svc.GetByID(context.Background(), "r1", "u2", false)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Администратор видит любое
	result, err = svc.GetByID(context.Background(), "r1", "admin-1", true)
	require.NoError(t, err)
	assert.Equal(t, "r1", result.ID)
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _ := setupService(storeFixture())

	_, err := svc.GetByID(context.Background(), "missing", "u1", true)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancelReplacesInPlace(t *testing.T) {
	store := storeFixture()
	svc, reg := setupService(store)
	require.NoError(t, svc.Refresh(context.Background(), false))

	result, err := svc.Cancel(context.Background(), "r1", &models.CancelRequest{CallerID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), result.Status)

	// Точечная замена, без полной перезагрузки
	assert.Equal(t, 1, store.listCalls)
	cached, ok := reg.Get("r1")
	require.True(t, ok)
	assert.Equal(t, domain.StatusCancelled, cached.Status)
	assert.Equal(t, 3, reg.Len())
}

func TestCancelAddsRecordMissingFromCollection(t *testing.T) {
	store := storeFixture()
	svc, reg := setupService(store)

	// Холодный кеш: запись найдена напрямую в хранилище, после отмены
	// она должна попасть в коллекцию, а не потеряться до перезагрузки
	result, err := svc.Cancel(context.Background(), "r1", &models.CancelRequest{CallerID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), result.Status)

	cached, ok := reg.Get("r1")
	require.True(t, ok)
	assert.Equal(t, domain.StatusCancelled, cached.Status)
	assert.Equal(t, 1, reg.Len())
}

func TestCancelRefusals(t *testing.T) {
	store := storeFixture()
	store.reservations = append(store.reservations,
		&domain.Reservation{ID: "r4", UserID: "u1", Date: "2026-10-20", Slot: 5, Status: domain.StatusCancelled},
	)
	svc, _ := setupService(store)

	// Чужое бронирование
	_, err := svc.Cancel(context.Background(), "r1", &models.CancelRequest{CallerID: "u2"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Терминальный статус
	_, err = svc.Cancel(context.Background(), "r4", &models.CancelRequest{CallerID: "u1"})
	require.ErrorIs(t, err, ErrCannotCancel)
	assert.Contains(t, err.Error(), domain.ReasonTerminalStatus)

	// Прошедшее бронирование (r3 завершено, но причина проверяется по дате
	// для ещё живого статуса)
	store.reservations = append(store.reservations,
		&domain.Reservation{ID: "r5", UserID: "u1", Date: "2026-10-01", Slot: 5, Status: domain.StatusConfirmed},
	)
	_, err = svc.Cancel(context.Background(), "r5", &models.CancelRequest{CallerID: "u1"})
	require.ErrorIs(t, err, ErrCannotCancel)
	assert.Contains(t, err.Error(), domain.ReasonPastReservation)
}

func TestCancelStoreFailureLeavesCacheUntouched(t *testing.T) {
	store := storeFixture()
	svc, reg := setupService(store)
	require.NoError(t, svc.Refresh(context.Background(), false))

	store.cancelErr = storeClient.ErrUnavailable

	_, err := svc.Cancel(context.Background(), "r1", &models.CancelRequest{CallerID: "u1"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	cached, ok := reg.Get("r1")
	require.True(t, ok)
	assert.Equal(t, domain.StatusConfirmed, cached.Status)
}

func TestUpdateStatusChecksTransitionBeforeIO(t *testing.T) {
	store := storeFixture()
	svc, _ := setupService(store)
	require.NoError(t, svc.Refresh(context.Background(), false))

	// r3 завершён: любой переход запрещён, хранилище не вызывается
	err := svc.UpdateStatus(context.Background(), "r3", &models.UpdateStatusRequest{CallerID: "admin-1", Status: "seated"})

	var transitionErr *domain.TransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, domain.StatusCompleted, transitionErr.From)
	assert.Equal(t, domain.StatusSeated, transitionErr.To)
	assert.Equal(t, 0, store.setStatusCalls)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	store := storeFixture()
	svc, _ := setupService(store)

	err := svc.UpdateStatus(context.Background(), "r1", &models.UpdateStatusRequest{CallerID: "admin-1", Status: "eaten"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, store.setStatusCalls)
}

func TestUpdateStatusForcesFullReload(t *testing.T) {
	store := storeFixture()
	svc, _ := setupService(store)
	require.NoError(t, svc.Refresh(context.Background(), false))
	require.Equal(t, 1, store.listCalls)

	err := svc.UpdateStatus(context.Background(), "r1", &models.UpdateStatusRequest{CallerID: "admin-1", Status: "seated"})
	require.NoError(t, err)

	assert.Equal(t, 1, store.setStatusCalls)
	assert.Equal(t, 2, store.listCalls) // Полная перезагрузка после смены статуса
}

func TestAssignTablesValidatesCapacityWindow(t *testing.T) {
	store := storeFixture()
	svc, _ := setupService(store)

	// Шестёрка для пары (r1, guests=2): 6 > 2+1
	err := svc.AssignTables(context.Background(), "r1", &models.AssignTablesRequest{CallerID: "admin-1", Tables: []int{19}})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, store.assignCalls)

	// Пустой набор
	err = svc.AssignTables(context.Background(), "r1", &models.AssignTablesRequest{CallerID: "admin-1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAssignTablesDetectsConflictLocally(t *testing.T) {
	store := &mockStoreClient{reservations: []*domain.Reservation{
		{ID: "r1", UserID: "u1", Date: "2026-10-20", Slot: 5, Guests: 4, Tables: []int{12}, Status: domain.StatusConfirmed},
		{ID: "r2", UserID: "u2", Date: "2026-10-20", Slot: 5, Guests: 4, Tables: []int{11}, Status: domain.StatusConfirmed},
	}}
	svc, _ := setupService(store)
	require.NoError(t, svc.Refresh(context.Background(), false))

	// Столик 11 удерживается r2 на ту же дату и слот
	err := svc.AssignTables(context.Background(), "r1", &models.AssignTablesRequest{CallerID: "admin-1", Tables: []int{11}})

	var conflictErr *domain.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	require.Len(t, conflictErr.Conflicts, 1)
	assert.Equal(t, "r2", conflictErr.Conflicts[0].ID)
	assert.NotContains(t, conflictErr.AvailableTables, 11)
	assert.Equal(t, 0, store.assignCalls)
}

func TestAssignTablesLoadsCollectionForConflictCheck(t *testing.T) {
	store := &mockStoreClient{reservations: []*domain.Reservation{
		{ID: "r1", UserID: "u1", Date: "2026-10-20", Slot: 5, Guests: 4, Tables: []int{12}, Status: domain.StatusConfirmed},
		{ID: "r2", UserID: "u2", Date: "2026-10-20", Slot: 5, Guests: 4, Tables: []int{11}, Status: domain.StatusConfirmed},
	}}
	svc, reg := setupService(store)

	// Коллекция ещё не загружалась: проверка конфликтов обязана сначала
	// подтянуть её из хранилища, а не пройти по пустому срезу
	err := svc.AssignTables(context.Background(), "r1", &models.AssignTablesRequest{CallerID: "admin-1", Tables: []int{11}})

	var conflictErr *domain.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	require.Len(t, conflictErr.Conflicts, 1)
	assert.Equal(t, "r2", conflictErr.Conflicts[0].ID)

	assert.Equal(t, 0, store.assignCalls)
	assert.Equal(t, 1, store.listCalls)
	assert.True(t, reg.Loaded())
}

func TestAssignTablesForcesFullReload(t *testing.T) {
	store := storeFixture()
	svc, _ := setupService(store)
	require.NoError(t, svc.Refresh(context.Background(), false))
	require.Equal(t, 1, store.listCalls)

	err := svc.AssignTables(context.Background(), "r1", &models.AssignTablesRequest{CallerID: "admin-1", Tables: []int{3}})
	require.NoError(t, err)

	assert.Equal(t, 1, store.assignCalls)
	assert.Equal(t, 2, store.listCalls) // Хранилище могло продвинуть статус
}

func TestStatsOverCollection(t *testing.T) {
	svc, _ := setupService(storeFixture())

	result, err := svc.Stats(context.Background(), &models.StatsRequest{})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Summary.Total)
	assert.Equal(t, 2, result.Summary.ByStatus[domain.StatusConfirmed])
	assert.Equal(t, 1, result.Summary.ByStatus[domain.StatusCompleted])
	assert.NotEmpty(t, result.PeakHours)
}

func TestStatsRejectsInvertedWindow(t *testing.T) {
	svc, _ := setupService(storeFixture())

	from := "2026-10-20"
	to := "2026-10-10"
	_, err := svc.Stats(context.Background(), &models.StatsRequest{StartDate: &from, EndDate: &to})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRefreshFailurePropagatesAndKeepsCacheEmpty(t *testing.T) {
	store := &mockStoreClient{listErr: storeClient.ErrUnavailable}
	svc, reg := setupService(store)

	err := svc.Refresh(context.Background(), false)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.False(t, reg.Loaded())
}
