package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/restoh/ReservationService/internal/allocation"
	"github.com/restoh/ReservationService/internal/domain"
	storeClient "github.com/restoh/ReservationService/internal/integrations/reservationstore"
)

// UseCase use case для создания бронирования.
// Все проверки (валидация, инвариант вместимости, конфликты столиков)
// выполняются локально до сетевого вызова; при ошибке хранилища
// коллекция остаётся нетронутой.
type UseCase struct {
	store        StoreClient
	registry     ReservationRegistry
	catalog      *domain.SlotCatalog
	plan         *domain.FloorPlan
	policy       domain.BookingPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store StoreClient,
	registry ReservationRegistry,
	catalog *domain.SlotCatalog,
	plan *domain.FloorPlan,
	policy domain.BookingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		registry:     registry,
		catalog:      catalog,
		plan:         plan,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%s, date=%s, slot=%d, guests=%d, tables=%v",
		req.UserID, req.Date, req.Slot, req.Guests, req.Tables)

	now := uc.timeProvider.Now()

	// 1. Валидация бизнес-правил (все нарушения собираются разом)
	if err := validateRequest(req, uc.policy, uc.catalog, uc.plan, now); err != nil {
		uc.logger.Warn("CreateReservation: validation failed for user=%s: %v", req.UserID, err)
		return nil, err
	}

	// 2. Загружаем коллекцию, если она ещё пуста
	if err := uc.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	// 3. Проактивная проверка двойного бронирования.
	// Хранилище остаётся авторитетным, но локальная проверка даёт
	// немедленную обратную связь с альтернативными столиками.
	candidate := &domain.Reservation{
		UserID: req.UserID,
		Date:   req.Date,
		Slot:   req.Slot,
		Guests: req.Guests,
		Tables: req.Tables,
		Status: domain.StatusConfirmed,
	}

	existing := uc.registry.Snapshot()
	if conflicts := allocation.Conflicts(candidate, existing); len(conflicts) > 0 {
		uc.logger.Warn("CreateReservation: conflict for user=%s on date=%s slot=%d with %d reservation(s)",
			req.UserID, req.Date, req.Slot, len(conflicts))
		free := allocation.FreeTables(uc.plan, req.Date, req.Slot, existing, "")
		return nil, &domain.ConflictError{
			Conflicts:       conflicts,
			AvailableTables: freeIDs(free),
			Suggested:       allocation.SuggestTables(req.Guests, free),
		}
	}

	// 4. Создаём бронирование в хранилище
	candidate.Name = req.Name
	candidate.Email = req.Email
	candidate.Phone = req.Phone
	candidate.SpecialRequests = req.SpecialRequests

	created, err := uc.store.Create(ctx, candidate)
	if err != nil {
		uc.logger.Error("CreateReservation: store error for user=%s: %v", req.UserID, err)
		return nil, uc.mapStoreError(err)
	}

	// 5. Успех: добавляем запись в коллекцию
	uc.registry.Add(created)

	uc.logger.Info("CreateReservation: successfully created reservation id=%s for user=%s", created.ID, req.UserID)
	return fromDomain(created, uc.catalog), nil
}

// ensureLoaded загружает коллекцию из хранилища один раз
func (uc *UseCase) ensureLoaded(ctx context.Context) error {
	if uc.registry.Loaded() {
		return nil
	}

	reservations, err := uc.store.List(ctx)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to load reservations: %v", err)
		return uc.mapStoreError(err)
	}

	uc.registry.ReplaceAll(reservations)
	return nil
}

// mapStoreError конвертирует ошибки клиента хранилища в ошибки use case
func (uc *UseCase) mapStoreError(err error) error {
	switch {
	case errors.Is(err, storeClient.ErrConflict):
		// Серверная перепроверка обнаружила конфликт раньше нас
		details, _ := storeClient.ConflictDetailsOf(err)
		return &domain.ConflictError{AvailableTables: details.AvailableTables}

	case errors.Is(err, storeClient.ErrUnavailable):
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)

	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

func freeIDs(tables []domain.Table) []int {
	ids := make([]int, 0, len(tables))
	for _, t := range tables {
		ids = append(ids, t.ID)
	}
	return ids
}
