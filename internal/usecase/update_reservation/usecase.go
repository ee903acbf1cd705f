package update_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/restoh/ReservationService/internal/allocation"
	"github.com/restoh/ReservationService/internal/domain"
	storeClient "github.com/restoh/ReservationService/internal/integrations/reservationstore"
	"github.com/restoh/ReservationService/internal/validation"
)

// Сообщения о нарушении инварианта вместимости
const (
	msgUnknownTable      = "Unknown table selected"
	msgTooLittleCapacity = "Selected tables cannot seat all guests"
	msgTooMuchCapacity   = "Selected tables exceed party size plus one spare seat"
)

// UseCase use case для изменения бронирования пользователем.
// Отличается от административной смены статуса: здесь применяются
// правила разрешений CanModify (терминальный статус и прошедшее
// бронирование редактировать нельзя).
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

// Execute выполняет use case изменения бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%s, caller=%s, date=%s, slot=%d, guests=%d",
		req.ID, req.CallerID, req.Date, req.Slot, req.Guests)

	now := uc.timeProvider.Now()

	// 1. Находим существующее бронирование
	existing, err := uc.findReservation(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	// 2. Проверяем права: владелец или администратор
	if existing.UserID != req.CallerID && !req.IsAdmin {
		uc.logger.Warn("UpdateReservation: access denied for caller=%s to reservation id=%s", req.CallerID, req.ID)
		return nil, ErrAccessDenied
	}

	// 3. Проверяем разрешение на редактирование до любой валидации полей
	if ok, reason := domain.CanModify(existing, uc.catalog, now); !ok {
		uc.logger.Warn("UpdateReservation: reservation id=%s cannot be modified: %s", req.ID, reason)
		return nil, fmt.Errorf("%w: %s", ErrCannotModify, reason)
	}

	// 4. Перевалидируем запрос целиком (все нарушения собираются разом)
	if err := uc.validate(req, now); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed for id=%s: %v", req.ID, err)
		return nil, err
	}

	// 5. Проверяем конфликты столиков, исключая собственную запись
	updated := *existing
	updated.Name = req.Name
	updated.Email = req.Email
	updated.Phone = req.Phone
	updated.Date = req.Date
	updated.Slot = req.Slot
	updated.Guests = req.Guests
	updated.SpecialRequests = req.SpecialRequests
	if req.TablesProvided {
		updated.Tables = req.Tables
	}

	snapshot := uc.registry.Snapshot()
	if conflicts := allocation.Conflicts(&updated, snapshot); len(conflicts) > 0 {
		uc.logger.Warn("UpdateReservation: conflict for id=%s on date=%s slot=%d with %d reservation(s)",
			req.ID, req.Date, req.Slot, len(conflicts))
		free := allocation.FreeTables(uc.plan, req.Date, req.Slot, snapshot, req.ID)
		return nil, &domain.ConflictError{
			Conflicts:       conflicts,
			AvailableTables: freeIDs(free),
			Suggested:       allocation.SuggestTables(req.Guests, free),
		}
	}

	// 6. Обновляем в хранилище
	result, err := uc.store.Update(ctx, &updated)
	if err != nil {
		uc.logger.Error("UpdateReservation: store error for id=%s: %v", req.ID, err)
		return nil, uc.mapStoreError(err)
	}

	// 7. Успех: точечно заменяем запись в коллекции
	uc.registry.Update(result)

	uc.logger.Info("UpdateReservation: successfully updated reservation id=%s", req.ID)
	return fromDomain(result, uc.catalog), nil
}

// validate собирает все нарушения бизнес-правил запроса, включая
// инвариант вместимости назначенных столиков
func (uc *UseCase) validate(req *Request, now time.Time) error {
	result := validation.Validate(&validation.Request{
		Date:            req.Date,
		Slot:            req.Slot,
		Guests:          req.Guests,
		Phone:           req.Phone,
		Tables:          req.Tables,
		TablesProvided:  req.TablesProvided,
		SpecialRequests: req.SpecialRequests,
	}, uc.policy, uc.catalog, now)

	messages := result.Errors

	if req.TablesProvided && len(req.Tables) > 0 {
		if err := allocation.ValidateAssignment(uc.plan, req.Tables, req.Guests, uc.policy.CapacitySlack); err != nil {
			messages = append(messages, assignmentMessage(err))
		}
	}

	if len(messages) > 0 {
		return &domain.ValidationError{Messages: messages}
	}
	return nil
}

// findReservation ищет бронирование в коллекции, затем в хранилище
func (uc *UseCase) findReservation(ctx context.Context, id string) (*domain.Reservation, error) {
	if err := uc.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	if reservation, ok := uc.registry.Get(id); ok {
		return reservation, nil
	}

	reservation, err := uc.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storeClient.ErrReservationNotFound) {
			uc.logger.Warn("UpdateReservation: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("UpdateReservation: store error for id=%s: %v", id, err)
		return nil, uc.mapStoreError(err)
	}

	return reservation, nil
}

// ensureLoaded загружает коллекцию из хранилища один раз
func (uc *UseCase) ensureLoaded(ctx context.Context) error {
	if uc.registry.Loaded() {
		return nil
	}

	reservations, err := uc.store.List(ctx)
	if err != nil {
		uc.logger.Error("UpdateReservation: failed to load reservations: %v", err)
		return uc.mapStoreError(err)
	}

	uc.registry.ReplaceAll(reservations)
	return nil
}

// mapStoreError конвертирует ошибки клиента хранилища в ошибки use case
func (uc *UseCase) mapStoreError(err error) error {
	switch {
	case errors.Is(err, storeClient.ErrReservationNotFound):
		return ErrReservationNotFound

	case errors.Is(err, storeClient.ErrConflict):
		details, _ := storeClient.ConflictDetailsOf(err)
		return &domain.ConflictError{AvailableTables: details.AvailableTables}

	case errors.Is(err, storeClient.ErrUnavailable):
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)

	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

func assignmentMessage(err error) string {
	switch {
	case errors.Is(err, allocation.ErrUnknownTable):
		return msgUnknownTable
	case errors.Is(err, allocation.ErrInsufficientCapacity):
		return msgTooLittleCapacity
	case errors.Is(err, allocation.ErrExcessiveCapacity):
		return msgTooMuchCapacity
	default:
		return err.Error()
	}
}

func freeIDs(tables []domain.Table) []int {
	ids := make([]int, 0, len(tables))
	for _, t := range tables {
		ids = append(ids, t.ID)
	}
	return ids
}
