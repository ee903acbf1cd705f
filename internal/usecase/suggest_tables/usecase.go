package suggest_tables

import (
	"context"
	"errors"
	"fmt"

	"github.com/restoh/ReservationService/internal/allocation"
	"github.com/restoh/ReservationService/internal/domain"
	storeClient "github.com/restoh/ReservationService/internal/integrations/reservationstore"
)

// UseCase use case подбора столиков: какие столики свободны на дату и
// слот, и какая комбинация лучше всего подходит под размер группы
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

// Execute выполняет use case подбора столиков
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SuggestTables: date=%s, slot=%d, guests=%d", req.Date, req.Slot, req.Guests)

	// 1. Валидация входных данных
	if err := uc.validateRequest(req); err != nil {
		uc.logger.Warn("SuggestTables: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем коллекцию, если она ещё пуста
	if err := uc.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	// 3. Свободные столики: не удерживаемые нетерминальными
	// бронированиями на эту дату и слот
	free := allocation.FreeTables(uc.plan, req.Date, req.Slot, uc.registry.Snapshot(), "")

	// 4. Рекомендация: best-fit одиночный столик либо накопление
	// от меньшего к большему
	suggested := allocation.SuggestTables(req.Guests, free)

	uc.logger.Info("SuggestTables: %d free table(s), suggesting %v for %d guest(s)",
		len(free), suggested, req.Guests)

	return &Response{
		Date:              req.Date.String(),
		Slot:              req.Slot,
		SlotLabel:         uc.catalog.LabelFor(req.Slot),
		FreeTables:        toTableInfos(free),
		Suggested:         suggested,
		SuggestedCapacity: allocation.TotalCapacity(uc.plan, suggested),
	}, nil
}

// validateRequest валидирует входные данные запроса
func (uc *UseCase) validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !uc.catalog.InRange(req.Slot) {
		return fmt.Errorf("%w: unknown slot %d", ErrInvalidInput, req.Slot)
	}
	if req.Guests < domain.MinGuests {
		return fmt.Errorf("%w: guests must be at least %d", ErrInvalidInput, domain.MinGuests)
	}
	if req.Guests > uc.policy.MaxGuests {
		return fmt.Errorf("%w: guests cannot exceed %d", ErrInvalidInput, uc.policy.MaxGuests)
	}
	return nil
}

// ensureLoaded загружает коллекцию из хранилища один раз
func (uc *UseCase) ensureLoaded(ctx context.Context) error {
	if uc.registry.Loaded() {
		return nil
	}

	reservations, err := uc.store.List(ctx)
	if err != nil {
		uc.logger.Error("SuggestTables: failed to load reservations: %v", err)
		if errors.Is(err, storeClient.ErrUnavailable) {
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.registry.ReplaceAll(reservations)
	return nil
}

func toTableInfos(tables []domain.Table) []TableInfo {
	result := make([]TableInfo, 0, len(tables))
	for _, t := range tables {
		result = append(result, TableInfo{ID: t.ID, Capacity: t.Capacity})
	}
	return result
}
