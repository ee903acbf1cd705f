package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/restoh/ReservationService/internal/allocation"
	"github.com/restoh/ReservationService/internal/domain"
	storeClient "github.com/restoh/ReservationService/internal/integrations/reservationstore"
	"github.com/restoh/ReservationService/internal/query"
	"github.com/restoh/ReservationService/internal/service/reservations/models"
	"github.com/restoh/ReservationService/internal/stats"
	"github.com/restoh/ReservationService/pkg/types"
)

// Service реестр бронирований: владеет in-memory коллекцией активного
// контекста, опосредует операции против хранилища и отдаёт движки
// запросов и статистики как производные представления.
//
// Политика синхронизации кеша - явная и пооперационная:
//   - list/get/cancel правят коллекцию точечно (замена записи на месте);
//   - смена статуса и назначение столиков выполняют ПОЛНУЮ перезагрузку,
//     потому что хранилище может иметь побочные эффекты (например,
//     автоматическое продвижение статуса при назначении столика).
//
// При любой ошибке хранилища коллекция остаётся нетронутой.
type Service struct {
	store        StoreClient
	registry     ReservationRegistry
	catalog      *domain.SlotCatalog
	plan         *domain.FloorPlan
	policy       domain.BookingPolicy
	timeProvider TimeProvider
	logger       Logger
	metrics      MetricsCollector // nil-safe
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	store StoreClient,
	registry ReservationRegistry,
	catalog *domain.SlotCatalog,
	plan *domain.FloorPlan,
	policy domain.BookingPolicy,
	logger Logger,
) *Service {
	return &Service{
		store:        store,
		registry:     registry,
		catalog:      catalog,
		plan:         plan,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithMetrics подключает коллектор метрик размера кеша
func (s *Service) WithMetrics(m MetricsCollector) *Service {
	s.metrics = m
	return s
}

// Refresh синхронизирует коллекцию с хранилищем.
// force=true перечитывает всегда (staff-режим), иначе только если
// коллекция ещё не загружалась.
func (s *Service) Refresh(ctx context.Context, force bool) error {
	if !force && s.registry.Loaded() {
		return nil
	}

	reservations, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error("Refresh: failed to load reservations from store: %v", err)
		return s.mapStoreError(err)
	}

	s.registry.ReplaceAll(reservations)
	if s.metrics != nil {
		s.metrics.SetCachedReservations(s.registry.Len())
	}

	s.logger.Info("Refresh: loaded %d reservations (force=%t)", len(reservations), force)
	return nil
}

// List возвращает коллекцию после применения временной корзины,
// фильтров и поиска. Отсутствующий фильтр - no-op, не ошибка.
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ReservationListResponse, error) {
	if !query.IsValidTimeRange(req.TimeRange) {
		s.logger.Warn("List: invalid timeRange=%q", req.TimeRange)
		return nil, fmt.Errorf("%w: unknown timeRange %q", ErrInvalidInput, req.TimeRange)
	}

	filter, err := req.ToQueryFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.Refresh(ctx, req.Staff); err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	result := query.Apply(s.registry.Snapshot(), filter, now)
	result = query.Search(result, req.Search)

	s.logger.Info("List: returning %d reservations for caller=%s (staff=%t)", len(result), req.CallerID, req.Staff)
	return models.FromDomainReservationList(result, s.catalog), nil
}

// GetByID возвращает бронирование по id.
// Пользователь видит только своё бронирование, администратор - любое.
func (s *Service) GetByID(ctx context.Context, id string, callerID string, isAdmin bool) (*models.ReservationResponse, error) {
	reservation, err := s.findReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	if reservation.UserID != callerID && !isAdmin {
		s.logger.Warn("GetByID: access denied for caller=%s to reservation id=%s", callerID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainReservation(reservation, s.catalog), nil
}

// Cancel отменяет бронирование. Отмена - переход статуса, запись
// сохраняется в коллекции для истории и статистики.
// Разрешение проверяется локально до любого сетевого вызова.
func (s *Service) Cancel(ctx context.Context, id string, req *models.CancelRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%s by caller=%s", id, req.CallerID)

	reservation, err := s.findReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	if reservation.UserID != req.CallerID && !req.IsAdmin {
		s.logger.Warn("Cancel: access denied for caller=%s to reservation id=%s", req.CallerID, id)
		return nil, ErrAccessDenied
	}

	if ok, reason := domain.CanCancel(reservation, s.catalog, s.timeProvider.Now()); !ok {
		s.logger.Warn("Cancel: reservation id=%s cannot be cancelled: %s", id, reason)
		return nil, fmt.Errorf("%w: %s", ErrCannotCancel, reason)
	}

	cancelled, err := s.store.Cancel(ctx, id)
	if err != nil {
		s.logger.Error("Cancel: store error for reservation id=%s: %v", id, err)
		return nil, s.mapStoreError(err)
	}

	// Точечная замена записи на месте; запись, найденная напрямую в
	// хранилище мимо кеша, добавляется в коллекцию
	if !s.registry.Update(cancelled) {
		s.registry.Add(cancelled)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%s", id)
	return models.FromDomainReservation(cancelled, s.catalog), nil
}

// UpdateStatus устанавливает статус бронирования (административная
// операция). Недопустимый переход отклоняется по таблице переходов до
// любого I/O; после успеха коллекция перезагружается целиком.
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating reservation id=%s to status=%s by caller=%s", id, req.Status, req.CallerID)

	if !domain.IsValidStatus(req.Status) {
		s.logger.Warn("UpdateStatus: invalid status=%q for reservation id=%s", req.Status, id)
		return fmt.Errorf("%w: invalid status %q", ErrInvalidInput, req.Status)
	}
	newStatus := domain.ReservationStatus(req.Status)

	reservation, err := s.findReservation(ctx, id)
	if err != nil {
		return err
	}

	if err := domain.Transition(reservation.Status, newStatus); err != nil {
		s.logger.Warn("UpdateStatus: illegal transition for reservation id=%s: %v", id, err)
		return err
	}

	if _, err := s.store.SetStatus(ctx, id, newStatus); err != nil {
		s.logger.Error("UpdateStatus: store error for reservation id=%s: %v", id, err)
		return s.mapStoreError(err)
	}

	// Полная перезагрузка: сверяем серверные побочные эффекты
	if err := s.Refresh(ctx, true); err != nil {
		return err
	}

	s.logger.Info("UpdateStatus: successfully updated reservation id=%s to status=%s", id, newStatus)
	return nil
}

// AssignTables назначает столики бронированию (административная
// операция). Проверяет инвариант вместимости и конфликты локально,
// после успеха перезагружает коллекцию целиком: хранилище может
// попутно продвинуть статус бронирования.
func (s *Service) AssignTables(ctx context.Context, id string, req *models.AssignTablesRequest) error {
	s.logger.Info("AssignTables: assigning tables %v to reservation id=%s by caller=%s", req.Tables, id, req.CallerID)

	if len(req.Tables) == 0 {
		s.logger.Warn("AssignTables: empty table set for reservation id=%s", id)
		return fmt.Errorf("%w: table set cannot be empty", ErrInvalidInput)
	}

	reservation, err := s.findReservation(ctx, id)
	if err != nil {
		return err
	}

	if err := allocation.ValidateAssignment(s.plan, req.Tables, reservation.Guests, s.policy.CapacitySlack); err != nil {
		s.logger.Warn("AssignTables: assignment rejected for reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Проактивная проверка двойного бронирования требует загруженной
	// коллекции: на холодном кеше findReservation мог сходить за записью
	// напрямую в хранилище
	if err := s.Refresh(ctx, false); err != nil {
		return err
	}

	candidate := *reservation
	candidate.Tables = req.Tables
	existing := s.registry.Snapshot()
	if conflicts := allocation.Conflicts(&candidate, existing); len(conflicts) > 0 {
		s.logger.Warn("AssignTables: conflict detected for reservation id=%s with %d reservation(s)", id, len(conflicts))
		free := allocation.FreeTables(s.plan, reservation.Date, reservation.Slot, existing, reservation.ID)
		return &domain.ConflictError{
			Conflicts:       conflicts,
			AvailableTables: tableIDs(free),
			Suggested:       allocation.SuggestTables(reservation.Guests, free),
		}
	}

	if _, err := s.store.AssignTables(ctx, id, req.Tables); err != nil {
		s.logger.Error("AssignTables: store error for reservation id=%s: %v", id, err)
		return s.mapStoreError(err)
	}

	// Полная перезагрузка: назначение столика может автоматически
	// продвинуть статус на стороне хранилища
	if err := s.Refresh(ctx, true); err != nil {
		return err
	}

	s.logger.Info("AssignTables: successfully assigned tables %v to reservation id=%s", req.Tables, id)
	return nil
}

// Stats считает операционную статистику по коллекции:
// сводку (опционально по окну дат), пиковые часы, загрузку зала,
// доли отмен и средний размер группы.
func (s *Service) Stats(ctx context.Context, req *models.StatsRequest) (*models.StatsResponse, error) {
	if err := s.Refresh(ctx, false); err != nil {
		return nil, err
	}

	snapshot := s.registry.Snapshot()
	now := s.timeProvider.Now()

	var summary stats.Summary
	if req.StartDate != nil && req.EndDate != nil {
		start := types.NormalizeDateString(*req.StartDate)
		end := types.NormalizeDateString(*req.EndDate)
		if start.After(end) {
			return nil, fmt.Errorf("%w: start date is after end date", ErrInvalidInput)
		}
		summary = stats.DateRangeStats(snapshot, start, end, now)
	} else {
		summary = stats.Stats(snapshot, now)
	}

	return &models.StatsResponse{
		Summary:          summary,
		PeakHours:        stats.PeakHours(snapshot, s.catalog),
		Utilization:      stats.TableUtilization(snapshot, s.plan.TotalTables(), s.catalog.SlotsPerDay()),
		Cancellation:     stats.CancellationRate(snapshot),
		AveragePartySize: stats.AveragePartySize(snapshot, nil),
	}, nil
}

// findReservation ищет бронирование сначала в коллекции, затем в хранилище
func (s *Service) findReservation(ctx context.Context, id string) (*domain.Reservation, error) {
	if reservation, ok := s.registry.Get(id); ok {
		return reservation, nil
	}

	reservation, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storeClient.ErrReservationNotFound) {
			s.logger.Warn("findReservation: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("findReservation: store error for reservation id=%s: %v", id, err)
		return nil, s.mapStoreError(err)
	}

	return reservation, nil
}

// mapStoreError конвертирует ошибки клиента хранилища в ошибки сервиса.
// Конфликт от хранилища (авторитетная серверная перепроверка) поднимается
// как доменный ConflictError с деталями для вызывающего.
func (s *Service) mapStoreError(err error) error {
	switch {
	case errors.Is(err, storeClient.ErrReservationNotFound):
		return ErrReservationNotFound

	case errors.Is(err, storeClient.ErrConflict):
		details, _ := storeClient.ConflictDetailsOf(err)
		return &domain.ConflictError{
			Conflicts:       s.resolveConflicts(details.ConflictIDs),
			AvailableTables: details.AvailableTables,
		}

	case errors.Is(err, storeClient.ErrUnavailable):
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)

	case errors.Is(err, storeClient.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)

	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// resolveConflicts разворачивает id конфликтующих бронирований в записи
// локальной коллекции (если они там есть)
func (s *Service) resolveConflicts(ids []string) []*domain.Reservation {
	result := make([]*domain.Reservation, 0, len(ids))
	for _, id := range ids {
		if r, ok := s.registry.Get(id); ok {
			result = append(result, r)
		}
	}
	return result
}

func tableIDs(tables []domain.Table) []int {
	ids := make([]int, 0, len(tables))
	for _, t := range tables {
		ids = append(ids, t.ID)
	}
	return ids
}
