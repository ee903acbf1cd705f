package registry

import (
	"sync"

	"github.com/restoh/ReservationService/internal/domain"
)

// Registry владеет авторитетной in-memory коллекцией бронирований
// активного контекста. Все мутации коллекции проходят только через
// сервисный слой после успешного ответа хранилища; чистые движки
// (фильтрация, статистика) работают по защитным копиям снапшота.
//
// Коллекция защищена RWMutex, потому что HTTP-хендлеры выполняются
// конкурентно. Записи никогда не удаляются физически - отмена это
// переход статуса, история сохраняется для статистики.
type Registry struct {
	mu           sync.RWMutex
	reservations []*domain.Reservation
	loaded       bool
}

// New создает пустой реестр
func New() *Registry {
	return &Registry{
		reservations: make([]*domain.Reservation, 0),
	}
}

// Loaded возвращает true, если коллекция уже загружалась из хранилища
func (r *Registry) Loaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded
}

// Len возвращает размер коллекции
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.reservations)
}

// Snapshot возвращает копию коллекции. Сами записи копируются по
// значению, чтобы вызывающие не могли мутировать состояние реестра.
func (r *Registry) Snapshot() []*domain.Reservation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Reservation, 0, len(r.reservations))
	for _, res := range r.reservations {
		c := *res
		c.Tables = append([]int(nil), res.Tables...)
		result = append(result, &c)
	}
	return result
}

// Get возвращает копию записи по id
func (r *Registry) Get(id string) (*domain.Reservation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, res := range r.reservations {
		if res.ID == id {
			c := *res
			c.Tables = append([]int(nil), res.Tables...)
			return &c, true
		}
	}
	return nil, false
}

// ReplaceAll заменяет коллекцию целиком (полная перезагрузка из хранилища)
func (r *Registry) ReplaceAll(reservations []*domain.Reservation) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reservations = make([]*domain.Reservation, 0, len(reservations))
	for _, res := range reservations {
		c := *res
		c.Tables = append([]int(nil), res.Tables...)
		r.reservations = append(r.reservations, &c)
	}
	r.loaded = true
}

// Add добавляет созданную запись в конец коллекции
func (r *Registry) Add(res *domain.Reservation) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := *res
	c.Tables = append([]int(nil), res.Tables...)
	r.reservations = append(r.reservations, &c)
}

// Update заменяет запись с совпадающим id на месте.
// Возвращает false, если запись не найдена.
func (r *Registry) Update(res *domain.Reservation) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.reservations {
		if existing.ID == res.ID {
			c := *res
			c.Tables = append([]int(nil), res.Tables...)
			r.reservations[i] = &c
			return true
		}
	}
	return false
}
