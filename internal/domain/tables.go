package domain

import "sort"

// Table описывает столик зала: id и количество посадочных мест
type Table struct {
	ID       int
	Capacity int
}

// FloorPlan статический инвентарь столиков ресторана.
// Эталонный зал насчитывает 22 столика, но алгоритмы не должны
// опираться на это число - план задаётся конфигурацией.
type FloorPlan struct {
	tables []Table
	byID   map[int]Table
}

// NewFloorPlan создает план зала из списка столиков
func NewFloorPlan(tables []Table) *FloorPlan {
	byID := make(map[int]Table, len(tables))
	for _, t := range tables {
		byID[t.ID] = t
	}
	return &FloorPlan{tables: tables, byID: byID}
}

// DefaultFloorPlan возвращает план эталонного зала:
// 10 столиков на 2, 8 столиков на 4, 4 столика на 6 мест.
func DefaultFloorPlan() *FloorPlan {
	tables := make([]Table, 0, 22)
	id := 1
	for i := 0; i < 10; i++ {
		tables = append(tables, Table{ID: id, Capacity: 2})
		id++
	}
	for i := 0; i < 8; i++ {
		tables = append(tables, Table{ID: id, Capacity: 4})
		id++
	}
	for i := 0; i < 4; i++ {
		tables = append(tables, Table{ID: id, Capacity: 6})
		id++
	}
	return NewFloorPlan(tables)
}

// Tables возвращает копию списка столиков, отсортированную по id
func (p *FloorPlan) Tables() []Table {
	result := make([]Table, len(p.tables))
	copy(result, p.tables)
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// TotalTables возвращает количество столиков в зале
func (p *FloorPlan) TotalTables() int {
	return len(p.tables)
}

// Exists проверяет, что столик присутствует в плане зала
func (p *FloorPlan) Exists(tableID int) bool {
	_, ok := p.byID[tableID]
	return ok
}

// CapacityOf возвращает вместимость столика.
// Неизвестный столик даёт 0 мест.
func (p *FloorPlan) CapacityOf(tableID int) int {
	t, ok := p.byID[tableID]
	if !ok {
		return 0
	}
	return t.Capacity
}

// TotalCapacity возвращает суммарную вместимость набора столиков.
// Неизвестные id вносят 0.
func (p *FloorPlan) TotalCapacity(tableIDs []int) int {
	total := 0
	for _, id := range tableIDs {
		total += p.CapacityOf(id)
	}
	return total
}
