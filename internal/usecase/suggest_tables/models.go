package suggest_tables

import (
	"github.com/restoh/ReservationService/pkg/types"
)

// Request запрос свободных столиков на дату и слот
type Request struct {
	Date   types.DateString
	Slot   int
	Guests int
}

// TableInfo столик с вместимостью
type TableInfo struct {
	ID       int
	Capacity int
}

// Response свободные столики и рекомендованная комбинация.
// Suggested пустой, если суммарной вместимости свободных столиков
// не хватает под размер группы.
type Response struct {
	Date              string
	Slot              int
	SlotLabel         string
	FreeTables        []TableInfo
	Suggested         []int
	SuggestedCapacity int
}
