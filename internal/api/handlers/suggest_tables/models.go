package suggest_tables

import (
	suggestTables "github.com/restoh/ReservationService/internal/usecase/suggest_tables"
)

// TableResponse свободный столик
type TableResponse struct {
	ID       int `json:"id"`
	Capacity int `json:"capacity"`
}

// SuggestTablesResponse HTTP response: свободные столики на дату и слот
// плюс рекомендованная комбинация под размер группы. Suggested пустой,
// если свободной вместимости не хватает.
type SuggestTablesResponse struct {
	Date              string          `json:"date"`
	Slot              int             `json:"slot"`
	SlotLabel         string          `json:"slotLabel"`
	FreeTables        []TableResponse `json:"freeTables"`
	Suggested         []int           `json:"suggested"`
	SuggestedCapacity int             `json:"suggestedCapacity"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *suggestTables.Response) *SuggestTablesResponse {
	free := make([]TableResponse, 0, len(resp.FreeTables))
	for _, t := range resp.FreeTables {
		free = append(free, TableResponse{ID: t.ID, Capacity: t.Capacity})
	}

	return &SuggestTablesResponse{
		Date:              resp.Date,
		Slot:              resp.Slot,
		SlotLabel:         resp.SlotLabel,
		FreeTables:        free,
		Suggested:         resp.Suggested,
		SuggestedCapacity: resp.SuggestedCapacity,
	}
}
