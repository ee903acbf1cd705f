package get_slots

// SlotResponse временной слот
type SlotResponse struct {
	ID      int    `json:"id"`
	Label   string `json:"label"`
	Session string `json:"session"`
}

// SlotsResponse HTTP response с каталогом слотов
type SlotsResponse struct {
	Slots []SlotResponse `json:"slots"`
	Total int            `json:"total"`
}
