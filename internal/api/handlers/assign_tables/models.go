package assign_tables

// AssignTablesRequest HTTP request model
type AssignTablesRequest struct {
	TableNumber []int `json:"tableNumber"`
}

// AssignTablesResponse HTTP response model
type AssignTablesResponse struct {
	ID          string `json:"id"`
	TableNumber []int  `json:"tableNumber"`
}
