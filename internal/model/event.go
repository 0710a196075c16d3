package model

// Event is the singleton configuration record for the event being staffed.
// It is a read-only input to aggregation; mutations go through the event
// configuration endpoint only.
type Event struct {
	ID             uint64  `json:"id"`
	Name           string  `json:"name"`
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate"`
	LaborBudgetCap float64 `json:"laborBudgetCap"`
}
