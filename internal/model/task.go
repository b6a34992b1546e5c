package model

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Recognized task types. Type is an open string; these are the values the
// rest of the system knows how to reason about.
const (
	TaskWatering    = "watering"
	TaskFertilizing = "fertilizing"
	TaskPruning     = "pruning"
	TaskHarvesting  = "harvesting"
	TaskGeneral     = "general"
)

// CalendarTask is a single dated maintenance task on the farm calendar.
type CalendarTask struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Date        string `json:"date"` // YYYY-MM-DD
	Completed   bool   `json:"completed"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}
