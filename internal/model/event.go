package model

// Event types delivered to live subscribers.
const (
	EventTaskCreated = "task_created"
	EventTaskUpdated = "task_updated"
	EventTaskDeleted = "task_deleted"
)

// Event is a task mutation broadcast to connected clients. Created and
// updated events carry the task; deleted events carry only the id.
type Event struct {
	Type   string        `json:"type"`
	Task   *CalendarTask `json:"task,omitempty"`
	TaskID int           `json:"task_id,omitempty"`
}
