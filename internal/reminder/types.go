package reminder

import (
	"time"

	"personal-task-management/internal/model"
)

// --- UseCase Inputs ---

// CreateInput schedules a notification for a task.
type CreateInput struct {
	TaskID   string
	RemindAt time.Time
	Type     string
	Message  string
}

type ListInput struct {
	TaskID string
	Sent   *bool
	Limit  int
	Offset int
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Reminder model.Reminder
}

type ListOutput struct {
	Reminders []model.Reminder
	Total     int
	Limit     int
	Offset    int
}

// DueOutput carries the reminders that came due on this tick. They are
// already marked sent when returned.
type DueOutput struct {
	Reminders []model.Reminder
}
