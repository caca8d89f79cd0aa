package repository

import "time"

// CreateReminderOptions holds parameters for inserting a new reminder.
type CreateReminderOptions struct {
	UserID   string
	TaskID   string
	RemindAt time.Time
	Type     string
	Message  string
}

// GetOneReminderOptions holds filter parameters for fetching one reminder.
type GetOneReminderOptions struct {
	ID     string
	UserID string
}

// ListRemindersOptions holds filter and pagination parameters. Sent is a
// tri-state filter: nil means both sent and unsent.
type ListRemindersOptions struct {
	UserID string
	TaskID string
	Sent   *bool
	Limit  int
	Offset int
}
