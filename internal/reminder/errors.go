package reminder

import "errors"

var (
	ErrReminderNotFound = errors.New("reminder not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrInvalidType      = errors.New("invalid reminder type")
	ErrInvalidRemindAt  = errors.New("remind_at is required")
)
