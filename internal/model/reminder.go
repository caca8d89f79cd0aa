package model

import "time"

// Reminder delivery channels.
const (
	ReminderTypeNotification = "notification"
	ReminderTypeEmail        = "email"
	ReminderTypeSMS          = "sms"
)

// Reminder is a scheduled notification attached to a task.
type Reminder struct {
	ID        string
	UserID    string
	TaskID    string
	RemindAt  time.Time
	Type      string
	Message   string
	Sent      bool
	CreatedAt time.Time
}

// ValidReminderType reports whether t is a known delivery channel.
func ValidReminderType(t string) bool {
	return t == ReminderTypeNotification || t == ReminderTypeEmail || t == ReminderTypeSMS
}
