package repository

import (
	"context"
	"time"

	"personal-task-management/internal/model"
)

// Repository is the data store contract for the reminder domain.
type Repository interface {
	ReminderRepository
}

// ReminderRepository defines all data access methods for the Reminder
// entity. Every method is scoped to one user.
type ReminderRepository interface {
	CreateReminder(ctx context.Context, opt CreateReminderOptions) (model.Reminder, error)

	// GetOneReminder returns the zero-value Reminder when not found.
	GetOneReminder(ctx context.Context, opt GetOneReminderOptions) (model.Reminder, error)

	ListReminders(ctx context.Context, opt ListRemindersOptions) ([]model.Reminder, int, error)
	DeleteReminder(ctx context.Context, userID, id string) error

	// MarkSentBefore flips every unsent reminder with remind_at <= cutoff
	// to sent and returns the flipped rows, oldest first.
	MarkSentBefore(ctx context.Context, userID string, cutoff time.Time) ([]model.Reminder, error)
}
