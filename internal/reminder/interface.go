package reminder

import (
	"context"

	"personal-task-management/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Create schedules a reminder for one of the user's tasks.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// CollectDue returns the user's due unsent reminders and marks them
	// sent. Driven by an external tick, not an internal timer.
	CollectDue(ctx context.Context, sc model.Scope) (DueOutput, error)
}
