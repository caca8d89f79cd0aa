package focus

import (
	"context"

	"personal-task-management/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Start begins a focus session. SessionType defaults to pomodoro.
	Start(ctx context.Context, sc model.Scope, input StartInput) (StartOutput, error)

	// End closes a running session, computing its duration and crediting
	// the minutes to the day's focus counter.
	End(ctx context.Context, sc model.Scope, id string) (EndOutput, error)

	// Interrupt increments the interruption counter of a running session.
	Interrupt(ctx context.Context, sc model.Scope, id string) (InterruptOutput, error)

	// List returns the user's sessions, newest first.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
}
