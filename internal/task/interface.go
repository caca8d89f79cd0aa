package task

import (
	"context"

	"personal-task-management/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Parse previews the structured draft for an utterance without
	// persisting anything.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)

	// Create persists a manually entered task.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// CreateFromVoice parses a dictated utterance and persists the result.
	CreateFromVoice(ctx context.Context, sc model.Scope, input VoiceCreateInput) (CreateOutput, error)

	// Task CRUD
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// ToggleCompletion flips a task between completed and pending.
	ToggleCompletion(ctx context.Context, sc model.Scope, id string) (ToggleOutput, error)

	// UpdateStatus moves a task to the given lifecycle status.
	UpdateStatus(ctx context.Context, sc model.Scope, input UpdateStatusInput) (UpdateOutput, error)
}
