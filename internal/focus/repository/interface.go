package repository

import (
	"context"

	"personal-task-management/internal/model"
)

// Repository is the data store contract for the focus domain.
type Repository interface {
	FocusSessionRepository
}

// FocusSessionRepository defines all data access methods for the
// FocusSession entity. Every method is scoped to one user.
type FocusSessionRepository interface {
	CreateSession(ctx context.Context, opt CreateSessionOptions) (model.FocusSession, error)

	// GetOneSession returns the zero-value FocusSession when not found.
	GetOneSession(ctx context.Context, opt GetOneSessionOptions) (model.FocusSession, error)

	ListSessions(ctx context.Context, opt ListSessionsOptions) ([]model.FocusSession, int, error)
	UpdateSession(ctx context.Context, opt UpdateSessionOptions) (model.FocusSession, error)
}
