package insight

import (
	"context"

	"personal-task-management/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Metrics aggregates the user's trailing daily stats into rates.
	Metrics(ctx context.Context, sc model.Scope, input MetricsInput) (MetricsOutput, error)

	// Suggestions derives personalized suggestions from recent tasks.
	Suggestions(ctx context.Context, sc model.Scope) (SuggestionsOutput, error)

	// Tips returns the day's rotation of the static tip catalog.
	Tips(ctx context.Context) TipsOutput
}
