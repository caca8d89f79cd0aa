package repository

import (
	"context"

	"personal-task-management/internal/model"
)

// Repository is the data store contract for the insight domain.
type Repository interface {
	DailyStatRepository
}

// DailyStatRepository defines access to the per-user daily counter rows.
type DailyStatRepository interface {
	// UpsertDailyStat accumulates the given deltas into the (user, date)
	// row, creating it if absent. Counters are added, never overwritten.
	UpsertDailyStat(ctx context.Context, opt UpsertDailyStatOptions) error

	// ListDailyStats returns the rows for a user in [From, To], oldest first.
	ListDailyStats(ctx context.Context, opt ListDailyStatsOptions) ([]model.DailyStat, error)
}
