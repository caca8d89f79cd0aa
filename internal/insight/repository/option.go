package repository

import "time"

// UpsertDailyStatOptions holds counter deltas for one (user, date) row.
// Zero-valued deltas leave the corresponding counter untouched.
type UpsertDailyStatOptions struct {
	UserID            string
	Date              time.Time
	TasksCreated      int
	TasksCompleted    int
	VoiceTasksCreated int
	FocusMinutes      int
}

// ListDailyStatsOptions holds the date-range filter for listing stats.
type ListDailyStatsOptions struct {
	UserID string
	From   time.Time
	To     time.Time
}
