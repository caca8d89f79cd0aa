package model

import "time"

// DailyStat is one per-user, per-day counter row. Counters are accumulated
// by upserts from the task and focus flows and only ever read in aggregate.
type DailyStat struct {
	UserID            string
	Date              time.Time // calendar day
	TasksCreated      int
	TasksCompleted    int
	VoiceTasksCreated int
	FocusMinutes      int
}
