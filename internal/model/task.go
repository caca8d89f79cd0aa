package model

import "time"

// Task priority levels.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task lifecycle statuses.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Task is a persisted task owned by one user.
type Task struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Status      string
	Priority    string
	Tags        []string
	Category    string
	Location    string
	Notes       string

	DueDate *time.Time // calendar date, no time component
	DueTime string     // "HH:MM" 24-hour, empty when unset

	EstimatedDuration int // minutes, 0 when unset
	ActualDuration    int // minutes, 0 when unset

	// Provenance of voice-dictated tasks.
	VoiceCreated    bool
	VoiceConfidence float64
	AISuggested     bool

	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidPriority reports whether p is a known priority level.
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// ValidStatus reports whether s is a known task status.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusInProgress || s == StatusCompleted
}
