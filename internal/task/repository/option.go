package repository

import "time"

// CreateTaskOptions holds parameters for inserting a new task.
type CreateTaskOptions struct {
	UserID            string
	Title             string
	Description       string
	Status            string
	Priority          string
	Tags              []string
	Category          string
	Location          string
	Notes             string
	DueDate           *time.Time
	DueTime           string
	EstimatedDuration int
	VoiceCreated      bool
	VoiceConfidence   float64
	AISuggested       bool
}

// GetOneTaskOptions holds filter parameters for fetching a single task.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter and pagination parameters for listing
// tasks. Non-empty filters are applied as AND conditions; results are
// newest first.
type ListTasksOptions struct {
	UserID   string
	Status   string
	Priority string
	Tag      string
	Limit    int
	Offset   int
}

// UpdateTaskOptions holds the full post-merge field set for an update.
// The use case layer merges partial input with the current row before
// calling, so every column is written.
type UpdateTaskOptions struct {
	ID                string
	UserID            string
	Title             string
	Description       string
	Status            string
	Priority          string
	Tags              []string
	Category          string
	Location          string
	Notes             string
	DueDate           *time.Time
	DueTime           string
	EstimatedDuration int
	ActualDuration    int
	CompletedAt       *time.Time
}
