package repository

import "time"

// CreateSessionOptions holds parameters for inserting a new session.
type CreateSessionOptions struct {
	UserID      string
	TaskID      string
	StartTime   time.Time
	SessionType string
	Notes       string
}

// GetOneSessionOptions holds filter parameters for fetching one session.
type GetOneSessionOptions struct {
	ID     string
	UserID string
}

// ListSessionsOptions holds filter and pagination parameters. Results are
// newest first.
type ListSessionsOptions struct {
	UserID string
	TaskID string
	Limit  int
	Offset int
}

// UpdateSessionOptions holds the mutable fields of a session.
type UpdateSessionOptions struct {
	ID              string
	UserID          string
	EndTime         *time.Time
	DurationMinutes int
	Interruptions   int
	Notes           string
}
