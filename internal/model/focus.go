package model

import "time"

// Focus session types.
const (
	SessionTypePomodoro = "pomodoro"
	SessionTypeDeepWork = "deep_work"
	SessionTypeBreak    = "break"
	SessionTypeCustom   = "custom"
)

// FocusSession is one timed focus interval, optionally linked to a task.
type FocusSession struct {
	ID              string
	UserID          string
	TaskID          string // optional
	StartTime       time.Time
	EndTime         *time.Time
	DurationMinutes int
	SessionType     string
	Interruptions   int
	Notes           string
	CreatedAt       time.Time
}

// ValidSessionType reports whether t is a known session type.
func ValidSessionType(t string) bool {
	switch t {
	case SessionTypePomodoro, SessionTypeDeepWork, SessionTypeBreak, SessionTypeCustom:
		return true
	}
	return false
}
