package focus

import "personal-task-management/internal/model"

// --- UseCase Inputs ---

// StartInput begins a new focus session.
type StartInput struct {
	TaskID      string
	SessionType string
	Notes       string
}

type ListInput struct {
	TaskID string
	Limit  int
	Offset int
}

// --- UseCase Outputs ---

type StartOutput struct {
	Session model.FocusSession
}

type EndOutput struct {
	Session model.FocusSession
}

type InterruptOutput struct {
	Session model.FocusSession
}

type ListOutput struct {
	Sessions []model.FocusSession
	Total    int
	Limit    int
	Offset   int
}
