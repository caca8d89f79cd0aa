package task

import (
	"time"

	"personal-task-management/internal/model"
	"personal-task-management/pkg/nlparse"
)

// --- UseCase Inputs ---

// CreateInput is a fully-specified task from the quick-add form.
type CreateInput struct {
	Title             string
	Description       string
	DueDate           *time.Time
	DueTime           string
	Priority          string
	Tags              []string
	Category          string
	Location          string
	EstimatedDuration int
	Notes             string
}

// VoiceCreateInput carries one dictated utterance to parse and persist.
type VoiceCreateInput struct {
	Utterance string
}

// ParseInput carries an utterance for preview parsing only.
type ParseInput struct {
	Utterance string
}

type ListInput struct {
	Status   string
	Priority string
	Tag      string
	Limit    int
	Offset   int
}

// UpdateInput is a partial update; empty fields keep their current value.
// DueDate and ClearDueDate are separate so "unset the date" is expressible.
type UpdateInput struct {
	ID                string
	Title             string
	Description       string
	DueDate           *time.Time
	ClearDueDate      bool
	DueTime           string
	Priority          string
	Tags              []string
	Category          string
	Location          string
	EstimatedDuration int
	Notes             string
}

type UpdateStatusInput struct {
	ID     string
	Status string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task model.Task
}

type ParseOutput struct {
	Draft nlparse.Draft
}

type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Task model.Task
}

type UpdateOutput struct {
	Task model.Task
}

type ToggleOutput struct {
	Task model.Task
}
