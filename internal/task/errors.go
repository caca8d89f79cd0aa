package task

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrEmptyUtterance  = errors.New("utterance is empty")
	ErrEmptyTitle      = errors.New("title is required")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidStatus   = errors.New("invalid status")
)
