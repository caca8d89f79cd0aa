package http

import (
	"personal-task-management/internal/reminder"
	"personal-task-management/pkg/log"
)

type handler struct {
	l  log.Logger
	uc reminder.UseCase
}

// New creates a new HTTP handler for the reminder domain.
func New(l log.Logger, uc reminder.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
