package http

import (
	"personal-task-management/internal/focus"
	"personal-task-management/pkg/log"
)

type handler struct {
	l  log.Logger
	uc focus.UseCase
}

// New creates a new HTTP handler for the focus domain.
func New(l log.Logger, uc focus.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
