package http

import (
	"personal-task-management/internal/insight"
	"personal-task-management/pkg/log"
)

type handler struct {
	l  log.Logger
	uc insight.UseCase
}

// New creates a new HTTP handler for the insight domain.
func New(l log.Logger, uc insight.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
