package http

import (
	"personal-task-management/internal/task"
	pkgErrors "personal-task-management/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	case task.ErrEmptyUtterance:
		return pkgErrors.NewHTTPError(400, "utterance is required")
	case task.ErrEmptyTitle:
		return pkgErrors.NewHTTPError(400, "title is required")
	case task.ErrInvalidPriority:
		return pkgErrors.NewHTTPError(400, "priority must be low, medium or high")
	case task.ErrInvalidStatus:
		return pkgErrors.NewHTTPError(400, "status must be pending, in_progress or completed")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
