package http

import (
	"personal-task-management/internal/focus"
	pkgErrors "personal-task-management/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case focus.ErrSessionNotFound:
		return pkgErrors.NewHTTPError(404, "focus session not found")
	case focus.ErrSessionEnded:
		return pkgErrors.NewHTTPError(409, "focus session already ended")
	case focus.ErrInvalidType:
		return pkgErrors.NewHTTPError(400, "session_type must be pomodoro, deep_work, break or custom")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
