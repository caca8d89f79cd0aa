package http

import (
	"personal-task-management/internal/reminder"
	pkgErrors "personal-task-management/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case reminder.ErrReminderNotFound:
		return pkgErrors.NewHTTPError(404, "reminder not found")
	case reminder.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	case reminder.ErrInvalidType:
		return pkgErrors.NewHTTPError(400, "type must be notification, email or sms")
	case reminder.ErrInvalidRemindAt:
		return pkgErrors.NewHTTPError(400, "remind_at is required")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
