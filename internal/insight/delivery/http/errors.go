package http

import (
	"personal-task-management/internal/insight"
	pkgErrors "personal-task-management/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case insight.ErrInvalidDays:
		return pkgErrors.NewHTTPError(400, "days must be between 1 and 90")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
