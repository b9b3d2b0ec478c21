package http

import (
	"errors"
	"net/http"

	"task-planner/internal/task"
	pkgErrors "task-planner/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// It returns nil for errors that should be reported as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, task.ErrEmptyTitle), errors.Is(err, task.ErrInvalidPolicy):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrCalendarUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return nil
	}
}
