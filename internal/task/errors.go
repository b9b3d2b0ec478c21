package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrEmptyTitle          = errors.New("title is required")
	ErrInvalidPolicy       = errors.New("unknown estimate source")
	ErrCalendarUnavailable = errors.New("calendar export is not configured")
)
