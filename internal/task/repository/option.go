package repository

import (
	"time"

	"task-planner/internal/model"
)

// CreateTaskOptions holds the parameters for storing a manual task. ID is
// assigned by the repository when empty.
type CreateTaskOptions struct {
	Task model.Task
}

// ListTasksOptions filters manual tasks. Zero values match everything.
type ListTasksOptions struct {
	Category  model.Category
	Completed *bool
}

// UpdateTaskOptions holds a partial update. Nil fields are left unchanged.
// Due and DueAllDay are applied only together with DueRaw.
type UpdateTaskOptions struct {
	ID               string
	Title            *string
	Description      *string
	Category         *model.Category
	Priority         *int
	Completed        *bool
	EstimatedMinutes *int
	DueRaw           *string
	Due              time.Time
	DueAllDay        bool
}
