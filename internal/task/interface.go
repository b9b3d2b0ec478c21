package task

import (
	"context"

	"task-planner/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// ListTasks returns manual and external tasks merged and ranked.
	ListTasks(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	// CreateTask stores a manual task and returns the ranked combined list.
	CreateTask(ctx context.Context, input CreateTaskInput) (ListTasksOutput, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	// UpdateTask applies a partial update to a manual task.
	UpdateTask(ctx context.Context, input UpdateTaskInput) (model.Task, error)
	// Estimate returns the heuristic and three-point estimates of one task.
	Estimate(ctx context.Context, id string) (EstimateOutput, error)

	// ListExternal returns the current external snapshot as normalized tasks.
	ListExternal(ctx context.Context) ([]model.Task, error)
	// PushExternal replaces the external snapshot and returns the ranked combined list.
	PushExternal(ctx context.Context, input PushExternalInput) (ListTasksOutput, error)

	Summary(ctx context.Context) (SummaryOutput, error)
	Schedule(ctx context.Context, input ScheduleInput) (ScheduleOutput, error)
	// ExportSchedule writes the work blocks of the full schedule to the calendar.
	ExportSchedule(ctx context.Context, input ScheduleInput) (ExportOutput, error)

	Motivation(ctx context.Context) string
}
