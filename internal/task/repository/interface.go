package repository

import (
	"context"

	"task-planner/internal/model"
)

// TaskRepository stores manually entered tasks.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
}

// ExternalRepository is the assignment source. Records keep the loose mapping
// shape; normalization happens in the planner.
type ExternalRepository interface {
	// FetchAssignments returns the freshest records available. A live source
	// refreshes the snapshot on success.
	FetchAssignments(ctx context.Context) ([]model.RawTask, error)
	// Snapshot returns the last known records without contacting the source.
	Snapshot(ctx context.Context) ([]model.RawTask, error)
	// ReplaceSnapshot swaps the stored records for pushed ones.
	ReplaceSnapshot(ctx context.Context, records []model.RawTask) error
}
