package usecase

import (
	"context"

	"task-planner/internal/model"
	"task-planner/internal/task"
)

func (uc *implUseCase) ListExternal(ctx context.Context) ([]model.Task, error) {
	records, err := uc.external.Snapshot(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListExternal: %v", err)
		return nil, err
	}
	out := make([]model.Task, 0, len(records))
	for _, raw := range records {
		out = append(out, uc.engine.Normalize(raw))
	}
	return out, nil
}

func (uc *implUseCase) PushExternal(ctx context.Context, input task.PushExternalInput) (task.ListTasksOutput, error) {
	if err := uc.external.ReplaceSnapshot(ctx, input.Records); err != nil {
		uc.l.Errorf(ctx, "uc.PushExternal: %v", err)
		return task.ListTasksOutput{}, err
	}
	uc.l.Infof(ctx, "uc.PushExternal: stored %d external records", len(input.Records))

	tasks, err := uc.ranked(ctx, uc.now(), false)
	if err != nil {
		return task.ListTasksOutput{}, err
	}
	return task.ListTasksOutput{Tasks: tasks}, nil
}
