package usecase

import (
	"context"

	"task-planner/internal/task"
)

func (uc *implUseCase) Motivation(ctx context.Context) string {
	return task.MotivationMessages[uc.pick(len(task.MotivationMessages))]
}
