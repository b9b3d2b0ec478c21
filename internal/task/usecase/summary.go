package usecase

import (
	"context"
	"time"

	"task-planner/internal/model"
	"task-planner/internal/planner"
	"task-planner/internal/task"
)

const nextTwoDaysWindow = 48 * time.Hour

func (uc *implUseCase) Summary(ctx context.Context) (task.SummaryOutput, error) {
	now := uc.now()
	tasks, err := uc.ranked(ctx, now, false)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Summary: %v", err)
		return task.SummaryOutput{}, err
	}

	out := task.SummaryOutput{
		TasksTotal:    len(tasks),
		FocusSimple:   uc.engine.Focus(planner.FocusSimple, tasks, now),
		FocusWeighted: uc.engine.Focus(planner.FocusWeighted, tasks, now),
		PerCategory:   make(map[model.Category]task.CategoryStats),
		Roadmap:       uc.engine.Scheduler(uc.roadmap).Build(pending(tasks), now),
	}

	horizon := now.Add(nextTwoDaysWindow)
	for _, t := range tasks {
		if t.Completed {
			out.TasksCompleted++
		}
		stats := out.PerCategory[t.Category]
		stats.Total++
		if due, ok := uc.effectiveDue(t); ok && !due.Before(now) && !due.After(horizon) {
			stats.NextTwoDays++
		}
		out.PerCategory[t.Category] = stats
	}
	return out, nil
}
