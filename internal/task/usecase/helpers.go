package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"task-planner/internal/model"
	"task-planner/internal/planner"
	"task-planner/internal/task"
	"task-planner/internal/task/repository"
	"task-planner/pkg/datemath"
)

// combined merges manual tasks with the external source. An unavailable
// source contributes nothing.
func (uc *implUseCase) combined(ctx context.Context, now time.Time, includePast bool) ([]model.Task, error) {
	manual, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{})
	if err != nil {
		return nil, fmt.Errorf("list manual tasks: %w", err)
	}

	external := uc.externalTasks(ctx)

	all := make([]model.Task, 0, len(manual)+len(external))
	for _, t := range manual {
		if t.Origin == "" {
			t.Origin = model.OriginManual
		}
		all = append(all, uc.engine.Resolve(t))
	}
	all = append(all, external...)

	if includePast {
		return all, nil
	}

	upcoming := all[:0]
	for _, t := range all {
		if uc.isUpcoming(t, now) {
			upcoming = append(upcoming, t)
		}
	}
	return upcoming, nil
}

// externalTasks normalizes the live external records. Origin is defaulted,
// never overwritten.
func (uc *implUseCase) externalTasks(ctx context.Context) []model.Task {
	records, err := uc.external.FetchAssignments(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "uc.combined: external source unavailable, continuing without it: %v", err)
		return nil
	}

	out := make([]model.Task, 0, len(records))
	for _, raw := range records {
		t := uc.engine.Normalize(raw)
		if t.Origin == "" {
			t.Origin = model.OriginExternal
		}
		out = append(out, t)
	}
	return out
}

// effectiveDue is the moment a task falls due. Date-only due dates last until the end of that day.
func (uc *implUseCase) effectiveDue(t model.Task) (time.Time, bool) {
	if !planner.HasDue(t) {
		return time.Time{}, false
	}
	if t.DueAllDay {
		dates := uc.engine.Dates()
		return dates.EndOfDay(dates.StartOfDay(t.Due)), true
	}
	return t.Due, true
}

func (uc *implUseCase) isUpcoming(t model.Task, now time.Time) bool {
	due, ok := uc.effectiveDue(t)
	return !ok || !due.Before(now)
}

func (uc *implUseCase) ranked(ctx context.Context, now time.Time, includePast bool) ([]model.Task, error) {
	tasks, err := uc.combined(ctx, now, includePast)
	if err != nil {
		return nil, err
	}
	return uc.engine.Rank(tasks), nil
}

func pending(tasks []model.Task) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// resolveDue turns user input into a due date. Unrecognized text is kept raw
// and treated as no due date.
func (uc *implUseCase) resolveDue(ctx context.Context, raw string, now time.Time) (time.Time, bool) {
	dates := uc.engine.Dates()
	res, err := dates.Resolve(raw, now)
	if err != nil {
		uc.l.Warnf(ctx, "usecase.resolveDue: keeping raw due date: %v", err)
		return datemath.MaxDate, false
	}
	return res.AbsoluteTime, res.IsAllDay
}

func mapRepoError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return task.ErrTaskNotFound
	}
	return err
}
