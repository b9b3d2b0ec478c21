package usecase

import (
	"context"
	"errors"
	"strings"

	"task-planner/internal/model"
	"task-planner/internal/planner"
	"task-planner/internal/task"
	"task-planner/internal/task/repository"
)

func (uc *implUseCase) ListTasks(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	tasks, err := uc.ranked(ctx, uc.now(), input.IncludePast)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}
	return task.ListTasksOutput{Tasks: tasks}, nil
}

func (uc *implUseCase) CreateTask(ctx context.Context, input task.CreateTaskInput) (task.ListTasksOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.ListTasksOutput{}, task.ErrEmptyTitle
	}

	now := uc.now()
	t := model.Task{
		Title:            title,
		Description:      input.Description,
		Category:         planner.ResolveCategory(input.Category),
		Priority:         planner.DefaultPriority,
		Completed:        input.Completed,
		Origin:           model.OriginManual,
		Points:           input.Points,
		PointsPossible:   input.PointsPossible,
		EstimatedMinutes: input.EstimatedMinutes,
		DueRaw:           strings.TrimSpace(input.DueDate),
	}
	if input.Priority != nil {
		t.Priority = planner.ResolvePriority(*input.Priority)
	}
	t.Due, t.DueAllDay = uc.resolveDue(ctx, t.DueRaw, now)

	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{Task: t})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateTask: %v", err)
		return task.ListTasksOutput{}, err
	}
	uc.l.Infof(ctx, "uc.CreateTask: created %s (%s)", created.ID, created.Title)

	tasks, err := uc.ranked(ctx, now, false)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateTask: %v", err)
		return task.ListTasksOutput{}, err
	}
	return task.ListTasksOutput{Tasks: tasks}, nil
}

func (uc *implUseCase) GetTask(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		return model.Task{}, mapRepoError(err)
	}
	return uc.engine.Resolve(t), nil
}

func (uc *implUseCase) UpdateTask(ctx context.Context, input task.UpdateTaskInput) (model.Task, error) {
	opt := repository.UpdateTaskOptions{
		ID:               input.ID,
		Description:      input.Description,
		Completed:        input.Completed,
		EstimatedMinutes: input.EstimatedMinutes,
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return model.Task{}, task.ErrEmptyTitle
		}
		opt.Title = &title
	}
	if input.Category != nil {
		c := planner.ResolveCategory(*input.Category)
		opt.Category = &c
	}
	if input.Priority != nil {
		p := planner.ResolvePriority(*input.Priority)
		opt.Priority = &p
	}
	if input.DueDate != nil {
		raw := strings.TrimSpace(*input.DueDate)
		opt.DueRaw = &raw
		opt.Due, opt.DueAllDay = uc.resolveDue(ctx, raw, uc.now())
	}

	t, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		err = mapRepoError(err)
		if !errors.Is(err, task.ErrTaskNotFound) {
			uc.l.Errorf(ctx, "uc.UpdateTask: %v", err)
		}
		return model.Task{}, err
	}
	return uc.engine.Resolve(t), nil
}

// Estimate looks the task up among manual tasks first, then among the
// external records regardless of their origin tag.
func (uc *implUseCase) Estimate(ctx context.Context, id string) (task.EstimateOutput, error) {
	now := uc.now()

	t, err := uc.repo.GetTask(ctx, id)
	switch {
	case err == nil:
		t = uc.engine.Resolve(t)
	case errors.Is(err, repository.ErrNotFound):
		found := false
		for _, c := range uc.externalTasks(ctx) {
			if c.ID == id {
				t, found = c, true
				break
			}
		}
		if !found {
			return task.EstimateOutput{}, task.ErrTaskNotFound
		}
	default:
		uc.l.Errorf(ctx, "uc.Estimate: %v", err)
		return task.EstimateOutput{}, err
	}

	est := uc.engine.Estimator()
	return task.EstimateOutput{
		Task:    t,
		Minutes: est.Minutes(t, now),
		PERT:    est.PERT(t, now),
	}, nil
}
