package memory

import (
	"context"
	"fmt"

	"task-planner/internal/model"
	"task-planner/internal/task/repository"
)

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	t := cloneTask(opt.Task)
	if t.Origin == "" {
		t.Origin = model.OriginManual
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if t.ID == "" {
		t.ID = r.newID()
	}
	if _, exists := r.tasks[t.ID]; exists {
		return model.Task{}, fmt.Errorf("memory repository: duplicate id %q", t.ID)
	}
	r.tasks[t.ID] = t
	r.order = append(r.order, t.ID)

	r.l.Debugf(ctx, "memory repository: created task %s", t.ID)
	return cloneTask(t), nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	return cloneTask(t), nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Task, 0, len(r.order))
	for _, id := range r.order {
		t := r.tasks[id]
		if opt.Category != "" && t.Category != opt.Category {
			continue
		}
		if opt.Completed != nil && t.Completed != *opt.Completed {
			continue
		}
		out = append(out, cloneTask(t))
	}
	return out, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[opt.ID]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}

	if opt.Title != nil {
		t.Title = *opt.Title
	}
	if opt.Description != nil {
		t.Description = *opt.Description
	}
	if opt.Category != nil {
		t.Category = *opt.Category
	}
	if opt.Priority != nil {
		t.Priority = *opt.Priority
	}
	if opt.Completed != nil {
		t.Completed = *opt.Completed
	}
	if opt.EstimatedMinutes != nil {
		v := *opt.EstimatedMinutes
		t.EstimatedMinutes = &v
	}
	if opt.DueRaw != nil {
		t.DueRaw = *opt.DueRaw
		t.Due = opt.Due
		t.DueAllDay = opt.DueAllDay
	}

	r.tasks[opt.ID] = t
	return cloneTask(t), nil
}

// cloneTask copies pointer fields so stored tasks cannot be changed through a returned value.
func cloneTask(t model.Task) model.Task {
	if t.Points != nil {
		v := *t.Points
		t.Points = &v
	}
	if t.PointsPossible != nil {
		v := *t.PointsPossible
		t.PointsPossible = &v
	}
	if t.EstimatedMinutes != nil {
		v := *t.EstimatedMinutes
		t.EstimatedMinutes = &v
	}
	return t
}
