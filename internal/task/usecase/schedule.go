package usecase

import (
	"context"
	"math"
	"strings"
	"time"

	"task-planner/internal/planner"
	"task-planner/internal/task"
)

func (uc *implUseCase) Schedule(ctx context.Context, input task.ScheduleInput) (task.ScheduleOutput, error) {
	cfg, err := uc.scheduleConfig(input.Source)
	if err != nil {
		return task.ScheduleOutput{}, err
	}

	now := uc.now()
	tasks, err := uc.ranked(ctx, now, false)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Schedule: %v", err)
		return task.ScheduleOutput{}, err
	}

	sched := uc.engine.Scheduler(cfg)
	blocks := sched.Build(pending(tasks), now)

	out := task.ScheduleOutput{Source: sched.Config().Source, Blocks: blocks}
	days := make(map[time.Time]struct{})
	dates := uc.engine.Dates()
	var work time.Duration
	for _, b := range blocks {
		if b.Type != planner.BlockWork {
			continue
		}
		work += b.Duration()
		days[dates.StartOfDay(b.Start)] = struct{}{}
	}
	out.WorkMinutes = int(math.Round(work.Minutes()))
	out.Days = len(days)
	return out, nil
}

// scheduleConfig applies a per-request estimate source on top of the configured full schedule.
func (uc *implUseCase) scheduleConfig(source string) (planner.ScheduleConfig, error) {
	cfg := uc.schedule
	source = strings.TrimSpace(source)
	if source == "" {
		return cfg, nil
	}
	src, ok := planner.ParseEstimateSource(source)
	if !ok {
		return planner.ScheduleConfig{}, task.ErrInvalidPolicy
	}
	cfg.Source = src
	return cfg, nil
}
