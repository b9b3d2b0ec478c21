package usecase

import (
	"context"
	"math/rand/v2"
	"time"

	"task-planner/internal/planner"
	"task-planner/internal/task"
	"task-planner/internal/task/repository"
	"task-planner/pkg/gcalendar"
	pkgLog "task-planner/pkg/log"
)

// Calendar is the subset of the Google Calendar client used for exports.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// Config carries the schedule shapes and calendar target. Now and Pick are
// optional and exist so tests can fix the clock and the motivation choice.
type Config struct {
	Roadmap    planner.ScheduleConfig
	Schedule   planner.ScheduleConfig
	CalendarID string
	Now        func() time.Time
	Pick       func(n int) int
}

type implUseCase struct {
	l        pkgLog.Logger
	engine   *planner.Engine
	repo     repository.TaskRepository
	external repository.ExternalRepository
	calendar Calendar

	roadmap    planner.ScheduleConfig
	schedule   planner.ScheduleConfig
	calendarID string
	now        func() time.Time
	pick       func(n int) int
}

// New creates a new task UseCase instance. calendar may be nil, which
// disables ExportSchedule.
func New(
	l pkgLog.Logger,
	engine *planner.Engine,
	repo repository.TaskRepository,
	external repository.ExternalRepository,
	calendar Calendar,
	cfg Config,
) task.UseCase {
	uc := &implUseCase{
		l:          l,
		engine:     engine,
		repo:       repo,
		external:   external,
		calendar:   calendar,
		roadmap:    cfg.Roadmap,
		schedule:   cfg.Schedule,
		calendarID: cfg.CalendarID,
		now:        cfg.Now,
		pick:       cfg.Pick,
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	if uc.pick == nil {
		uc.pick = rand.IntN
	}
	return uc
}
