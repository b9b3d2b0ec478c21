package planner_test

import (
	"fmt"
	"testing"
	"time"

	"task-planner/internal/model"
	"task-planner/internal/planner"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2025, 3, 3+day, hour, minute, 0, 0, time.UTC)
}

func withOverride(id string, minutes int) model.Task {
	x := task(id, "Task "+id, model.CategoryGeneral, 3, time.Time{})
	x.EstimatedMinutes = intPtr(minutes)
	return x
}

func workMinutes(blocks []planner.ScheduleBlock) map[string]time.Duration {
	out := map[string]time.Duration{}
	for _, b := range blocks {
		if b.Type == planner.BlockWork {
			out[b.TaskID] += b.Duration()
		}
	}
	return out
}

func assertNoOverlap(t *testing.T, blocks []planner.ScheduleBlock) {
	t.Helper()
	for i := 1; i < len(blocks); i++ {
		if blocks[i].Start.Before(blocks[i-1].End) {
			t.Fatalf("block %d starts %v before previous end %v", i, blocks[i].Start, blocks[i-1].End)
		}
	}
}

func TestCapacitySchedulerEmpty(t *testing.T) {
	p := utcParser(t)
	s := planner.NewScheduler(planner.NewEstimator(nil, p), p, planner.FullScheduleConfig())
	if got := s.Build(nil, refNow); len(got) != 0 {
		t.Errorf("expected no blocks, got %d", len(got))
	}
}

func TestCapacitySchedulerSingleTask(t *testing.T) {
	p := utcParser(t)
	s := planner.NewScheduler(planner.NewEstimator(nil, p), p, planner.FullScheduleConfig())

	got := s.Build([]model.Task{withOverride("a", 120)}, refNow)

	want := []planner.ScheduleBlock{
		{Type: planner.BlockWork, Start: at(0, 9, 0), End: at(0, 9, 50)},
		{Type: planner.BlockBreak, Start: at(0, 9, 50), End: at(0, 10, 0)},
		{Type: planner.BlockWork, Start: at(0, 10, 0), End: at(0, 10, 50)},
		{Type: planner.BlockBreak, Start: at(0, 10, 50), End: at(0, 11, 0)},
		{Type: planner.BlockWork, Start: at(0, 11, 0), End: at(0, 11, 20)},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d blocks, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i].Type != want[i].Type || !got[i].Start.Equal(want[i].Start) || !got[i].End.Equal(want[i].End) {
			t.Errorf("block %d = %s %v-%v, want %s %v-%v", i,
				got[i].Type, got[i].Start, got[i].End, want[i].Type, want[i].Start, want[i].End)
		}
		if got[i].Type == planner.BlockWork && got[i].TaskID != "a" {
			t.Errorf("block %d task = %q", i, got[i].TaskID)
		}
		if got[i].Type == planner.BlockBreak && got[i].TaskID != "" {
			t.Errorf("break %d should carry no task", i)
		}
	}
}

func TestCapacitySchedulerStartsNoEarlierThanNow(t *testing.T) {
	p := utcParser(t)
	s := planner.NewScheduler(planner.NewEstimator(nil, p), p, planner.FullScheduleConfig())

	now := at(0, 13, 30)
	got := s.Build([]model.Task{withOverride("a", 30)}, now)
	if len(got) == 0 || !got[0].Start.Equal(now) {
		t.Fatalf("first block should start at now, got %+v", got)
	}
}

func TestSchedulersStopAtMidnight(t *testing.T) {
	p := utcParser(t)
	est := planner.NewEstimator(nil, p)
	now := at(0, 23, 0)

	for _, cfg := range []planner.ScheduleConfig{planner.FullScheduleConfig(), planner.RoadmapConfig()} {
		t.Run(string(cfg.Policy), func(t *testing.T) {
			got := planner.NewScheduler(est, p, cfg).Build([]model.Task{withOverride("a", 120)}, now)
			if len(got) == 0 {
				t.Fatal("expected blocks")
			}
			assertNoOverlap(t, got)

			midnight := at(1, 0, 0)
			nextStart := at(1, cfg.DayStartHour, 0)
			for i, b := range got {
				if b.Start.Before(midnight) && b.End.After(midnight) {
					t.Errorf("block %d crosses midnight: %v-%v", i, b.Start, b.End)
				}
				if !b.Start.Before(midnight) && b.Start.Before(nextStart) {
					t.Errorf("block %d starts %v before the next day opens", i, b.Start)
				}
			}
			if cfg.Policy == planner.PolicyCapacity {
				if w := workMinutes(got)["a"]; w != 120*time.Minute {
					t.Errorf("work = %v, want 2h", w)
				}
			}
		})
	}
}

func TestCapacitySchedulerSpillsToNextDay(t *testing.T) {
	p := utcParser(t)
	s := planner.NewScheduler(planner.NewEstimator(nil, p), p, planner.FullScheduleConfig())

	got := s.Build([]model.Task{withOverride("a", 180), withOverride("b", 180)}, refNow)

	var firstB *planner.ScheduleBlock
	for i := range got {
		if got[i].TaskID == "b" {
			firstB = &got[i]
			break
		}
	}
	if firstB == nil {
		t.Fatal("task b was not scheduled")
	}
	if !firstB.Start.Equal(at(1, 9, 0)) {
		t.Errorf("task b starts %v, want next day 09:00", firstB.Start)
	}
	assertNoOverlap(t, got)
}

func TestCapacitySchedulerConservesMinutes(t *testing.T) {
	p := utcParser(t)
	est := planner.NewEstimator(nil, p)
	cfg := planner.FullScheduleConfig()
	s := planner.NewScheduler(est, p, cfg)

	tasks := []model.Task{
		task("hw", "Homework set", model.CategoryAssignments, 1, dueIn(1)),
		task("cv", "Update resume", model.CategoryCareer, 2, dueIn(2)),
		task("run", "Workout", model.CategoryHealth, 3, time.Time{}),
		withOverride("long", 170),
		task("misc", "Sort receipts", model.CategoryGeneral, 4, dueIn(12)),
	}
	got := s.Build(tasks, refNow)
	assertNoOverlap(t, got)

	minutes := workMinutes(got)
	for _, tk := range tasks {
		want := time.Duration(est.Minutes(tk, refNow)) * time.Minute
		if minutes[tk.ID] != want {
			t.Errorf("task %s got %v of work, want %v", tk.ID, minutes[tk.ID], want)
		}
	}

	perDay := map[string]time.Duration{}
	for _, b := range got {
		if b.Duration() > time.Duration(cfg.WorkBlockMinutes)*time.Minute {
			t.Errorf("block longer than a work block: %v", b.Duration())
		}
		perDay[b.Start.Format(time.DateOnly)] += b.Duration()
	}
	for day, d := range perDay {
		if d > time.Duration(cfg.DailyCapacityMinutes)*time.Minute {
			t.Errorf("day %s uses %v, over capacity", day, d)
		}
	}
}

func TestBoundedScheduler(t *testing.T) {
	p := utcParser(t)
	cfg := planner.RoadmapConfig()
	s := planner.NewScheduler(planner.NewEstimator(nil, p), p, cfg)

	var tasks []model.Task
	for i := range 10 {
		tasks = append(tasks, withOverride(fmt.Sprintf("t%d", i), 180))
	}
	got := s.Build(tasks, refNow)
	assertNoOverlap(t, got)

	if len(got) == 0 || !got[0].Start.Equal(at(0, 10, 0)) {
		t.Fatalf("roadmap should start at 10:00, got %+v", got[:min(1, len(got))])
	}

	work := 0
	perDay := map[string]int{}
	for i, b := range got {
		if b.Type != planner.BlockWork {
			continue
		}
		work++
		perDay[b.Start.Format(time.DateOnly)]++
		if i+1 >= len(got) || got[i+1].Type != planner.BlockBreak {
			t.Errorf("work block %d is not followed by a break", i)
		}
	}
	if work != cfg.MaxDays*cfg.BlocksPerDay {
		t.Errorf("work blocks = %d, want %d", work, cfg.MaxDays*cfg.BlocksPerDay)
	}
	if len(perDay) > cfg.MaxDays {
		t.Errorf("spans %d days, want at most %d", len(perDay), cfg.MaxDays)
	}
	for day, n := range perDay {
		if n > cfg.BlocksPerDay {
			t.Errorf("day %s has %d work blocks", day, n)
		}
	}
}

func TestBoundedSchedulerUsesExpectedMinutes(t *testing.T) {
	p := utcParser(t)
	s := planner.NewScheduler(planner.NewEstimator(nil, p), p, planner.RoadmapConfig())

	got := s.Build([]model.Task{task("l", "Do laundry", model.CategoryGeneral, 3, time.Time{})}, refNow)

	work := workMinutes(got)["l"]
	if work != 31*time.Minute {
		t.Fatalf("laundry scheduled for %v, want 31m", work)
	}
	if len(got) != 4 || got[0].Duration() != 30*time.Minute || got[2].Duration() != time.Minute {
		t.Errorf("unexpected layout: %+v", got)
	}
}

func TestSchedulersTerminateOnLargeInput(t *testing.T) {
	p := utcParser(t)
	est := planner.NewEstimator(nil, p)

	tasks := make([]model.Task, 1000)
	for i := range tasks {
		tasks[i] = withOverride(fmt.Sprintf("t%d", i), 15+i%150)
	}

	full := planner.NewScheduler(est, p, planner.FullScheduleConfig()).Build(tasks, refNow)
	if len(workMinutes(full)) != len(tasks) {
		t.Errorf("full schedule covered %d tasks, want %d", len(workMinutes(full)), len(tasks))
	}
	assertNoOverlap(t, full)

	roadmap := planner.NewScheduler(est, p, planner.RoadmapConfig()).Build(tasks, refNow)
	if len(roadmap) > 32 {
		t.Errorf("roadmap has %d blocks, want at most 32", len(roadmap))
	}
}

func TestScheduleConfigDefaults(t *testing.T) {
	p := utcParser(t)
	s := planner.NewScheduler(planner.NewEstimator(nil, p), p, planner.ScheduleConfig{
		Policy:               "weird",
		WorkBlockMinutes:     500,
		BreakBlockMinutes:    -5,
		DayStartHour:         30,
		DailyCapacityMinutes: 120,
	})

	cfg := s.Config()
	if cfg.Policy != planner.PolicyCapacity || cfg.WorkBlockMinutes != 120 || cfg.BreakBlockMinutes != 0 || cfg.DayStartHour != 9 {
		t.Errorf("unexpected repaired config: %+v", cfg)
	}
	got := s.Build([]model.Task{withOverride("a", 150)}, refNow)
	if len(workMinutes(got)) != 1 || workMinutes(got)["a"] != 150*time.Minute {
		t.Errorf("unexpected blocks: %+v", got)
	}
}
