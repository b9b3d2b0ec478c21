package main

import (
	"testing"

	"task-planner/config"
	"task-planner/internal/planner"
)

func TestScheduleConfig(t *testing.T) {
	got := scheduleConfig(config.ScheduleConfig{
		WorkBlockMinutes:     45,
		DailyCapacityMinutes: 180,
		EstimateSource:       "pert",
	}, planner.FullScheduleConfig())

	if got.WorkBlockMinutes != 45 || got.DailyCapacityMinutes != 180 || got.Source != planner.SourcePERT {
		t.Errorf("overlay = %+v", got)
	}
	if got.BreakBlockMinutes != 10 || got.DayStartHour != 9 || got.Policy != planner.PolicyCapacity {
		t.Errorf("defaults lost: %+v", got)
	}

	kept := scheduleConfig(config.ScheduleConfig{EstimateSource: "bogus"}, planner.RoadmapConfig())
	if kept.Source != planner.SourcePERT {
		t.Errorf("source = %q, want roadmap default pert", kept.Source)
	}
}
