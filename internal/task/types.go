package task

import (
	"time"

	"task-planner/internal/model"
	"task-planner/internal/planner"
)

// --- UseCase Inputs ---

type ListTasksInput struct {
	IncludePast bool
}

// CreateTaskInput is a manual task as entered by the user. DueDate accepts an
// absolute date or a relative phrase such as "tomorrow" or "in 3 days".
type CreateTaskInput struct {
	Title            string
	Description      string
	DueDate          string
	Category         string
	Priority         *int
	Completed        bool
	Points           *float64
	PointsPossible   *float64
	EstimatedMinutes *int
}

// UpdateTaskInput is a partial update; nil fields are left unchanged.
type UpdateTaskInput struct {
	ID               string
	Title            *string
	Description      *string
	DueDate          *string
	Category         *string
	Priority         *int
	Completed        *bool
	EstimatedMinutes *int
}

type PushExternalInput struct {
	Records []model.RawTask
}

type ScheduleInput struct {
	// Source overrides the configured estimate source ("heuristic" or "pert").
	Source string
}

// --- UseCase Outputs ---

type ListTasksOutput struct {
	Tasks []model.Task
}

type EstimateOutput struct {
	Task    model.Task
	Minutes int
	PERT    planner.PERTEstimate
}

// CategoryStats counts tasks of one category; NextTwoDays counts those due within 48 hours.
type CategoryStats struct {
	Total       int
	NextTwoDays int
}

type SummaryOutput struct {
	TasksTotal     int
	TasksCompleted int
	// FocusSimple is the headline score; FocusWeighted rewards importance.
	FocusSimple   planner.FocusScore
	FocusWeighted planner.FocusScore
	PerCategory   map[model.Category]CategoryStats
	Roadmap       []planner.ScheduleBlock
}

type ScheduleOutput struct {
	Source      planner.EstimateSource
	Blocks      []planner.ScheduleBlock
	WorkMinutes int
	Days        int
}

// ExportedBlock is one work block written to the calendar.
type ExportedBlock struct {
	TaskID  string
	Title   string
	Start   time.Time
	End     time.Time
	EventID string
	Link    string
}

type ExportOutput struct {
	Created []ExportedBlock
	Skipped int
	Failed  int
}
