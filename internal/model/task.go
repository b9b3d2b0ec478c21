package model

import "time"

// Category is one of the fixed task categories.
type Category string

const (
	CategoryAssignments Category = "Assignments"
	CategoryCareer      Category = "Career"
	CategoryHealth      Category = "Health"
	CategoryFun         Category = "Fun"
	CategoryGeneral     Category = "General"
)

// Origin tags where a task came from. It never affects ranking or estimation.
type Origin string

const (
	OriginManual   Origin = "manual"
	OriginExternal Origin = "external"
)

// Task is the canonical record every planner component consumes.
// Due holds datemath.MaxDate when the task has no parsable due date.
type Task struct {
	ID               string
	Title            string
	Description      string
	Category         Category
	Priority         int // 1 = critical ... 5 = none
	DueRaw           string
	Due              time.Time
	DueAllDay        bool
	Completed        bool
	Origin           Origin
	Points           *float64
	PointsPossible   *float64
	GroupWeight      float64
	EstimatedMinutes *int
	URL              string
}

// RawTask is the loosely typed "mapping" shape tasks arrive in, from JSON
// bodies or the external assignment source. Numeric fields accept numbers or
// numeric strings; anything else resolves to a default during normalization.
type RawTask struct {
	ID               any    `json:"id,omitempty"`
	Title            string `json:"title,omitempty"`
	Name             string `json:"name,omitempty"`
	Description      string `json:"description,omitempty"`
	DueDate          any    `json:"due_date,omitempty"`
	Category         string `json:"category,omitempty"`
	Priority         any    `json:"priority,omitempty"`
	Completed        any    `json:"completed,omitempty"`
	Points           any    `json:"points,omitempty"`
	PointsPossible   any    `json:"points_possible,omitempty"`
	GroupWeight      any    `json:"group_weight,omitempty"`
	EstimatedMinutes any    `json:"estimated_minutes,omitempty"`
	Origin           string `json:"origin,omitempty"`
	HTMLURL          string `json:"html_url,omitempty"`
}
