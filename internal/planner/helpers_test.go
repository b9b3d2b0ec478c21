package planner_test

import (
	"math"
	"testing"
	"time"

	"task-planner/internal/model"
	"task-planner/pkg/datemath"
)

// refNow is Monday 2025-03-03 08:00 UTC.
var refNow = time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)

func utcParser(t *testing.T) *datemath.Parser {
	t.Helper()
	p, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return p
}

func dueIn(days int) time.Time {
	return time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days)
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func task(id, title string, cat model.Category, prio int, due time.Time) model.Task {
	if due.IsZero() {
		due = datemath.MaxDate
	}
	return model.Task{ID: id, Title: title, Category: cat, Priority: prio, Due: due}
}
