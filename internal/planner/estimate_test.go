package planner_test

import (
	"strings"
	"testing"
	"time"

	"task-planner/internal/model"
	"task-planner/internal/planner"
)

func TestEstimatorMinutes(t *testing.T) {
	p := utcParser(t)
	est := planner.NewEstimator(nil, p)

	filler := func(n int) string {
		words := make([]string, n)
		for i := range words {
			words[i] = "zz"
		}
		return strings.Join(words, " ")
	}

	tests := []struct {
		name string
		task model.Task
		want int
	}{
		{
			name: "default rules blend every matching word",
			task: task("1", "Final exam review", model.CategoryAssignments, 3, dueIn(1)),
			want: 130,
		},
		{
			name: "override below minimum",
			task: func() model.Task { x := task("2", "Quick", model.CategoryGeneral, 3, time.Time{}); x.EstimatedMinutes = intPtr(5); return x }(),
			want: 15,
		},
		{
			name: "override above maximum",
			task: func() model.Task { x := task("3", "Long", model.CategoryGeneral, 3, time.Time{}); x.EstimatedMinutes = intPtr(500); return x }(),
			want: 180,
		},
		{
			name: "more than eight tokens",
			task: task("4", filler(9), model.CategoryGeneral, 3, time.Time{}),
			want: 33,
		},
		{
			name: "more than twenty tokens",
			task: task("5", filler(21), model.CategoryGeneral, 3, time.Time{}),
			want: 41,
		},
		{
			name: "due in two days",
			task: task("6", "Prepare talk", model.CategoryCareer, 3, dueIn(2)),
			want: 54,
		},
		{
			name: "due in five days",
			task: task("7", "Prepare talk", model.CategoryCareer, 3, dueIn(5)),
			want: 45,
		},
		{
			name: "overdue counts as due soon",
			task: task("8", "Prepare talk", model.CategoryCareer, 3, dueIn(-3)),
			want: 68,
		},
		{
			name: "far away deadline relaxes",
			task: task("9", "Picnic", model.CategoryFun, 3, dueIn(20)),
			want: 20,
		},
		{
			name: "points raise the base",
			task: func() model.Task { x := task("10", "Lab 3", model.CategoryAssignments, 3, time.Time{}); x.Points = floatPtr(20); return x }(),
			want: 100,
		},
		{
			name: "points possible as fallback",
			task: func() model.Task {
				x := task("11", "Lab 4", model.CategoryAssignments, 3, time.Time{})
				x.Points = floatPtr(0)
				x.PointsPossible = floatPtr(16)
				return x
			}(),
			want: 80,
		},
		{
			name: "clamped to the maximum",
			task: task("12", "final project "+filler(20), model.CategoryAssignments, 3, dueIn(0)),
			want: 180,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := est.Minutes(tt.task, refNow); got != tt.want {
				t.Errorf("Minutes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEstimatorCustomRule(t *testing.T) {
	rules := planner.RuleSetFrom(map[string]planner.KeywordRule{
		"exam": {Minutes: 120, Type: "assessment", Weight: 2.2},
	})
	est := planner.NewEstimator(rules, utcParser(t))
	tk := task("1", "Final exam review", model.CategoryAssignments, 3, dueIn(1))

	if got := est.Minutes(tk, refNow); got != 152 {
		t.Fatalf("Minutes() = %d, want 152", got)
	}
}

func TestEstimatorKeywordsNeverLowerBase(t *testing.T) {
	est := planner.NewEstimator(nil, utcParser(t))

	plain := est.Minutes(task("a", "Do it", model.CategoryGeneral, 3, time.Time{}), refNow)
	lower := est.Minutes(task("b", "Clean up", model.CategoryGeneral, 3, time.Time{}), refNow)
	higher := est.Minutes(task("c", "Do homework", model.CategoryGeneral, 3, time.Time{}), refNow)

	if plain != 30 {
		t.Fatalf("plain = %d, want 30", plain)
	}
	if lower != plain {
		t.Errorf("a shorter keyword must not lower the base: got %d", lower)
	}
	if higher <= plain {
		t.Errorf("a longer keyword should raise the estimate: got %d", higher)
	}
}

func TestEstimatorBounds(t *testing.T) {
	est := planner.NewEstimator(nil, utcParser(t))
	cats := []model.Category{model.CategoryAssignments, model.CategoryCareer, model.CategoryHealth, model.CategoryFun, model.CategoryGeneral}
	titles := []string{"", "walk", "final exam project paper essay", strings.Repeat("word ", 40)}

	for _, c := range cats {
		for _, title := range titles {
			for _, d := range []int{-5, 0, 2, 30} {
				got := est.Minutes(task("x", title, c, 3, dueIn(d)), refNow)
				if got < planner.MinEstimateMinutes || got > planner.MaxEstimateMinutes {
					t.Errorf("Minutes(%s, %q, %d) = %d out of range", c, title, d, got)
				}
			}
		}
	}
}

func TestRequired(t *testing.T) {
	est := planner.NewEstimator(nil, utcParser(t))
	tk := task("1", "Do laundry", model.CategoryGeneral, 3, time.Time{})

	if got := est.Required(tk, refNow, planner.SourceHeuristic); got != 30*time.Minute {
		t.Errorf("heuristic = %v, want 30m", got)
	}
	if got := est.Required(tk, refNow, planner.SourcePERT); got != 31*time.Minute {
		t.Errorf("pert = %v, want 31m", got)
	}
}
