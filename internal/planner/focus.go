package planner

import (
	"math"
	"time"

	"task-planner/internal/model"
)

// FocusScore is an earned/total pair of focus points.
type FocusScore struct {
	Earned int `json:"earned"`
	Total  int `json:"total"`
}

// FocusPolicyName names a focus scoring strategy.
type FocusPolicyName string

const (
	FocusWeighted FocusPolicyName = "weighted"
	FocusSimple   FocusPolicyName = "simple"
)

// FocusPolicy converts ranked, estimated tasks into focus points.
type FocusPolicy interface {
	Name() FocusPolicyName
	Score(tasks []model.Task, now time.Time) FocusScore
}

// NewFocusPolicy returns the named policy, or false for unknown names.
func NewFocusPolicy(name FocusPolicyName, est *Estimator) (FocusPolicy, bool) {
	switch name {
	case FocusWeighted:
		return weightedFocus{est: est}, true
	case FocusSimple:
		return simpleFocus{est: est}, true
	}
	return nil, false
}

// weightedFocus rewards important, high-priority work in proportion to its length.
type weightedFocus struct {
	est *Estimator
}

func (weightedFocus) Name() FocusPolicyName { return FocusWeighted }

func (p weightedFocus) Score(tasks []model.Task, now time.Time) FocusScore {
	var earned, total float64
	for _, t := range tasks {
		pts := TaskFocusPoints(t, p.est.Minutes(t, now))
		total += pts
		if t.Completed {
			earned += pts
		}
	}
	return FocusScore{Earned: int(math.Round(earned)), Total: int(math.Round(total))}
}

// TaskFocusPoints is the weighted-policy value of one task estimated at minutes.
func TaskFocusPoints(t model.Task, minutes int) float64 {
	base := float64(minutes) / focusMinutesPerUnit * focusPointsPerUnit
	importance := float64(focusWeightCeiling-CategoryWeight(t.Category)) * focusImportanceStep
	priority := float64(focusWeightCeiling-clampPriority(t.Priority)) * focusPriorityStep
	return base * (1 + importance + priority)
}

// simpleFocus scales total points by PERT-expected minutes and awards a flat
// amount per completed task.
type simpleFocus struct {
	est *Estimator
}

func (simpleFocus) Name() FocusPolicyName { return FocusSimple }

func (p simpleFocus) Score(tasks []model.Task, now time.Time) FocusScore {
	var minutes float64
	completed := 0
	for _, t := range tasks {
		minutes += p.est.PERT(t, now).Expected
		if t.Completed {
			completed++
		}
	}
	return FocusScore{
		Earned: completed * simplePointsPerTask,
		Total:  int(math.Round(minutes / simpleMinutesPerPoint)),
	}
}
