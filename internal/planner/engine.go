// Package planner ranks, estimates, and schedules tasks. Every function is a
// pure computation over caller-owned snapshots; the only shared state is the
// immutable keyword rule set.
package planner

import (
	"time"

	"task-planner/internal/model"
	"task-planner/pkg/datemath"
)

// Engine bundles the planner components that share a rule set and timezone.
type Engine struct {
	dates      *datemath.Parser
	order      RankOrder
	normalizer *Normalizer
	estimator  *Estimator
}

// New creates an Engine.
func New(rules *RuleSet, dates *datemath.Parser, order RankOrder) *Engine {
	return &Engine{
		dates:      dates,
		order:      order,
		normalizer: NewNormalizer(dates),
		estimator:  NewEstimator(rules, dates),
	}
}

func (e *Engine) Normalize(raw model.RawTask) model.Task { return e.normalizer.Normalize(raw) }
func (e *Engine) Resolve(t model.Task) model.Task        { return e.normalizer.Resolve(t) }
func (e *Engine) Rank(tasks []model.Task) []model.Task   { return RankBy(tasks, e.order) }
func (e *Engine) Estimator() *Estimator                  { return e.estimator }
func (e *Engine) Dates() *datemath.Parser                { return e.dates }

// Scheduler builds the strategy selected by cfg.
func (e *Engine) Scheduler(cfg ScheduleConfig) Scheduler {
	return NewScheduler(e.estimator, e.dates, cfg)
}

// Focus scores tasks under the named policy. Unknown names score zero.
func (e *Engine) Focus(name FocusPolicyName, tasks []model.Task, now time.Time) FocusScore {
	p, ok := NewFocusPolicy(name, e.estimator)
	if !ok {
		return FocusScore{}
	}
	return p.Score(tasks, now)
}
