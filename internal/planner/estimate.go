package planner

import (
	"math"
	"strings"
	"time"

	"task-planner/internal/model"
	"task-planner/pkg/datemath"
)

// EstimateSource selects how a task's required minutes are derived.
type EstimateSource string

const (
	SourceHeuristic EstimateSource = "heuristic"
	SourcePERT      EstimateSource = "pert"
)

// ParseEstimateSource maps a config value to an EstimateSource.
func ParseEstimateSource(s string) (EstimateSource, bool) {
	switch EstimateSource(strings.ToLower(strings.TrimSpace(s))) {
	case SourceHeuristic, "":
		return SourceHeuristic, true
	case SourcePERT:
		return SourcePERT, true
	}
	return SourceHeuristic, false
}

// Estimator produces duration estimates from a keyword rule set. It is pure:
// results depend only on the task, the reference time, and the rule set.
type Estimator struct {
	rules *RuleSet
	dates *datemath.Parser
}

// NewEstimator creates an Estimator. A nil rule set uses the built-in defaults.
func NewEstimator(rules *RuleSet, dates *datemath.Parser) *Estimator {
	if rules == nil {
		rules = NewRuleSet(nil)
	}
	return &Estimator{rules: rules, dates: dates}
}

// Minutes returns the heuristic "most likely" duration of t, in [10,180].
func (e *Estimator) Minutes(t model.Task, now time.Time) int {
	if t.EstimatedMinutes != nil {
		return clampInt(max(MinOverrideMinutes, *t.EstimatedMinutes), MinOverrideMinutes, MaxEstimateMinutes)
	}

	base := categoryBaseMinutes(t.Category)

	if p, ok := pointsSignal(t); ok {
		base = math.Max(base, math.Min(math.Trunc(p*pointsMinutesPerPoint), MaxEstimateMinutes))
	}

	text := strings.TrimSpace(strings.ToLower(t.Title + " " + t.Description))
	matched, tokens := e.rules.match(text)
	if len(matched) > 0 {
		num, den := base, 1.0
		for _, r := range matched {
			m := r.Minutes
			if m <= 0 {
				m = base
			}
			num += m * r.Weight
			den += r.Weight
		}
		base = math.Max(base, num/den)
	}

	if len(tokens) > longTextTokens {
		base *= longTextFactor
	}
	if len(tokens) > veryLongTextTokens {
		base *= veryLongTextFactor
	}

	if HasDue(t) {
		days := e.dates.DaysBetween(now, t.Due)
		switch {
		case days <= dueSoonDays:
			base *= dueSoonFactor
		case days <= dueShortlyDays:
			base *= dueShortlyFactor
		case days >= dueFarDays:
			base *= dueFarFactor
		}
	}

	return clampInt(int(math.Round(base)), MinEstimateMinutes, MaxEstimateMinutes)
}

// Required returns how much work t needs under the given source.
func (e *Estimator) Required(t model.Task, now time.Time, source EstimateSource) time.Duration {
	if source == SourcePERT {
		return time.Duration(math.Round(e.PERT(t, now).Expected * float64(time.Minute)))
	}
	return time.Duration(e.Minutes(t, now)) * time.Minute
}

func categoryBaseMinutes(c model.Category) float64 {
	switch c {
	case model.CategoryAssignments:
		return 60
	case model.CategoryCareer:
		return 45
	case model.CategoryFun, model.CategoryHealth:
		return 25
	default:
		return 30
	}
}

// pointsSignal returns points, falling back to points_possible. Only positive values count.
func pointsSignal(t model.Task) (float64, bool) {
	for _, p := range []*float64{t.Points, t.PointsPossible} {
		if p != nil && *p > 0 {
			return *p, true
		}
	}
	return 0, false
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
