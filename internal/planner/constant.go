package planner

import "task-planner/internal/model"

// categoryWeights ranks categories by importance; lower is more important.
var categoryWeights = map[model.Category]int{
	model.CategoryAssignments: 1,
	model.CategoryCareer:      2,
	model.CategoryHealth:      3,
	model.CategoryFun:         4,
	model.CategoryGeneral:     5,
}

// Normalization defaults
const (
	DefaultPriority = 3
	MinPriority     = 1
	MaxPriority     = 5
	DefaultCategory = model.CategoryGeneral
)

// Estimator bounds and factors
const (
	MinEstimateMinutes = 10
	MaxEstimateMinutes = 180
	MinOverrideMinutes = 15

	pointsMinutesPerPoint = 5.0
	defaultRuleWeight     = 1.0

	longTextTokens     = 8
	veryLongTextTokens = 20
	longTextFactor     = 1.1
	veryLongTextFactor = 1.25

	dueSoonDays      = 1
	dueShortlyDays   = 3
	dueFarDays       = 10
	dueSoonFactor    = 1.5
	dueShortlyFactor = 1.2
	dueFarFactor     = 0.8
)

// PERT bounds and factors
const (
	MinOptimisticMinutes  = 5.0
	MaxPessimisticMinutes = 240.0

	wideLowFactor    = 0.5
	wideHighFactor   = 2.0
	narrowLowFactor  = 0.7
	narrowHighFactor = 1.5
)

// highVarianceMarkers widen the PERT range when found in a title.
var highVarianceMarkers = []string{"exam", "midterm", "final", "project", "paper", "essay"}

// Focus scoring
const (
	focusMinutesPerUnit   = 30.0
	focusPointsPerUnit    = 10.0
	focusImportanceStep   = 0.2
	focusPriorityStep     = 0.15
	focusWeightCeiling    = 6
	simpleMinutesPerPoint = 3.0
	simplePointsPerTask   = 10
)
