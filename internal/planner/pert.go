package planner

import (
	"math"
	"strings"
	"time"

	"task-planner/internal/model"
)

// PERTEstimate is a three-point estimate in minutes. Values are not rounded.
type PERTEstimate struct {
	Optimistic  float64 `json:"optimistic"`
	MostLikely  float64 `json:"most_likely"`
	Pessimistic float64 `json:"pessimistic"`
	Expected    float64 `json:"expected"`
	StdDev      float64 `json:"stddev"`
}

// PERT derives a Soft-PERT estimate with the heuristic estimate as the most likely value.
func (e *Estimator) PERT(t model.Task, now time.Time) PERTEstimate {
	m := float64(e.Minutes(t, now))

	low, high := narrowLowFactor, narrowHighFactor
	title := strings.ToLower(t.Title)
	for _, marker := range highVarianceMarkers {
		if strings.Contains(title, marker) {
			low, high = wideLowFactor, wideHighFactor
			break
		}
	}

	o := math.Max(MinOptimisticMinutes, low*m)
	p := math.Min(MaxPessimisticMinutes, high*m)

	return PERTEstimate{
		Optimistic:  o,
		MostLikely:  m,
		Pessimistic: p,
		Expected:    (o + 4*m + p) / 6,
		StdDev:      (p - o) / 6,
	}
}
