package planner

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"task-planner/internal/model"
	"task-planner/pkg/datemath"
)

// Normalizer resolves raw or partially filled tasks into canonical records.
// It never fails: every malformed field resolves to its documented default.
type Normalizer struct {
	dates *datemath.Parser
}

// NewNormalizer creates a Normalizer that interprets dates in the parser's timezone.
func NewNormalizer(dates *datemath.Parser) *Normalizer {
	return &Normalizer{dates: dates}
}

// Normalize converts the mapping shape into a canonical Task.
func (n *Normalizer) Normalize(raw model.RawTask) model.Task {
	title := raw.Title
	if title == "" {
		title = raw.Name
	}

	t := model.Task{
		ID:             stringify(raw.ID),
		Title:          title,
		Description:    raw.Description,
		Category:       ResolveCategory(raw.Category),
		Priority:       ResolvePriority(raw.Priority),
		Completed:      resolveBool(raw.Completed),
		Origin:         model.Origin(raw.Origin),
		Points:         optionalFloat(raw.Points),
		PointsPossible: optionalFloat(raw.PointsPossible),
		URL:            raw.HTMLURL,
	}
	if gw, ok := toFloat(raw.GroupWeight); ok {
		t.GroupWeight = gw
	}
	if m, ok := toFloat(raw.EstimatedMinutes); ok {
		v := int(m)
		t.EstimatedMinutes = &v
	}

	switch d := raw.DueDate.(type) {
	case string:
		t.DueRaw = d
	case time.Time:
		t.DueRaw = d.Format(time.RFC3339)
	}
	t.Due, t.DueAllDay = n.ResolveDue(raw.DueDate)
	return t
}

// Resolve re-applies the defaults to a structured Task so that hand-built
// records satisfy the same invariants as normalized ones.
func (n *Normalizer) Resolve(t model.Task) model.Task {
	t.Category = ResolveCategory(string(t.Category))
	t.Priority = clampPriority(t.Priority)
	if t.Due.IsZero() {
		t.Due, t.DueAllDay = n.ResolveDue(t.DueRaw)
	}
	return t
}

// ResolveDue parses a due-date value. Absent or unparsable values return
// datemath.MaxDate.
func (n *Normalizer) ResolveDue(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		if d.IsZero() {
			return datemath.MaxDate, false
		}
		return d.In(n.dates.Location()), false
	case string:
		if res, ok := n.dates.ParseDue(d); ok {
			return res.AbsoluteTime, res.IsAllDay
		}
	}
	return datemath.MaxDate, false
}

// ResolveCategory returns the category named by s, or General.
func ResolveCategory(s string) model.Category {
	c := model.Category(strings.TrimSpace(s))
	if _, ok := categoryWeights[c]; ok {
		return c
	}
	return DefaultCategory
}

// ResolvePriority coerces v to an integer priority in [1,5].
// Missing or unparsable values resolve to 3; values above 5 mean "none" and clamp to 5.
func ResolvePriority(v any) int {
	switch p := v.(type) {
	case int:
		return clampPriority(p)
	case int64:
		return clampPriority(int(p))
	case float64:
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return DefaultPriority
		}
		return clampPriority(int(p))
	case json.Number:
		if i, err := p.Int64(); err == nil {
			return clampPriority(int(i))
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(p)); err == nil {
			return clampPriority(i)
		}
	}
	return DefaultPriority
}

func clampPriority(p int) int {
	switch {
	case p < MinPriority:
		return DefaultPriority
	case p > MaxPriority:
		return MaxPriority
	default:
		return p
	}
}

// HasDue reports whether t carries a real due date.
func HasDue(t model.Task) bool {
	return !t.Due.IsZero() && t.Due.Before(datemath.MaxDate)
}

func stringify(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		return strconv.Itoa(id)
	case int64:
		return strconv.FormatInt(id, 10)
	case json.Number:
		return id.String()
	default:
		return ""
	}
}

func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func optionalFloat(v any) *float64 {
	if f, ok := toFloat(v); ok {
		return &f
	}
	return nil
}

func resolveBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		return err == nil && parsed
	case float64:
		return b != 0
	case int:
		return b != 0
	}
	return false
}
