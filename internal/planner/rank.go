package planner

import (
	"cmp"
	"slices"
	"time"

	"task-planner/internal/model"
)

// RankOrder selects the comparator used by Rank.
type RankOrder string

const (
	// OrderDueFirst orders by due date, category weight, group weight (desc), priority.
	OrderDueFirst RankOrder = "due_first"
	// OrderCategoryFirst orders by category weight, due date, priority.
	OrderCategoryFirst RankOrder = "category_first"
)

// ParseRankOrder maps a config value to a RankOrder. Unknown values report false.
func ParseRankOrder(s string) (RankOrder, bool) {
	switch RankOrder(s) {
	case OrderDueFirst, "":
		return OrderDueFirst, true
	case OrderCategoryFirst:
		return OrderCategoryFirst, true
	}
	return OrderDueFirst, false
}

// CategoryWeight returns the importance weight of c (Assignments=1 ... General=5).
func CategoryWeight(c model.Category) int {
	if w, ok := categoryWeights[c]; ok {
		return w
	}
	return categoryWeights[DefaultCategory]
}

// Compare is the canonical total order over tasks.
func Compare(a, b model.Task) int {
	return cmp.Or(
		dueDay(a).Compare(dueDay(b)),
		cmp.Compare(CategoryWeight(a.Category), CategoryWeight(b.Category)),
		cmp.Compare(b.GroupWeight, a.GroupWeight),
		cmp.Compare(a.Priority, b.Priority),
	)
}

// CompareCategoryFirst puts category importance ahead of urgency.
func CompareCategoryFirst(a, b model.Task) int {
	return cmp.Or(
		cmp.Compare(CategoryWeight(a.Category), CategoryWeight(b.Category)),
		dueDay(a).Compare(dueDay(b)),
		cmp.Compare(a.Priority, b.Priority),
	)
}

// Rank returns a stably sorted copy of tasks using the canonical order.
func Rank(tasks []model.Task) []model.Task {
	return RankBy(tasks, OrderDueFirst)
}

// RankBy returns a stably sorted copy of tasks using the given order.
// The input slice is not modified.
func RankBy(tasks []model.Task, order RankOrder) []model.Task {
	ranked := slices.Clone(tasks)
	cmpFn := Compare
	if order == OrderCategoryFirst {
		cmpFn = CompareCategoryFirst
	}
	slices.SortStableFunc(ranked, cmpFn)
	return ranked
}

// dueDay truncates the due moment to its calendar date. Tasks due on the same
// day tie on this component. Zero values are treated as the sentinel.
func dueDay(t model.Task) time.Time {
	if !HasDue(t) {
		return maxDay
	}
	y, m, d := t.Due.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var maxDay = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
