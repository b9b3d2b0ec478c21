package canvas

import (
	"context"
	"fmt"
	"slices"

	"task-planner/internal/model"
	pkgCanvas "task-planner/pkg/canvas"
)

// Canvas assignments are always graded coursework.
const assignmentPriority = 1

func (r *implRepository) FetchAssignments(ctx context.Context) ([]model.RawTask, error) {
	if r.client == nil {
		return r.Snapshot(ctx)
	}

	var records []model.RawTask
	for _, courseID := range r.courseIDs {
		course, err := r.course(ctx, courseID)
		if err != nil {
			r.l.Warnf(ctx, "canvas repository: course %s: %v", courseID, err)
			return nil, err
		}
		records = append(records, course...)
	}

	r.mu.Lock()
	r.snapshot = records
	r.mu.Unlock()

	return cloneRecords(records), nil
}

func (r *implRepository) Snapshot(ctx context.Context) ([]model.RawTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneRecords(r.snapshot), nil
}

func (r *implRepository) ReplaceSnapshot(ctx context.Context, records []model.RawTask) error {
	next := cloneRecords(records)
	for i := range next {
		if next[i].Origin == "" {
			next[i].Origin = string(model.OriginExternal)
		}
	}

	r.mu.Lock()
	r.snapshot = next
	r.mu.Unlock()

	r.l.Infof(ctx, "canvas repository: snapshot replaced with %d records", len(next))
	return nil
}

// course returns one course's records, from cache when fresh.
func (r *implRepository) course(ctx context.Context, courseID string) ([]model.RawTask, error) {
	if cached, ok := r.cache.Get(courseID); ok {
		return cached, nil
	}

	groups, err := r.client.ListAssignmentGroups(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("list assignment groups: %w", err)
	}
	weights := make(map[int64]float64, len(groups))
	for _, g := range groups {
		weights[g.ID] = g.GroupWeight
	}

	assignments, err := r.client.ListAssignments(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}

	records := make([]model.RawTask, 0, len(assignments))
	for _, a := range assignments {
		records = append(records, toRawTask(a, weights))
	}
	r.cache.Add(courseID, records)
	return records, nil
}

func toRawTask(a pkgCanvas.Assignment, weights map[int64]float64) model.RawTask {
	raw := model.RawTask{
		ID:          a.ID,
		Title:       a.Name,
		Description: a.Description,
		Category:    string(model.CategoryAssignments),
		Priority:    assignmentPriority,
		GroupWeight: weights[a.AssignmentGroupID],
		Origin:      string(model.OriginExternal),
		HTMLURL:     a.HTMLURL,
	}
	if a.DueAt != nil {
		raw.DueDate = *a.DueAt
	}
	if a.PointsPossible != nil {
		raw.PointsPossible = *a.PointsPossible
	}
	return raw
}

func cloneRecords(records []model.RawTask) []model.RawTask {
	if records == nil {
		return []model.RawTask{}
	}
	return slices.Clone(records)
}
