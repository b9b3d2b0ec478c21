package canvas

// AssignmentGroup is a Canvas assignment group. GroupWeight is the percentage
// of the final grade the group contributes when the course weights groups.
type AssignmentGroup struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	GroupWeight float64 `json:"group_weight"`
}

// Assignment is the subset of the Canvas assignment object the planner uses.
type Assignment struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	DueAt             *string  `json:"due_at"`
	PointsPossible    *float64 `json:"points_possible"`
	AssignmentGroupID int64    `json:"assignment_group_id"`
	HTMLURL           string   `json:"html_url"`
	CourseID          int64    `json:"course_id"`
}
