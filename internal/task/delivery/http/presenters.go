package http

import (
	"errors"
	"time"

	"task-planner/internal/model"
	"task-planner/internal/planner"
	"task-planner/internal/task"
	"task-planner/pkg/response"
)

const breakLabel = "Break"

// --- Request DTOs ---

type listReq struct {
	IncludePast bool `form:"include_past"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() task.ListTasksInput {
	return task.ListTasksInput{IncludePast: r.IncludePast}
}

// ---

type createReq struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	DueDate          string   `json:"due_date"`
	Category         string   `json:"category"`
	Priority         any      `json:"priority"`
	Completed        bool     `json:"completed"`
	Points           *float64 `json:"points"`
	PointsPossible   *float64 `json:"points_possible"`
	EstimatedMinutes *int     `json:"estimated_minutes"`
}

func (r createReq) validate() error {
	if r.EstimatedMinutes != nil && *r.EstimatedMinutes < 0 {
		return errors.New("estimated_minutes must not be negative")
	}
	return nil
}

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Title:            r.Title,
		Description:      r.Description,
		DueDate:          r.DueDate,
		Category:         r.Category,
		Priority:         resolvePriority(r.Priority),
		Completed:        r.Completed,
		Points:           r.Points,
		PointsPossible:   r.PointsPossible,
		EstimatedMinutes: r.EstimatedMinutes,
	}
}

// ---

type updateReq struct {
	ID               string  `json:"-"` // populated from URI param
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	DueDate          *string `json:"due_date"`
	Category         *string `json:"category"`
	Priority         any     `json:"priority"`
	Completed        *bool   `json:"completed"`
	EstimatedMinutes *int    `json:"estimated_minutes"`
}

func (r updateReq) validate() error {
	if r.EstimatedMinutes != nil && *r.EstimatedMinutes < 0 {
		return errors.New("estimated_minutes must not be negative")
	}
	return nil
}

func (r updateReq) toInput() task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:               r.ID,
		Title:            r.Title,
		Description:      r.Description,
		DueDate:          r.DueDate,
		Category:         r.Category,
		Priority:         resolvePriority(r.Priority),
		Completed:        r.Completed,
		EstimatedMinutes: r.EstimatedMinutes,
	}
}

// resolvePriority accepts numbers, numeric strings or labels; anything
// unparsable falls back to the default priority.
func resolvePriority(v any) *int {
	if v == nil {
		return nil
	}
	p := planner.ResolvePriority(v)
	return &p
}

// ---

type scheduleReq struct {
	Source string `form:"source"`
}

func (r scheduleReq) toInput() task.ScheduleInput {
	return task.ScheduleInput{Source: r.Source}
}

func pushExternalInput(records []model.RawTask) task.PushExternalInput {
	return task.PushExternalInput{Records: records}
}

// --- Response DTOs ---

type taskResp struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description,omitempty"`
	Category         string   `json:"category"`
	Priority         int      `json:"priority"`
	DueDate          *string  `json:"due_date"`
	Completed        bool     `json:"completed"`
	Origin           string   `json:"origin"`
	Points           *float64 `json:"points,omitempty"`
	PointsPossible   *float64 `json:"points_possible,omitempty"`
	GroupWeight      float64  `json:"group_weight,omitempty"`
	EstimatedMinutes *int     `json:"estimated_minutes,omitempty"`
	URL              string   `json:"html_url,omitempty"`
}

// dueString renders date-only due dates as YYYY-MM-DD, timestamps as RFC3339
// and unparsable values as the text originally supplied.
func dueString(t model.Task) *string {
	var s string
	switch {
	case planner.HasDue(t) && t.DueAllDay:
		s = t.Due.Format(response.DateFormat)
	case planner.HasDue(t):
		s = t.Due.Format(time.RFC3339)
	case t.DueRaw != "":
		s = t.DueRaw
	default:
		return nil
	}
	return &s
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:               t.ID,
		Title:            t.Title,
		Description:      t.Description,
		Category:         string(t.Category),
		Priority:         t.Priority,
		DueDate:          dueString(t),
		Completed:        t.Completed,
		Origin:           string(t.Origin),
		Points:           t.Points,
		PointsPossible:   t.PointsPossible,
		GroupWeight:      t.GroupWeight,
		EstimatedMinutes: t.EstimatedMinutes,
		URL:              t.URL,
	}
}

func newTaskListResp(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	return listResp{Tasks: newTaskListResp(out.Tasks), Total: len(out.Tasks)}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(t model.Task) detailResp {
	return detailResp{Task: newTaskResp(t)}
}

type estimateResp struct {
	Task    taskResp             `json:"task"`
	Minutes int                  `json:"estimated_minutes"`
	PERT    planner.PERTEstimate `json:"pert"`
}

func (h *handler) newEstimateResp(out task.EstimateOutput) estimateResp {
	return estimateResp{Task: newTaskResp(out.Task), Minutes: out.Minutes, PERT: out.PERT}
}

type blockResp struct {
	Type     string             `json:"type"`
	TaskID   string             `json:"task_id,omitempty"`
	Title    string             `json:"title"`
	Category string             `json:"category"`
	Start    response.Timestamp `json:"start"`
	End      response.Timestamp `json:"end"`
	Minutes  int                `json:"minutes"`
}

func newBlockResp(b planner.ScheduleBlock) blockResp {
	resp := blockResp{
		Type:     string(b.Type),
		TaskID:   b.TaskID,
		Title:    b.Title,
		Category: string(b.Category),
		Start:    response.Timestamp(b.Start),
		End:      response.Timestamp(b.End),
		Minutes:  int(b.Duration() / time.Minute),
	}
	if b.Type == planner.BlockBreak {
		resp.Title = breakLabel
		resp.Category = breakLabel
	}
	return resp
}

func newBlockListResp(blocks []planner.ScheduleBlock) []blockResp {
	out := make([]blockResp, len(blocks))
	for i, b := range blocks {
		out[i] = newBlockResp(b)
	}
	return out
}

type categoryStatsResp struct {
	Total       int `json:"total"`
	NextTwoDays int `json:"next_two_days"`
}

type summaryResp struct {
	TasksTotal        int                          `json:"tasks_total"`
	TasksCompleted    int                          `json:"tasks_completed"`
	FocusPointsTotal  int                          `json:"focus_points_total"`
	FocusPointsEarned int                          `json:"focus_points_earned"`
	FocusWeighted     planner.FocusScore           `json:"focus_weighted"`
	PerCategory       map[string]categoryStatsResp `json:"per_category"`
	Schedule          []blockResp                  `json:"schedule"`
}

func (h *handler) newSummaryResp(out task.SummaryOutput) summaryResp {
	perCategory := make(map[string]categoryStatsResp, len(out.PerCategory))
	for c, s := range out.PerCategory {
		perCategory[string(c)] = categoryStatsResp{Total: s.Total, NextTwoDays: s.NextTwoDays}
	}
	return summaryResp{
		TasksTotal:        out.TasksTotal,
		TasksCompleted:    out.TasksCompleted,
		FocusPointsTotal:  out.FocusSimple.Total,
		FocusPointsEarned: out.FocusSimple.Earned,
		FocusWeighted:     out.FocusWeighted,
		PerCategory:       perCategory,
		Schedule:          newBlockListResp(out.Roadmap),
	}
}

type scheduleResp struct {
	Source      string      `json:"source"`
	WorkMinutes int         `json:"work_minutes"`
	Days        int         `json:"days"`
	Blocks      []blockResp `json:"blocks"`
}

func (h *handler) newScheduleResp(out task.ScheduleOutput) scheduleResp {
	return scheduleResp{
		Source:      string(out.Source),
		WorkMinutes: out.WorkMinutes,
		Days:        out.Days,
		Blocks:      newBlockListResp(out.Blocks),
	}
}

type exportedBlockResp struct {
	TaskID  string             `json:"task_id"`
	Title   string             `json:"title"`
	Start   response.Timestamp `json:"start"`
	End     response.Timestamp `json:"end"`
	EventID string             `json:"event_id"`
	Link    string             `json:"link,omitempty"`
}

type exportResp struct {
	Created []exportedBlockResp `json:"created"`
	Skipped int                 `json:"skipped"`
	Failed  int                 `json:"failed"`
}

func (h *handler) newExportResp(out task.ExportOutput) exportResp {
	created := make([]exportedBlockResp, len(out.Created))
	for i, b := range out.Created {
		created[i] = exportedBlockResp{
			TaskID:  b.TaskID,
			Title:   b.Title,
			Start:   response.Timestamp(b.Start),
			End:     response.Timestamp(b.End),
			EventID: b.EventID,
			Link:    b.Link,
		}
	}
	return exportResp{Created: created, Skipped: out.Skipped, Failed: out.Failed}
}

type motivationResp struct {
	Message string `json:"message"`
}
