package http

import (
	"github.com/gin-gonic/gin"

	"task-planner/pkg/response"
)

// ListTasks godoc
// @Summary     List tasks
// @Description Returns manual and external tasks merged and ranked. Past-due tasks are hidden unless include_past is set.
// @Tags        Tasks
// @Produce     json
// @Param       include_past query bool false "Include tasks whose due date has passed"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListTasks(ctx, req.toInput())
	if err != nil {
		h.fail(c, "uc.ListTasks", err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// CreateTask godoc
// @Summary     Create a manual task
// @Description Stores a manual task and returns the ranked task list. due_date accepts YYYY-MM-DD, RFC3339 or phrases such as "tomorrow" and "in 3 days".
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateTask(ctx, req.toInput())
	if err != nil {
		h.fail(c, "uc.CreateTask", err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// GetTask godoc
// @Summary     Get a manual task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) GetTask(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GetTask(ctx, id)
	if err != nil {
		h.fail(c, "uc.GetTask", err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// UpdateTask godoc
// @Summary     Update a manual task
// @Description Partial update. Omitted fields are left unchanged.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PATCH]
func (h *handler) UpdateTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpdateTask(ctx, req.toInput())
	if err != nil {
		h.fail(c, "uc.UpdateTask", err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Estimate godoc
// @Summary     Estimate a task
// @Description Returns the heuristic minutes and the three-point estimate of a manual or external task.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} estimateResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/estimate [GET]
func (h *handler) Estimate(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Estimate(ctx, id)
	if err != nil {
		h.fail(c, "uc.Estimate", err)
		return
	}

	response.OK(c, h.newEstimateResp(output))
}

// ListExternal godoc
// @Summary     List external assignments
// @Description Returns the current snapshot of external (Canvas) records.
// @Tags        Canvas
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/canvas [GET]
func (h *handler) ListExternal(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListExternal(ctx)
	if err != nil {
		h.fail(c, "uc.ListExternal", err)
		return
	}

	response.OK(c, listResp{Tasks: newTaskListResp(output), Total: len(output)})
}

// PushExternal godoc
// @Summary     Replace external assignments
// @Description Replaces the external snapshot with the posted records and returns the ranked task list.
// @Tags        Canvas
// @Accept      json
// @Produce     json
// @Param       body body []model.RawTask true "External records"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/canvas [POST]
func (h *handler) PushExternal(c *gin.Context) {
	ctx := c.Request.Context()

	records, err := h.processPushExternalReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.PushExternal(ctx, pushExternalInput(records))
	if err != nil {
		h.fail(c, "uc.PushExternal", err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Summary godoc
// @Summary     Progress summary
// @Description Task counts, focus points, per-category stats and the short roadmap.
// @Tags        Planner
// @Produce     json
// @Success     200 {object} summaryResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Summary(ctx)
	if err != nil {
		h.fail(c, "uc.Summary", err)
		return
	}

	response.OK(c, h.newSummaryResp(output))
}

// Schedule godoc
// @Summary     Full schedule
// @Description Lays every pending task out into work and break blocks under the daily capacity.
// @Tags        Planner
// @Produce     json
// @Param       source query string false "Estimate source (heuristic or pert)"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule [GET]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Schedule(ctx, req.toInput())
	if err != nil {
		h.fail(c, "uc.Schedule", err)
		return
	}

	response.OK(c, h.newScheduleResp(output))
}

// ExportSchedule godoc
// @Summary     Export schedule to Google Calendar
// @Description Creates one event per work block of the full schedule. Blocks exported earlier are skipped.
// @Tags        Planner
// @Produce     json
// @Param       source query string false "Estimate source (heuristic or pert)"
// @Success     200 {object} exportResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Calendar not configured"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/export [POST]
func (h *handler) ExportSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ExportSchedule(ctx, req.toInput())
	if err != nil {
		h.fail(c, "uc.ExportSchedule", err)
		return
	}

	response.OK(c, h.newExportResp(output))
}

// Motivation godoc
// @Summary     Motivation message
// @Tags        Planner
// @Produce     json
// @Success     200 {object} motivationResp
// @Router      /api/v1/motivation [GET]
func (h *handler) Motivation(c *gin.Context) {
	response.OK(c, motivationResp{Message: h.uc.Motivation(c.Request.Context())})
}

// fail reports a use case error. Known domain errors keep their status;
// anything else is logged and hidden behind a 500.
func (h *handler) fail(c *gin.Context, op string, err error) {
	if mapped := h.mapError(err); mapped != nil {
		response.Error(c, mapped, nil)
		return
	}
	h.l.Errorf(c.Request.Context(), "%s: %v", op, err)
	response.InternalError(c, err)
}
