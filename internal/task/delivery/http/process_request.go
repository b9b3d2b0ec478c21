package http

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"task-planner/internal/model"
)

var errMissingID = errors.New("id is required")

// processListReq binds the list tasks query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processCreateReq binds and validates the create task body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds the partial update body and the URI id.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	req.ID = strings.TrimSpace(c.Param("id"))
	if req.ID == "" {
		return req, errMissingID
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processIDReq(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", errMissingID
	}
	return id, nil
}

// processPushExternalReq binds a JSON array of external records.
func (h *handler) processPushExternalReq(c *gin.Context) ([]model.RawTask, error) {
	var records []model.RawTask
	if err := c.ShouldBindJSON(&records); err != nil {
		return nil, err
	}
	return records, nil
}

func (h *handler) processScheduleReq(c *gin.Context) (scheduleReq, error) {
	var req scheduleReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
