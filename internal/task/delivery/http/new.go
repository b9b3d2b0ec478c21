package http

import (
	"github.com/gin-gonic/gin"

	"task-planner/internal/task"
	pkgLog "task-planner/pkg/log"
)

// Handler is the HTTP delivery interface of the task domain.
type Handler interface {
	ListTasks(c *gin.Context)
	CreateTask(c *gin.Context)
	GetTask(c *gin.Context)
	UpdateTask(c *gin.Context)
	Estimate(c *gin.Context)
	ListExternal(c *gin.Context)
	PushExternal(c *gin.Context)
	Summary(c *gin.Context)
	Schedule(c *gin.Context)
	ExportSchedule(c *gin.Context)
	Motivation(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l pkgLog.Logger, uc task.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
