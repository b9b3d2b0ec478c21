package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.ListTasks)
		tasks.POST("", h.CreateTask)
		tasks.GET("/:id", h.GetTask)
		tasks.PATCH("/:id", h.UpdateTask)
		tasks.GET("/:id/estimate", h.Estimate)
	}

	canvas := rg.Group("/canvas")
	{
		canvas.GET("", h.ListExternal)
		canvas.POST("", h.PushExternal)
	}

	schedule := rg.Group("/schedule")
	{
		schedule.GET("", h.Schedule)
		schedule.POST("/export", h.ExportSchedule)
	}

	rg.GET("/summary", h.Summary)
	rg.GET("/motivation", h.Motivation)
}
