package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "task-planner/pkg/errors"
	"task-planner/pkg/response"
)

var errNoKeywordRules = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "keyword rules not loaded")

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Task planner is up"
	HealthVersion = "1.0.0"
	ServiceName   = "task-planner"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports the loaded planner state. Without keyword rules every
// estimate collapses to the category base, so the service is not ready.
// @Summary Readiness Check
// @Description Report keyword rules, timezone and integrations loaded at startup
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "Keyword rules missing"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	r := srv.readiness
	data := gin.H{
		"status":            "ready",
		"service":           ServiceName,
		"version":           HealthVersion,
		"keyword_rules":     r.KeywordRules,
		"keyword_overrides": r.KeywordOverrides,
		"timezone":          r.Timezone,
		"canvas_live":       r.CanvasLive,
		"calendar_enabled":  r.CalendarEnabled,
	}
	if r.KeywordRules == 0 {
		data["status"] = "not_ready"
		response.Error(c, errNoKeywordRules, data)
		return
	}
	response.OK(c, data)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
