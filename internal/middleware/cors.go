package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-planner/pkg/response"
)

const (
	allowMethods = "GET, POST, PATCH, OPTIONS"
	allowHeaders = "Content-Type, Authorization, X-Request-ID"
)

// CORS answers preflight requests and tags responses for allow-listed origins.
// Preflights from other origins are rejected with 403.
func (m Middleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		if !m.originAllowed(origin) {
			if c.Request.Method == http.MethodOptions {
				m.l.Warnf(c.Request.Context(), "middleware.CORS: rejected preflight from %s", origin)
				response.Forbidden(c)
				return
			}
			c.Next()
			return
		}

		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Add("Vary", "Origin")
		h.Set("Access-Control-Allow-Methods", allowMethods)
		h.Set("Access-Control-Allow-Headers", allowHeaders)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (m Middleware) originAllowed(origin string) bool {
	if m.allowAll {
		return true
	}
	_, ok := m.allowedOrigins[origin]
	return ok
}
