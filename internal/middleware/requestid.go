package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgLog "task-planner/pkg/log"
)

const RequestIDHeader = "X-Request-ID"

// RequestID propagates or assigns a request id and tags the request context
// so every log line written while serving it carries the id.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(pkgLog.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
