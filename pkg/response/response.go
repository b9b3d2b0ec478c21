package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "task-planner/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. The status comes from a pkg/errors.HTTPError
// when err is one, and defaults to 400 otherwise.
func Error(c *gin.Context, err error, data map[string]any) {
	if data == nil {
		data = make(map[string]any)
	}

	status := pkgErrors.StatusCode(err)
	code := ValidationErrorCode
	if status != http.StatusBadRequest {
		code = status
	}

	c.JSON(status, Resp{
		ErrorCode: code,
		Message:   err.Error(),
		Data:      data,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// NotFound sends 404 response.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Resp{
		ErrorCode: http.StatusNotFound,
		Message:   message,
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   "Too Many Requests",
	})
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, Resp{
		ErrorCode: http.StatusForbidden,
		Message:   "Forbidden",
	})
}
