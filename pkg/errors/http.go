package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that carries the HTTP status it should be reported with.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// Common HTTP errors.
var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrServiceUnavailable  = NewHTTPError(http.StatusServiceUnavailable, "service unavailable")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)

// StatusCode returns the status carried by err, or 400 when err is not an HTTPError.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return http.StatusBadRequest
}
