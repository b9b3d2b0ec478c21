package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "task-planner/pkg/errors"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "http error", err: pkgErrors.NewHTTPError(http.StatusConflict, "conflict"), want: http.StatusConflict},
		{name: "wrapped", err: fmt.Errorf("ctx: %w", pkgErrors.ErrNotFound), want: http.StatusNotFound},
		{name: "plain error", err: errors.New("boom"), want: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pkgErrors.StatusCode(tt.err); got != tt.want {
				t.Errorf("StatusCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHTTPErrorMessage(t *testing.T) {
	if got := pkgErrors.NewHTTPError(http.StatusTeapot, "short and stout").Error(); got != "short and stout" {
		t.Errorf("Error() = %q", got)
	}
}
