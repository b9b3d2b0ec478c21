package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"task-planner/internal/middleware"
	"task-planner/internal/task"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// stubUseCase implements only what the tests call.
type stubUseCase struct {
	task.UseCase
}

func (stubUseCase) Motivation(ctx context.Context) string { return "go" }

func newTestServer(t *testing.T) *HTTPServer {
	return newTestServerWith(t, Readiness{KeywordRules: 30, Timezone: "UTC"})
}

func newTestServerWith(t *testing.T, ready Readiness) *HTTPServer {
	t.Helper()
	srv, err := New(&mockLogger{}, Config{
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "test",
		Middleware:  middleware.Config{AllowedOrigins: []string{"http://localhost:3000"}},
		Readiness:   ready,
		TaskUseCase: stubUseCase{},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func TestNew_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing port", cfg: Config{Mode: gin.TestMode, TaskUseCase: stubUseCase{}}},
		{name: "missing mode", cfg: Config{Port: 1, TaskUseCase: stubUseCase{}}},
		{name: "missing use case", cfg: Config{Port: 1, Mode: gin.TestMode}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(&mockLogger{}, tt.cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}
			var body struct {
				Data map[string]any `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if body.Data["service"] != ServiceName {
				t.Errorf("service = %v", body.Data["service"])
			}
		})
	}
}

func TestReadyCheck(t *testing.T) {
	tests := []struct {
		name   string
		ready  Readiness
		status int
		state  string
	}{
		{name: "rules loaded", ready: Readiness{KeywordRules: 30, KeywordOverrides: 2, Timezone: "Europe/Berlin", CalendarEnabled: true}, status: http.StatusOK, state: "ready"},
		{name: "no rules", ready: Readiness{Timezone: "UTC"}, status: http.StatusServiceUnavailable, state: "not_ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServerWith(t, tt.ready)
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}

			var body struct {
				Data map[string]any `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if body.Data["status"] != tt.state {
				t.Errorf("status field = %v, want %s", body.Data["status"], tt.state)
			}
			if body.Data["timezone"] != tt.ready.Timezone {
				t.Errorf("timezone = %v, want %s", body.Data["timezone"], tt.ready.Timezone)
			}
			if int(body.Data["keyword_rules"].(float64)) != tt.ready.KeywordRules {
				t.Errorf("keyword_rules = %v", body.Data["keyword_rules"])
			}
			if body.Data["calendar_enabled"] != tt.ready.CalendarEnabled {
				t.Errorf("calendar_enabled = %v", body.Data["calendar_enabled"])
			}
		})
	}
}

func TestDomainRoutesMounted(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, apiPrefix+"/motivation", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("allow-origin = %q", got)
	}
}
