package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"task-planner/internal/middleware"
	"task-planner/internal/task"
	"task-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware
	readiness   Readiness

	// Task domain
	taskUC task.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Config
	Readiness   Readiness

	// Task domain
	TaskUseCase task.UseCase
}

// Readiness is what the planner loaded at startup, reported by /ready.
type Readiness struct {
	KeywordRules     int
	KeywordOverrides int
	Timezone         string
	CanvasLive       bool
	CalendarEnabled  bool
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		readiness:   cfg.Readiness,
		taskUC:      cfg.TaskUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mw = middleware.New(logger, cfg.Middleware)
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task use case is required")
	}
	return nil
}
