package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"task-planner/config"
	_ "task-planner/docs" // Swagger docs
	"task-planner/internal/httpserver"
	"task-planner/internal/middleware"
	"task-planner/internal/planner"
	canvasRepo "task-planner/internal/task/repository/canvas"
	memoryRepo "task-planner/internal/task/repository/memory"
	"task-planner/internal/task/usecase"
	"task-planner/pkg/canvas"
	"task-planner/pkg/datemath"
	"task-planner/pkg/gcalendar"
	"task-planner/pkg/log"
)

// @title       Task Planner API
// @description Ranks manual and Canvas tasks, estimates their duration and lays them out into work/break schedules.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Planner core
	dates, err := datemath.NewParser(cfg.Planner.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Planner.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	rules, overrides, err := planner.LoadKeywordRules(cfg.Planner.KeywordRulesPath)
	if err != nil {
		logger.Warnf(ctx, "Keyword overrides ignored, using built-in rules: %v", err)
	} else {
		logger.Infof(ctx, "Loaded %d keyword overrides from %s", overrides, cfg.Planner.KeywordRulesPath)
	}

	order, _ := planner.ParseRankOrder(cfg.Planner.RankOrder)
	engine := planner.New(rules, dates, order)

	// 4. Task sources
	taskRepo := memoryRepo.New(logger)

	var assignmentClient canvasRepo.Client
	if cfg.Canvas.Enabled() {
		assignmentClient = canvas.NewClient(cfg.Canvas.BaseURL, cfg.Canvas.AccessToken,
			canvas.WithHTTPClient(&http.Client{Timeout: cfg.Canvas.Timeout}),
			canvas.WithRequestsPerMinute(cfg.Canvas.RequestsPerMin),
		)
		logger.Infof(ctx, "Canvas source enabled for %d course(s)", len(cfg.Canvas.CourseIDs))
	} else {
		logger.Warn(ctx, "Canvas source disabled: canvas.base_url or access token missing, serving pushed snapshots only")
	}
	externalRepo := canvasRepo.New(logger, assignmentClient, canvasRepo.Config{
		CourseIDs: cfg.Canvas.CourseIDs,
		CacheTTL:  cfg.Canvas.CacheTTL,
	})

	// 5. Google Calendar client (optional)
	var cal usecase.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `go run ./scripts/gcal-auth` to generate token.json")
		} else {
			cal = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Task UseCase
	taskUC := usecase.New(logger, engine, taskRepo, externalRepo, cal, usecase.Config{
		Roadmap:    scheduleConfig(cfg.Roadmap, planner.RoadmapConfig()),
		Schedule:   scheduleConfig(cfg.Schedule, planner.FullScheduleConfig()),
		CalendarID: cfg.GoogleCalendar.CalendarID,
	})

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.Config{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		},
		Readiness: httpserver.Readiness{
			KeywordRules:     rules.Len(),
			KeywordOverrides: overrides,
			Timezone:         dates.Location().String(),
			CanvasLive:       cfg.Canvas.Enabled(),
			CalendarEnabled:  cal != nil,
		},
		TaskUseCase: taskUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// scheduleConfig overlays configured values on a schedule shape. Zero values
// keep the shape's defaults.
func scheduleConfig(c config.ScheduleConfig, base planner.ScheduleConfig) planner.ScheduleConfig {
	if c.WorkBlockMinutes > 0 {
		base.WorkBlockMinutes = c.WorkBlockMinutes
	}
	if c.BreakBlockMinutes > 0 {
		base.BreakBlockMinutes = c.BreakBlockMinutes
	}
	if c.DayStartHour > 0 {
		base.DayStartHour = c.DayStartHour
	}
	if c.MaxDays > 0 {
		base.MaxDays = c.MaxDays
	}
	if c.BlocksPerDay > 0 {
		base.BlocksPerDay = c.BlocksPerDay
	}
	if c.DailyCapacityMinutes > 0 {
		base.DailyCapacityMinutes = c.DailyCapacityMinutes
	}
	if src, ok := planner.ParseEstimateSource(c.EstimateSource); ok && c.EstimateSource != "" {
		base.Source = src
	}
	return base
}
