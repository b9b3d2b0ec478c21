package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"task-planner/internal/model"
	taskHTTP "task-planner/internal/task/delivery/http"
)

const apiPrefix = "/api/v1"

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	if srv.mode != gin.TestMode {
		srv.gin.Use(gin.Logger())
	}
	srv.gin.Use(srv.mw.RequestID(), srv.mw.CORS(), srv.mw.RateLimit())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group(apiPrefix)

	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Task domain registered at %s", apiPrefix)
	return nil
}
