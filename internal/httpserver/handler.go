package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "enrollment-assistant/internal/chat/delivery/http"
	conversationHTTP "enrollment-assistant/internal/conversation/delivery/http"
	"enrollment-assistant/internal/middleware"
	"enrollment-assistant/internal/model"
	taskHTTP "enrollment-assistant/internal/task/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.allowedOrigins)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.CORS())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production, origins=%v", srv.allowedOrigins)
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
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	conversationHTTP.RegisterRoutes(api, conversationHTTP.New(srv.l, srv.conversations), mw)
	srv.l.Infof(ctx, "Conversation routes registered at /api/v1/conversations")

	chatHTTP.RegisterRoutes(api, chatHTTP.New(srv.l, srv.chatUC), mw)
	srv.l.Infof(ctx, "Chat routes registered at /api/v1/chat")

	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, srv.taskUC, srv.observerBuffer), mw)
	srv.l.Infof(ctx, "Task routes registered at /api/v1/tasks")
}
