package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"

  "github.com/launchbase/launchbase-backend/internal/handlers"
  "github.com/launchbase/launchbase-backend/internal/middleware"
)

type RouterConfig struct {
  AuthHandler         *handlers.AuthHandler
  AuthMiddleware      *middleware.AuthMiddleware
  UserHandler         *handlers.UserHandler
  ConnectionHandler   *handlers.ConnectionHandler
  ReplitHandler       *handlers.ReplitHandler
  ContentHandler      *handlers.ContentHandler
  StrategyHandler     *handlers.StrategyHandler
  ChecklistHandler    *handlers.ChecklistHandler
  NotificationHandler *handlers.NotificationHandler
  SSEHandler          *handlers.SSEHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5174",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

  // ===============
  // || Public    ||
  // ===============
  router.GET("/healthcheck", handlers.HealthCheck)
  router.POST("/register", cfg.AuthHandler.Register)
  router.POST("/login", cfg.AuthHandler.Login)

  // ===============
  // || Protected ||
  // ===============
  protected := router.Group("/")
  protected.Use(cfg.AuthMiddleware.RequireAuth())
  // Auth
  protected.POST("/refresh", cfg.AuthHandler.Refresh)
  protected.POST("/logout", cfg.AuthHandler.Logout)
  // SSE
  protected.GET("/sse/stream", cfg.SSEHandler.Stream)
  // User
  protected.GET("/user", cfg.UserHandler.GetMe)
  // MVP connections + analysis
  protected.POST("/connections", cfg.ConnectionHandler.Connect)
  protected.GET("/connections", cfg.ConnectionHandler.List)
  protected.DELETE("/connections/:id", cfg.ConnectionHandler.Disconnect)
  protected.GET("/analysis/latest", cfg.ConnectionHandler.LatestAnalysis)
  // Replit projects
  protected.POST("/replit/projects", cfg.ReplitHandler.Connect)
  protected.GET("/replit/projects", cfg.ReplitHandler.List)
  protected.DELETE("/replit/projects/:id", cfg.ReplitHandler.Disconnect)
  // Generated content
  protected.POST("/content/generate", cfg.ContentHandler.Generate)
  protected.GET("/content", cfg.ContentHandler.ListRecent)
  protected.POST("/content/:id/used", cfg.ContentHandler.MarkUsed)
  // Strategy builder + agents
  protected.POST("/strategy/steps/:step", cfg.StrategyHandler.GenerateStep)
  protected.POST("/strategy/generate-all", cfg.StrategyHandler.GenerateAll)
  protected.GET("/strategy/steps", cfg.StrategyHandler.Steps)
  protected.POST("/quick-actions", cfg.StrategyHandler.QuickAction)
  protected.POST("/agents/:agent/task", cfg.StrategyHandler.AgentTask)
  protected.GET("/suggestions", cfg.StrategyHandler.ListSuggestions)
  protected.POST("/suggestions/:id/complete", cfg.StrategyHandler.CompleteSuggestion)
  protected.GET("/activities", cfg.StrategyHandler.ListActivities)
  // Launch checklist
  protected.GET("/checklist", cfg.ChecklistHandler.Progress)
  protected.POST("/checklist/toggle", cfg.ChecklistHandler.Toggle)
  // Notifications
  protected.GET("/notifications", cfg.NotificationHandler.List)
  protected.POST("/notifications/:id/read", cfg.NotificationHandler.MarkRead)
  protected.POST("/notifications/read-all", cfg.NotificationHandler.MarkAllRead)
  protected.DELETE("/notifications/:id", cfg.NotificationHandler.Delete)

  return router
}
