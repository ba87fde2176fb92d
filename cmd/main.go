package main

import (
  "context"
  "fmt"
  "os"
  "time"

  redisclient "github.com/launchbase/launchbase-backend/internal/clients/redis"
  "github.com/launchbase/launchbase-backend/internal/db"
  "github.com/launchbase/launchbase-backend/internal/handlers"
  "github.com/launchbase/launchbase-backend/internal/logger"
  "github.com/launchbase/launchbase-backend/internal/middleware"
  "github.com/launchbase/launchbase-backend/internal/repos"
  "github.com/launchbase/launchbase-backend/internal/server"
  "github.com/launchbase/launchbase-backend/internal/services"
  "github.com/launchbase/launchbase-backend/internal/sse"
  "github.com/launchbase/launchbase-backend/internal/utils"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  log.Info("Loading environment variables from main...")
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
  accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
  refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up Repos from main...")
  userRepo := repos.NewUserRepo(thePG, log)
  userTokenRepo := repos.NewUserTokenRepo(thePG, log)
  connectionRepo := repos.NewMVPConnectionRepo(thePG, log)
  analysisRepo := repos.NewMVPAnalysisRepo(thePG, log)
  replitProjectRepo := repos.NewReplitProjectRepo(thePG, log)
  contentRepo := repos.NewGeneratedContentRepo(thePG, log)
  suggestionRepo := repos.NewAISuggestionRepo(thePG, log)
  notificationRepo := repos.NewNotificationRepo(thePG, log)
  activityRepo := repos.NewAgentActivityRepo(thePG, log)
  checklistStateRepo := repos.NewChecklistStateRepo(thePG, log)
  aiCallLogRepo := repos.NewAICallLogRepo(thePG, log)

  // SSE
  log.Info("Setting up SSE hub now...")
  sseHub := sse.NewSSEHub(log)
  var sseBus redisclient.SSEBus
  if os.Getenv("REDIS_ADDR") != "" {
    bus, busErr := redisclient.NewSSEBus(log)
    if busErr != nil {
      log.Warn("Could not init redis SSE bus; realtime stays single-instance", "error", busErr)
    } else {
      sseBus = bus
      if fwdErr := bus.StartForwarder(context.Background(), sseHub.Broadcast); fwdErr != nil {
        log.Warn("Could not start SSE forwarder", "error", fwdErr)
      }
    }
  }

  // Services
  log.Info("Setting up Services from main...")
  aiClient, err := services.NewAIClient(log, aiCallLogRepo)
  if err != nil {
    log.Error("Could not init AIClient", "error", err)
    os.Exit(1)
  }
  scraper := services.NewPageScraper(log)
  authService := services.NewAuthService(thePG, log, userRepo, userTokenRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second, time.Duration(refreshTokenTTL)*time.Second)
  userService := services.NewUserService(log, userRepo)
  notificationService := services.NewNotificationService(log, notificationRepo, sseHub, sseBus)
  analysisService := services.NewAnalysisService(log, analysisRepo, aiClient, notificationService)
  connectionService := services.NewConnectionService(log, connectionRepo, analysisRepo, analysisService)
  replitService := services.NewReplitService(log, replitProjectRepo, scraper, notificationService)
  contentService := services.NewContentService(log, contentRepo, aiClient, notificationService)
  strategyService := services.NewStrategyService(log, suggestionRepo, activityRepo, aiClient, notificationService)
  checklistService := services.NewChecklistService(log, checklistStateRepo)

  // Handlers
  log.Info("Setting up handlers from main...")
  authHandler := handlers.NewAuthHandler(authService)
  userHandler := handlers.NewUserHandler(userService)
  sseHandler := handlers.NewSSEHandler(sseHub)
  connectionHandler := handlers.NewConnectionHandler(connectionService, analysisService)
  replitHandler := handlers.NewReplitHandler(replitService)
  contentHandler := handlers.NewContentHandler(contentService)
  strategyHandler := handlers.NewStrategyHandler(strategyService)
  checklistHandler := handlers.NewChecklistHandler(checklistService)
  notificationHandler := handlers.NewNotificationHandler(notificationService)

  // Middleware
  log.Info("Setting up middleware from main...")
  authMiddleware := middleware.NewAuthMiddleware(log, authService)

  // Router
  log.Info("Setting up router from main...")
  router := server.NewRouter(server.RouterConfig{
    AuthHandler:         authHandler,
    AuthMiddleware:      authMiddleware,
    UserHandler:         userHandler,
    ConnectionHandler:   connectionHandler,
    ReplitHandler:       replitHandler,
    ContentHandler:      contentHandler,
    StrategyHandler:     strategyHandler,
    ChecklistHandler:    checklistHandler,
    NotificationHandler: notificationHandler,
    SSEHandler:          sseHandler,
  })

  port := utils.GetEnv("PORT", "8080", log)
  fmt.Printf("Server listening on :%s\n", port)
  if err := router.Run(":" + port); err != nil {
    log.Warn("Server failed", "error", err)
  }
}
