package db

import (
  "fmt"

  "gorm.io/driver/postgres"
  "gorm.io/gorm"

  "github.com/launchbase/launchbase-backend/internal/logger"
  "github.com/launchbase/launchbase-backend/internal/types"
  "github.com/launchbase/launchbase-backend/internal/utils"
)

type PostgresService struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
  serviceLog := log.With("service", "PostgresService")

  log.Info("Loading environment variables...")
  postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
  postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
  postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
  postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
  postgresName := utils.GetEnv("POSTGRES_NAME", "launchbase", log)

  dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

  log.Info("Connecting to Postgres...")
  gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
    DisableForeignKeyConstraintWhenMigrating: true,
  })
  if err != nil {
    log.Error("Failed to connect to Postgres", "error", err)
    return nil, fmt.Errorf("Failed to connect to Postgres: %w", err)
  }

  if err := gormDB.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
    log.Error("Failed to enable uuid-ossp extension", "error", err)
    return nil, fmt.Errorf("Failed to enable uuid-ossp extension: %w", err)
  }

  return &PostgresService{db: gormDB, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
  s.log.Info("Auto migrating postgres tables...")
  err := s.db.AutoMigrate(
    &types.User{},
    &types.UserToken{},
    &types.MVPConnection{},
    &types.MVPAnalysis{},
    &types.ReplitProject{},
    &types.GeneratedContent{},
    &types.AISuggestion{},
    &types.Notification{},
    &types.AgentActivity{},
    &types.ChecklistItemState{},
    &types.AICallLog{},
  )
  if err != nil {
    s.log.Error("Auto migration failed for postgres tables", "error", err)
    return err
  }
  s.log.Info("Configuring column defaults for postgres tables...")
  // postgres-only DDL; the BeforeCreate hooks cover drivers without it
  for _, table := range []string{
    "user",
    "user_token",
    "mvp_connection",
    "mvp_analysis",
    "replit_project",
    "generated_content",
    "ai_suggestion",
    "user_notification",
    "agent_activity",
    "checklist_item_state",
    "ai_call_log",
  } {
    if err := s.db.Exec(fmt.Sprintf(
      `ALTER TABLE %q ALTER COLUMN "id" SET DEFAULT uuid_generate_v4()`, table,
    )).Error; err != nil {
      s.log.Warn("Failed to set id default", "table", table, "error", err)
    }
    for _, col := range []string{"created_at", "updated_at"} {
      if err := s.db.Exec(fmt.Sprintf(
        `ALTER TABLE %q ALTER COLUMN %q SET DEFAULT now()`, table, col,
      )).Error; err != nil {
        s.log.Warn("Failed to set timestamp default", "table", table, "column", col, "error", err)
      }
    }
  }
  s.log.Info("Configuring foreign key relationships for postgres tables...")
  if err := s.db.Exec(`
    ALTER TABLE "user_token"
    ADD CONSTRAINT "fk_user_token_user_id"
    FOREIGN KEY ("user_id")
    REFERENCES "user"("id")
    ON DELETE CASCADE
  `).Error; err != nil {
    s.log.Warn("Failed to add fk_user_token_user_id", "error", err)
  }
  if err := s.db.Exec(`
    ALTER TABLE "mvp_analysis"
    ADD CONSTRAINT "fk_mvp_analysis_connection_id"
    FOREIGN KEY ("mvp_connection_id")
    REFERENCES "mvp_connection"("id")
    ON DELETE CASCADE
  `).Error; err != nil {
    s.log.Warn("Failed to add fk_mvp_analysis_connection_id", "error", err)
  }
  return nil
}

func (s *PostgresService) DB() *gorm.DB {
  return s.db
}
