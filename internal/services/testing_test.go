package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/launchbase/launchbase-backend/internal/insights"
	"github.com/launchbase/launchbase-backend/internal/logger"
	"github.com/launchbase/launchbase-backend/internal/repos"
	"github.com/launchbase/launchbase-backend/internal/sse"
	"github.com/launchbase/launchbase-backend/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger init: %v", err)
	}
	return log
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
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
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB) *types.User {
	t.Helper()
	user := &types.User{
		ID:        uuid.New(),
		Email:     "founder@example.com",
		Password:  "not-a-real-hash",
		FirstName: "pat",
		LastName:  "founder",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

// stubAIClient satisfies AIClient with a canned response per call.
type stubAIClient struct {
	text     string
	err      error
	requests []GenerateTextRequest
}

func (s *stubAIClient) GenerateText(ctx context.Context, req GenerateTextRequest) (string, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

// stubScraper satisfies PageScraper without any network I/O.
type stubScraper struct {
	meta insights.PageMetadata
	text string
	err  error
}

func (s *stubScraper) Scrape(ctx context.Context, url string) (insights.PageMetadata, string, error) {
	if s.err != nil {
		return insights.PageMetadata{}, "", s.err
	}
	return s.meta, s.text, nil
}

func testNotifier(t *testing.T, db *gorm.DB, log *logger.Logger) NotificationService {
	t.Helper()
	hub := sse.NewSSEHub(log)
	return NewNotificationService(log, repos.NewNotificationRepo(db, log), hub, nil)
}
