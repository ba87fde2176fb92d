package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/launchbase/launchbase-backend/internal/insights"
	"github.com/launchbase/launchbase-backend/internal/repos"
	"github.com/launchbase/launchbase-backend/internal/types"
)

func TestReplitConnectPersistsDetections(t *testing.T) {
	db := testDB(t)
	log := testLogger(t)
	user := seedUser(t, db)

	scraper := &stubScraper{
		meta: insights.PageMetadata{
			Title:       "Launch Tracker",
			Description: "track your launch",
			Favicon:     "/favicon.ico",
		},
		text: "a react app with express serving /api/users and /api/orders in typescript",
	}
	svc := NewReplitService(log, repos.NewReplitProjectRepo(db, log), scraper, testNotifier(t, db, log))

	project, err := svc.Connect(context.Background(), user.ID, "https://launch.replit.app")
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}

	if project.Status != types.ReplitStatusLive {
		t.Errorf("status=%q, want live", project.Status)
	}
	if project.Name != "Launch Tracker" {
		t.Errorf("name=%q, want scraped title", project.Name)
	}

	var stack []string
	if err := json.Unmarshal(project.TechStack, &stack); err != nil {
		t.Fatalf("tech stack json: %v", err)
	}
	found := false
	for _, s := range stack {
		if s == "React" {
			found = true
		}
	}
	if !found {
		t.Errorf("tech stack %v should include React", stack)
	}

	var endpoints []string
	if err := json.Unmarshal(project.Endpoints, &endpoints); err != nil {
		t.Fatalf("endpoints json: %v", err)
	}
	if len(endpoints) != 2 {
		t.Errorf("endpoints=%v, want 2", endpoints)
	}

	var meta types.ReplitMetadata
	if err := json.Unmarshal(project.Metadata, &meta); err != nil {
		t.Fatalf("metadata json: %v", err)
	}
	if meta.Framework != "React" {
		t.Errorf("framework=%q, want React", meta.Framework)
	}
	if meta.LastDeployed == "" {
		t.Error("metadata should stamp last deployed at connect time")
	}
	if _, err := time.Parse(time.RFC3339, meta.LastDeployed); err != nil {
		t.Errorf("last deployed %q is not RFC 3339: %v", meta.LastDeployed, err)
	}

	if !strings.Contains(project.TrackingCode, project.ID.String()) {
		t.Error("tracking code should embed the project id")
	}
}

func TestReplitConnectDefaultsEmptyDescription(t *testing.T) {
	db := testDB(t)
	log := testLogger(t)
	user := seedUser(t, db)

	scraper := &stubScraper{
		meta: insights.PageMetadata{Title: "Bare App"},
		text: "nothing descriptive here",
	}
	svc := NewReplitService(log, repos.NewReplitProjectRepo(db, log), scraper, testNotifier(t, db, log))

	project, err := svc.Connect(context.Background(), user.ID, "https://bare.replit.app")
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if project.Description != "Replit application" {
		t.Errorf("description=%q, want fallback", project.Description)
	}
}

func TestReplitConnectRejectsInvalidURL(t *testing.T) {
	db := testDB(t)
	log := testLogger(t)
	user := seedUser(t, db)

	svc := NewReplitService(log, repos.NewReplitProjectRepo(db, log), &stubScraper{}, testNotifier(t, db, log))
	if _, err := svc.Connect(context.Background(), user.ID, "https://example.com"); err == nil {
		t.Fatal("expected invalid URL error")
	}
}

func TestReplitConnectDuplicateURL(t *testing.T) {
	db := testDB(t)
	log := testLogger(t)
	user := seedUser(t, db)

	scraper := &stubScraper{text: "plain page"}
	repo := repos.NewReplitProjectRepo(db, log)
	svc := NewReplitService(log, repo, scraper, testNotifier(t, db, log))

	if _, err := svc.Connect(context.Background(), user.ID, "https://launch.replit.app"); err != nil {
		t.Fatalf("first Connect: %v", err)
	}
	if _, err := svc.Connect(context.Background(), user.ID, "https://launch.replit.app"); !errors.Is(err, ErrDuplicateProject) {
		t.Fatalf("second Connect err=%v, want ErrDuplicateProject", err)
	}

	count, err := repo.CountByUserAndURL(context.Background(), nil, user.ID, "https://launch.replit.app")
	if err != nil {
		t.Fatalf("CountByUserAndURL: %v", err)
	}
	if count != 1 {
		t.Fatalf("count=%d, want exactly 1 project row", count)
	}
}

func TestReplitConnectScrapeFailureStoresErrorStatus(t *testing.T) {
	db := testDB(t)
	log := testLogger(t)
	user := seedUser(t, db)

	scraper := &stubScraper{err: errors.New("connection refused")}
	svc := NewReplitService(log, repos.NewReplitProjectRepo(db, log), scraper, testNotifier(t, db, log))

	project, err := svc.Connect(context.Background(), user.ID, "https://down.replit.app")
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if project.Status != types.ReplitStatusError {
		t.Errorf("status=%q, want error", project.Status)
	}

	var stack []string
	if err := json.Unmarshal(project.TechStack, &stack); err != nil {
		t.Fatalf("tech stack json: %v", err)
	}
	if len(stack) != 1 || stack[0] != "Web Application" {
		t.Errorf("stack=%v, want fallback", stack)
	}
}

func TestReplitDisconnect(t *testing.T) {
	db := testDB(t)
	log := testLogger(t)
	user := seedUser(t, db)

	svc := NewReplitService(log, repos.NewReplitProjectRepo(db, log), &stubScraper{text: "x"}, testNotifier(t, db, log))
	project, err := svc.Connect(context.Background(), user.ID, "https://launch.replit.app")
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}

	if err := svc.Disconnect(context.Background(), user.ID, project.ID); err != nil {
		t.Fatalf("Disconnect: %v", err)
	}
	listed, err := svc.List(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("listed=%v, want empty", listed)
	}
}
