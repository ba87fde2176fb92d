package services

import (
	"context"
	"strings"
	"testing"

	"github.com/launchbase/launchbase-backend/internal/repos"
	"github.com/launchbase/launchbase-backend/internal/types"
)

func TestContentGenerateStoresDraft(t *testing.T) {
	db := testDB(t)
	log := testLogger(t)
	user := seedUser(t, db)
	ai := &stubAIClient{text: "# Headline\nShip faster with Launchbase."}
	svc := NewContentService(log, repos.NewGeneratedContentRepo(db, log), ai, testNotifier(t, db, log))

	content, err := svc.Generate(context.Background(), user.ID, "landing", "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if content.Type != "landing" {
		t.Errorf("type=%q, want landing", content.Type)
	}
	if content.Title != "Landing Page Copy" {
		t.Errorf("title=%q", content.Title)
	}
	if content.Status != types.ContentStatusDraft {
		t.Errorf("status=%q, want draft", content.Status)
	}
	if content.Content != ai.text {
		t.Errorf("content=%q", content.Content)
	}

	if len(ai.requests) != 1 {
		t.Fatalf("AI calls=%d, want 1", len(ai.requests))
	}
	req := ai.requests[0]
	if req.CallType != "content_landing" {
		t.Errorf("call type=%q", req.CallType)
	}
	if req.MaxTokens != 1000 {
		t.Errorf("max tokens=%d, want 1000", req.MaxTokens)
	}
	if !strings.Contains(req.Prompt, "high-converting landing page copy") {
		t.Errorf("prompt missing template text: %q", req.Prompt)
	}
	if strings.Contains(req.Prompt, "Additional context") {
		t.Error("empty custom prompt should not add context")
	}
}

func TestContentGenerateAppendsCustomPrompt(t *testing.T) {
	db := testDB(t)
	log := testLogger(t)
	user := seedUser(t, db)
	ai := &stubAIClient{text: "posts"}
	svc := NewContentService(log, repos.NewGeneratedContentRepo(db, log), ai, testNotifier(t, db, log))

	content, err := svc.Generate(context.Background(), user.ID, "social", "Focus on developer tools")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if content.Prompt != "Focus on developer tools" {
		t.Errorf("stored prompt=%q", content.Prompt)
	}
	if !strings.Contains(ai.requests[0].Prompt, "Additional context: Focus on developer tools") {
		t.Errorf("prompt missing custom context: %q", ai.requests[0].Prompt)
	}
}

func TestContentGenerateUnknownType(t *testing.T) {
	db := testDB(t)
	log := testLogger(t)
	user := seedUser(t, db)
	svc := NewContentService(log, repos.NewGeneratedContentRepo(db, log), &stubAIClient{text: "x"}, testNotifier(t, db, log))

	if _, err := svc.Generate(context.Background(), user.ID, "press-release", ""); err == nil {
		t.Fatal("expected unknown type error")
	}
}

func TestContentListRecentAndMarkUsed(t *testing.T) {
	db := testDB(t)
	log := testLogger(t)
	user := seedUser(t, db)
	ai := &stubAIClient{text: "copy"}
	svc := NewContentService(log, repos.NewGeneratedContentRepo(db, log), ai, testNotifier(t, db, log))

	for _, kind := range []string{"landing", "email", "social", "sales", "landing"} {
		if _, err := svc.Generate(context.Background(), user.ID, kind, ""); err != nil {
			t.Fatalf("Generate %s: %v", kind, err)
		}
	}

	// default limit keeps the list at four entries
	recent, err := svc.ListRecent(context.Background(), user.ID, 0)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(recent) != 4 {
		t.Fatalf("recent=%d, want 4", len(recent))
	}

	if err := svc.MarkUsed(context.Background(), user.ID, recent[0].ID); err != nil {
		t.Fatalf("MarkUsed: %v", err)
	}
	var row types.GeneratedContent
	if err := db.First(&row, "id = ?", recent[0].ID).Error; err != nil {
		t.Fatalf("load content: %v", err)
	}
	if row.Status != types.ContentStatusUsed {
		t.Errorf("status=%q, want used", row.Status)
	}
}
