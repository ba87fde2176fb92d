package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/launchbase/launchbase-backend/internal/repos"
)

func newChecklistFixture(t *testing.T) (ChecklistService, uuid.UUID) {
	db := testDB(t)
	log := testLogger(t)
	user := seedUser(t, db)
	svc := NewChecklistService(log, repos.NewChecklistStateRepo(db, log))
	return svc, user.ID
}

func TestChecklistDefaults(t *testing.T) {
	svc, userID := newChecklistFixture(t)

	progress, err := svc.Progress(context.Background(), userID)
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}

	if len(progress.Sections) != 6 {
		t.Fatalf("sections=%d, want 6", len(progress.Sections))
	}
	for _, section := range progress.Sections {
		if len(section.Items) != 5 {
			t.Errorf("section %s items=%d, want 5", section.ID, len(section.Items))
		}
	}

	// 11 of 30 items default to completed
	if progress.OverallProgress != 37 {
		t.Errorf("overall=%d, want 37", progress.OverallProgress)
	}
	if progress.CriticalRemaining != 7 {
		t.Errorf("critical remaining=%d, want 7", progress.CriticalRemaining)
	}
	if progress.ReadyToLaunch {
		t.Error("fresh checklist should not be launch-ready")
	}

	sectionProgress := map[string]int{}
	for _, s := range progress.Sections {
		sectionProgress[s.ID] = s.Progress
	}
	wantSections := map[string]int{
		"product":   60,
		"legal":     40,
		"marketing": 60,
		"sales":     40,
		"analytics": 20,
		"launch":    0,
	}
	for id, want := range wantSections {
		if sectionProgress[id] != want {
			t.Errorf("section %s progress=%d, want %d", id, sectionProgress[id], want)
		}
	}
}

func TestChecklistToggle(t *testing.T) {
	svc, userID := newChecklistFixture(t)

	progress, err := svc.Toggle(context.Background(), userID, "bugs-fixed")
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if got := itemCompleted(progress, "bugs-fixed"); !got {
		t.Error("bugs-fixed should be completed after toggle")
	}
	if progress.OverallProgress != 40 {
		t.Errorf("overall=%d, want 40 after one extra item", progress.OverallProgress)
	}
	if progress.CriticalRemaining != 6 {
		t.Errorf("critical remaining=%d, want 6", progress.CriticalRemaining)
	}

	// toggling again flips it back
	progress, err = svc.Toggle(context.Background(), userID, "bugs-fixed")
	if err != nil {
		t.Fatalf("second Toggle: %v", err)
	}
	if itemCompleted(progress, "bugs-fixed") {
		t.Error("bugs-fixed should be unchecked after second toggle")
	}
	if progress.CriticalRemaining != 7 {
		t.Errorf("critical remaining=%d, want 7 again", progress.CriticalRemaining)
	}
}

func TestChecklistToggleDefaultCompletedItem(t *testing.T) {
	svc, userID := newChecklistFixture(t)

	// default-completed items can be unchecked; the stored state wins
	progress, err := svc.Toggle(context.Background(), userID, "mvp-complete")
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if itemCompleted(progress, "mvp-complete") {
		t.Error("mvp-complete should be unchecked after toggling the default")
	}
	if progress.CriticalRemaining != 8 {
		t.Errorf("critical remaining=%d, want 8", progress.CriticalRemaining)
	}
}

func TestChecklistToggleUnknownItem(t *testing.T) {
	svc, userID := newChecklistFixture(t)
	if _, err := svc.Toggle(context.Background(), userID, "does-not-exist"); err == nil {
		t.Fatal("expected unknown item error")
	}
}

func itemCompleted(progress *ChecklistProgress, itemID string) bool {
	for _, section := range progress.Sections {
		for _, item := range section.Items {
			if item.ID == itemID {
				return item.Completed
			}
		}
	}
	return false
}
