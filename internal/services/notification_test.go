package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/launchbase/launchbase-backend/internal/types"
)

func newNotificationFixture(t *testing.T) (NotificationService, *gorm.DB, uuid.UUID) {
	t.Helper()
	db := testDB(t)
	log := testLogger(t)
	user := seedUser(t, db)
	return testNotifier(t, db, log), db, user.ID
}

func TestNotifyPersistsNotification(t *testing.T) {
	svc, _, userID := newNotificationFixture(t)

	created, err := svc.Notify(context.Background(), userID, "Analysis complete", "Your GTM analysis is ready.", types.NotificationTypeSuccess, "/dashboard")
	if err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("notification missing id")
	}
	if created.ReadStatus != 0 {
		t.Error("new notification should be unread")
	}

	list, err := svc.List(context.Background(), userID, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("notifications=%d, want 1", len(list))
	}
	if list[0].Title != "Analysis complete" || list[0].ActionURL != "/dashboard" {
		t.Errorf("unexpected notification %+v", list[0])
	}
}

func TestNotifyDefaultsTypeToInfo(t *testing.T) {
	svc, _, userID := newNotificationFixture(t)

	created, err := svc.Notify(context.Background(), userID, "Heads up", "Something happened.", "", "")
	if err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if created.Type != types.NotificationTypeInfo {
		t.Errorf("type=%q, want info", created.Type)
	}
}

func TestMarkReadAndMarkAllRead(t *testing.T) {
	svc, db, userID := newNotificationFixture(t)

	first, err := svc.Notify(context.Background(), userID, "One", "first", "", "")
	if err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if _, err := svc.Notify(context.Background(), userID, "Two", "second", "", ""); err != nil {
		t.Fatalf("Notify: %v", err)
	}

	if err := svc.MarkRead(context.Background(), userID, first.ID); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	var unread int64
	if err := db.Model(&types.Notification{}).Where("user_id = ? AND read_status = ?", userID, 0).Count(&unread).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if unread != 1 {
		t.Errorf("unread=%d, want 1", unread)
	}

	if err := svc.MarkAllRead(context.Background(), userID); err != nil {
		t.Fatalf("MarkAllRead: %v", err)
	}
	if err := db.Model(&types.Notification{}).Where("user_id = ? AND read_status = ?", userID, 0).Count(&unread).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if unread != 0 {
		t.Errorf("unread=%d, want 0", unread)
	}
}

func TestDeleteNotification(t *testing.T) {
	svc, db, userID := newNotificationFixture(t)

	created, err := svc.Notify(context.Background(), userID, "Gone soon", "delete me", "", "")
	if err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if err := svc.Delete(context.Background(), userID, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var count int64
	if err := db.Model(&types.Notification{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("notifications=%d, want 0", count)
	}
}
