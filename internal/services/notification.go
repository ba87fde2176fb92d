package services

import (
  "context"
  "fmt"
  "time"

  "github.com/google/uuid"

  redisclient "github.com/launchbase/launchbase-backend/internal/clients/redis"
  "github.com/launchbase/launchbase-backend/internal/logger"
  "github.com/launchbase/launchbase-backend/internal/repos"
  "github.com/launchbase/launchbase-backend/internal/sse"
  "github.com/launchbase/launchbase-backend/internal/types"
)

const defaultNotificationLimit = 50

type NotificationService interface {
  List(ctx context.Context, userID uuid.UUID, limit int) ([]*types.Notification, error)
  MarkRead(ctx context.Context, userID, id uuid.UUID) error
  MarkAllRead(ctx context.Context, userID uuid.UUID) error
  Delete(ctx context.Context, userID, id uuid.UUID) error
  Notify(ctx context.Context, userID uuid.UUID, title, message, notifType, actionURL string) (*types.Notification, error)
  Push(msg sse.SSEMessage)
}

type notificationService struct {
  log           *logger.Logger
  notifications repos.NotificationRepo
  hub           *sse.SSEHub
  bus           redisclient.SSEBus
}

// NewNotificationService wires persistence plus realtime push. bus may be
// nil; the hub then only reaches clients on this instance.
func NewNotificationService(log *logger.Logger, notifications repos.NotificationRepo, hub *sse.SSEHub, bus redisclient.SSEBus) NotificationService {
  return &notificationService{
    log:           log.With("service", "NotificationService"),
    notifications: notifications,
    hub:           hub,
    bus:           bus,
  }
}

func (s *notificationService) List(ctx context.Context, userID uuid.UUID, limit int) ([]*types.Notification, error) {
  if limit <= 0 {
    limit = defaultNotificationLimit
  }
  return s.notifications.GetByUserID(ctx, nil, userID, limit)
}

func (s *notificationService) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
  return s.notifications.MarkRead(ctx, nil, id, userID)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
  return s.notifications.MarkAllRead(ctx, nil, userID)
}

func (s *notificationService) Delete(ctx context.Context, userID, id uuid.UUID) error {
  return s.notifications.FullDeleteByID(ctx, nil, id, userID)
}

// Notify persists the notification and pushes it to the user's SSE channel.
// The push is best-effort; a dropped message never fails the write.
func (s *notificationService) Notify(ctx context.Context, userID uuid.UUID, title, message, notifType, actionURL string) (*types.Notification, error) {
  if notifType == "" {
    notifType = types.NotificationTypeInfo
  }
  row := &types.Notification{
    UserID:    userID,
    Title:     title,
    Message:   message,
    Type:      notifType,
    ActionURL: actionURL,
  }
  created, err := s.notifications.Create(ctx, nil, []*types.Notification{row})
  if err != nil {
    return nil, fmt.Errorf("create notification: %w", err)
  }

  s.Push(sse.SSEMessage{
    Channel: sse.UserChannel(userID),
    Event:   sse.SSEEventNotificationCreated,
    Data:    created[0],
  })
  return created[0], nil
}

// Push routes through the redis bus when configured so every instance's hub
// sees the message; otherwise it broadcasts on the local hub directly.
func (s *notificationService) Push(msg sse.SSEMessage) {
  if s.bus != nil {
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    if err := s.bus.Publish(ctx, msg); err == nil {
      return
    } else {
      s.log.Warn("SSE bus publish failed; falling back to local hub", "error", err)
    }
  }
  s.hub.Broadcast(msg)
}
