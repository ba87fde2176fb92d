package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/launchbase/launchbase-backend/internal/logger"
  "github.com/launchbase/launchbase-backend/internal/types"
)

type NotificationRepo interface {
  Create(ctx context.Context, tx *gorm.DB, notifications []*types.Notification) ([]*types.Notification, error)
  GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.Notification, error)
  MarkRead(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) error
  MarkAllRead(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
  FullDeleteByID(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) error
}

type notificationRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewNotificationRepo(db *gorm.DB, baseLog *logger.Logger) NotificationRepo {
  repoLog := baseLog.With("repo", "NotificationRepo")
  return &notificationRepo{db: db, log: repoLog}
}

func (r *notificationRepo) Create(ctx context.Context, tx *gorm.DB, notifications []*types.Notification) ([]*types.Notification, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(notifications) == 0 {
    return []*types.Notification{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&notifications).Error; err != nil {
    return nil, err
  }
  return notifications, nil
}

func (r *notificationRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.Notification, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  query := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Order("created_at DESC")
  if limit > 0 {
    query = query.Limit(limit)
  }

  var results []*types.Notification
  if err := query.Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *notificationRepo) MarkRead(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Model(&types.Notification{}).
    Where("id = ? AND user_id = ?", id, userID).
    Update("read_status", 1).Error
}

func (r *notificationRepo) MarkAllRead(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Model(&types.Notification{}).
    Where("user_id = ? AND read_status = 0", userID).
    Update("read_status", 1).Error
}

func (r *notificationRepo) FullDeleteByID(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Unscoped().
    Where("id = ? AND user_id = ?", id, userID).
    Delete(&types.Notification{}).Error
}
