package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/launchbase/launchbase-backend/internal/logger"
  "github.com/launchbase/launchbase-backend/internal/types"
)

type MVPConnectionRepo interface {
  Create(ctx context.Context, tx *gorm.DB, connections []*types.MVPConnection) ([]*types.MVPConnection, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.MVPConnection, error)
  GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.MVPConnection, error)
  FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
}

type mvpConnectionRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewMVPConnectionRepo(db *gorm.DB, baseLog *logger.Logger) MVPConnectionRepo {
  repoLog := baseLog.With("repo", "MVPConnectionRepo")
  return &mvpConnectionRepo{db: db, log: repoLog}
}

func (r *mvpConnectionRepo) Create(ctx context.Context, tx *gorm.DB, connections []*types.MVPConnection) ([]*types.MVPConnection, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(connections) == 0 {
    return []*types.MVPConnection{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&connections).Error; err != nil {
    return nil, err
  }
  return connections, nil
}

func (r *mvpConnectionRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.MVPConnection, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.MVPConnection
  if len(ids) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", ids).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *mvpConnectionRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.MVPConnection, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.MVPConnection
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *mvpConnectionRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(ids) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Unscoped().
    Where("id IN ?", ids).
    Delete(&types.MVPConnection{}).Error
}
