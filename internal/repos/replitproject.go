package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/launchbase/launchbase-backend/internal/logger"
  "github.com/launchbase/launchbase-backend/internal/types"
)

type ReplitProjectRepo interface {
  Create(ctx context.Context, tx *gorm.DB, projects []*types.ReplitProject) ([]*types.ReplitProject, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.ReplitProject, error)
  GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ReplitProject, error)
  CountByUserAndURL(ctx context.Context, tx *gorm.DB, userID uuid.UUID, url string) (int64, error)
  FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
}

type replitProjectRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewReplitProjectRepo(db *gorm.DB, baseLog *logger.Logger) ReplitProjectRepo {
  repoLog := baseLog.With("repo", "ReplitProjectRepo")
  return &replitProjectRepo{db: db, log: repoLog}
}

func (r *replitProjectRepo) Create(ctx context.Context, tx *gorm.DB, projects []*types.ReplitProject) ([]*types.ReplitProject, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(projects) == 0 {
    return []*types.ReplitProject{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&projects).Error; err != nil {
    return nil, err
  }
  return projects, nil
}

func (r *replitProjectRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.ReplitProject, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.ReplitProject
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

func (r *replitProjectRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ReplitProject, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.ReplitProject
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Order("connected_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *replitProjectRepo) CountByUserAndURL(ctx context.Context, tx *gorm.DB, userID uuid.UUID, url string) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.ReplitProject{}).
    Where("user_id = ? AND url = ?", userID, url).
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}

func (r *replitProjectRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
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
    Delete(&types.ReplitProject{}).Error
}
