package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/launchbase/launchbase-backend/internal/logger"
  "github.com/launchbase/launchbase-backend/internal/types"
)

type GeneratedContentRepo interface {
  Create(ctx context.Context, tx *gorm.DB, contents []*types.GeneratedContent) ([]*types.GeneratedContent, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.GeneratedContent, error)
  GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.GeneratedContent, error)
  UpdateStatus(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID, status string) error
}

type generatedContentRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewGeneratedContentRepo(db *gorm.DB, baseLog *logger.Logger) GeneratedContentRepo {
  repoLog := baseLog.With("repo", "GeneratedContentRepo")
  return &generatedContentRepo{db: db, log: repoLog}
}

func (r *generatedContentRepo) Create(ctx context.Context, tx *gorm.DB, contents []*types.GeneratedContent) ([]*types.GeneratedContent, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(contents) == 0 {
    return []*types.GeneratedContent{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&contents).Error; err != nil {
    return nil, err
  }
  return contents, nil
}

func (r *generatedContentRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.GeneratedContent, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.GeneratedContent
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

func (r *generatedContentRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.GeneratedContent, error) {
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

  var results []*types.GeneratedContent
  if err := query.Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *generatedContentRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID, status string) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Model(&types.GeneratedContent{}).
    Where("id = ? AND user_id = ?", id, userID).
    Update("status", status).Error
}
