package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/launchbase/launchbase-backend/internal/logger"
  "github.com/launchbase/launchbase-backend/internal/types"
)

type AISuggestionRepo interface {
  Create(ctx context.Context, tx *gorm.DB, suggestions []*types.AISuggestion) ([]*types.AISuggestion, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.AISuggestion, error)
  GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.AISuggestion, error)
  GetByUserAndTypes(ctx context.Context, tx *gorm.DB, userID uuid.UUID, suggestionTypes []string) ([]*types.AISuggestion, error)
  UpdateStatus(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID, status string) error
}

type aiSuggestionRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewAISuggestionRepo(db *gorm.DB, baseLog *logger.Logger) AISuggestionRepo {
  repoLog := baseLog.With("repo", "AISuggestionRepo")
  return &aiSuggestionRepo{db: db, log: repoLog}
}

func (r *aiSuggestionRepo) Create(ctx context.Context, tx *gorm.DB, suggestions []*types.AISuggestion) ([]*types.AISuggestion, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(suggestions) == 0 {
    return []*types.AISuggestion{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&suggestions).Error; err != nil {
    return nil, err
  }
  return suggestions, nil
}

func (r *aiSuggestionRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.AISuggestion, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.AISuggestion
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

func (r *aiSuggestionRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.AISuggestion, error) {
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

  var results []*types.AISuggestion
  if err := query.Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *aiSuggestionRepo) GetByUserAndTypes(ctx context.Context, tx *gorm.DB, userID uuid.UUID, suggestionTypes []string) ([]*types.AISuggestion, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.AISuggestion
  if len(suggestionTypes) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("user_id = ? AND type IN ?", userID, suggestionTypes).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *aiSuggestionRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID, status string) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Model(&types.AISuggestion{}).
    Where("id = ? AND user_id = ?", id, userID).
    Update("status", status).Error
}
