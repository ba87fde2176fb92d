package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"

  "github.com/launchbase/launchbase-backend/internal/logger"
  "github.com/launchbase/launchbase-backend/internal/types"
)

type ChecklistStateRepo interface {
  Upsert(ctx context.Context, tx *gorm.DB, state *types.ChecklistItemState) error
  GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ChecklistItemState, error)
  GetByUserAndItem(ctx context.Context, tx *gorm.DB, userID uuid.UUID, itemID string) (*types.ChecklistItemState, error)
}

type checklistStateRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewChecklistStateRepo(db *gorm.DB, baseLog *logger.Logger) ChecklistStateRepo {
  repoLog := baseLog.With("repo", "ChecklistStateRepo")
  return &checklistStateRepo{db: db, log: repoLog}
}

func (r *checklistStateRepo) Upsert(ctx context.Context, tx *gorm.DB, state *types.ChecklistItemState) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Clauses(clause.OnConflict{
      Columns:   []clause.Column{{Name: "user_id"}, {Name: "item_id"}},
      DoUpdates: clause.AssignmentColumns([]string{"completed", "updated_at"}),
    }).
    Create(state).Error
}

func (r *checklistStateRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ChecklistItemState, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.ChecklistItemState
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *checklistStateRepo) GetByUserAndItem(ctx context.Context, tx *gorm.DB, userID uuid.UUID, itemID string) (*types.ChecklistItemState, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.ChecklistItemState
  if err := transaction.WithContext(ctx).
    Where("user_id = ? AND item_id = ?", userID, itemID).
    Limit(1).
    Find(&results).Error; err != nil {
    return nil, err
  }
  if len(results) == 0 {
    return nil, nil
  }
  return results[0], nil
}
