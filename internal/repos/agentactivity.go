package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/launchbase/launchbase-backend/internal/logger"
  "github.com/launchbase/launchbase-backend/internal/types"
)

type AgentActivityRepo interface {
  Create(ctx context.Context, tx *gorm.DB, activities []*types.AgentActivity) ([]*types.AgentActivity, error)
  GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.AgentActivity, error)
}

type agentActivityRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewAgentActivityRepo(db *gorm.DB, baseLog *logger.Logger) AgentActivityRepo {
  repoLog := baseLog.With("repo", "AgentActivityRepo")
  return &agentActivityRepo{db: db, log: repoLog}
}

func (r *agentActivityRepo) Create(ctx context.Context, tx *gorm.DB, activities []*types.AgentActivity) ([]*types.AgentActivity, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(activities) == 0 {
    return []*types.AgentActivity{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&activities).Error; err != nil {
    return nil, err
  }
  return activities, nil
}

func (r *agentActivityRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.AgentActivity, error) {
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

  var results []*types.AgentActivity
  if err := query.Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
