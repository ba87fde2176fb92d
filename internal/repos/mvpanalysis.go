package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/launchbase/launchbase-backend/internal/logger"
  "github.com/launchbase/launchbase-backend/internal/types"
)

type MVPAnalysisRepo interface {
  Create(ctx context.Context, tx *gorm.DB, analyses []*types.MVPAnalysis) ([]*types.MVPAnalysis, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.MVPAnalysis, error)
  GetByConnectionIDs(ctx context.Context, tx *gorm.DB, connectionIDs []uuid.UUID) ([]*types.MVPAnalysis, error)
  GetLatestByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.MVPAnalysis, error)
  Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error
  FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
}

type mvpAnalysisRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewMVPAnalysisRepo(db *gorm.DB, baseLog *logger.Logger) MVPAnalysisRepo {
  repoLog := baseLog.With("repo", "MVPAnalysisRepo")
  return &mvpAnalysisRepo{db: db, log: repoLog}
}

func (r *mvpAnalysisRepo) Create(ctx context.Context, tx *gorm.DB, analyses []*types.MVPAnalysis) ([]*types.MVPAnalysis, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(analyses) == 0 {
    return []*types.MVPAnalysis{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&analyses).Error; err != nil {
    return nil, err
  }
  return analyses, nil
}

func (r *mvpAnalysisRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.MVPAnalysis, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.MVPAnalysis
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

func (r *mvpAnalysisRepo) GetByConnectionIDs(ctx context.Context, tx *gorm.DB, connectionIDs []uuid.UUID) ([]*types.MVPAnalysis, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.MVPAnalysis
  if len(connectionIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("mvp_connection_id IN ?", connectionIDs).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

// GetLatestByUserID resolves the "latest analysis" view: last write wins by
// timestamp ordering at read time. Returns nil when the user has none.
func (r *mvpAnalysisRepo) GetLatestByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.MVPAnalysis, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.MVPAnalysis
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Order("created_at DESC").
    Limit(1).
    Find(&results).Error; err != nil {
    return nil, err
  }
  if len(results) == 0 {
    return nil, nil
  }
  return results[0], nil
}

func (r *mvpAnalysisRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(updates) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Model(&types.MVPAnalysis{}).
    Where("id = ?", id).
    Updates(updates).Error
}

func (r *mvpAnalysisRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
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
    Delete(&types.MVPAnalysis{}).Error
}
