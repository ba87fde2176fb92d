package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/launchbase/launchbase-backend/internal/logger"
  "github.com/launchbase/launchbase-backend/internal/types"
)

type UserTokenRepo interface {
  Create(ctx context.Context, tx *gorm.DB, tokens []*types.UserToken) ([]*types.UserToken, error)
  GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.UserToken, error)
  GetByAccessTokens(ctx context.Context, tx *gorm.DB, accessTokens []string) ([]*types.UserToken, error)
  GetByRefreshTokens(ctx context.Context, tx *gorm.DB, refreshTokens []string) ([]*types.UserToken, error)
  FullDeleteByTokens(ctx context.Context, tx *gorm.DB, tokens []*types.UserToken) error
}

type userTokenRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewUserTokenRepo(db *gorm.DB, baseLog *logger.Logger) UserTokenRepo {
  repoLog := baseLog.With("repo", "UserTokenRepo")
  return &userTokenRepo{db: db, log: repoLog}
}

func (r *userTokenRepo) Create(ctx context.Context, tx *gorm.DB, tokens []*types.UserToken) ([]*types.UserToken, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(tokens) == 0 {
    return []*types.UserToken{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&tokens).Error; err != nil {
    return nil, err
  }
  return tokens, nil
}

func (r *userTokenRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.UserToken, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.UserToken
  if len(userIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("user_id IN ?", userIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *userTokenRepo) GetByAccessTokens(ctx context.Context, tx *gorm.DB, accessTokens []string) ([]*types.UserToken, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.UserToken
  if len(accessTokens) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("access_token IN ?", accessTokens).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *userTokenRepo) GetByRefreshTokens(ctx context.Context, tx *gorm.DB, refreshTokens []string) ([]*types.UserToken, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.UserToken
  if len(refreshTokens) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("refresh_token IN ?", refreshTokens).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *userTokenRepo) FullDeleteByTokens(ctx context.Context, tx *gorm.DB, tokens []*types.UserToken) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(tokens) == 0 {
    return nil
  }

  ids := make([]uuid.UUID, 0, len(tokens))
  for _, t := range tokens {
    if t != nil {
      ids = append(ids, t.ID)
    }
  }
  if len(ids) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Unscoped().
    Where("id IN ?", ids).
    Delete(&types.UserToken{}).Error
}
