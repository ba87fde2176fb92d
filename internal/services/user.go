package services

import (
  "context"
  "fmt"

  "github.com/google/uuid"

  "github.com/launchbase/launchbase-backend/internal/logger"
  "github.com/launchbase/launchbase-backend/internal/repos"
  "github.com/launchbase/launchbase-backend/internal/requestdata"
  "github.com/launchbase/launchbase-backend/internal/types"
)

type UserService interface {
  GetMe(ctx context.Context) (*types.User, error)
  GetByID(ctx context.Context, id uuid.UUID) (*types.User, error)
}

type userService struct {
  log      *logger.Logger
  userRepo repos.UserRepo
}

func NewUserService(log *logger.Logger, userRepo repos.UserRepo) UserService {
  return &userService{
    log:      log.With("service", "UserService"),
    userRepo: userRepo,
  }
}

func (s *userService) GetMe(ctx context.Context) (*types.User, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return nil, fmt.Errorf("no authenticated user in context")
  }
  return s.GetByID(ctx, rd.UserID)
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*types.User, error) {
  users, err := s.userRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
  if err != nil {
    return nil, err
  }
  if len(users) == 0 {
    return nil, ErrNotFound
  }
  return users[0], nil
}
