package services

import (
  "context"
  "fmt"
  "time"

  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"
  "golang.org/x/crypto/bcrypt"
  "gorm.io/gorm"

  "github.com/launchbase/launchbase-backend/internal/logger"
  "github.com/launchbase/launchbase-backend/internal/normalization"
  "github.com/launchbase/launchbase-backend/internal/repos"
  "github.com/launchbase/launchbase-backend/internal/requestdata"
  "github.com/launchbase/launchbase-backend/internal/types"
  "github.com/launchbase/launchbase-backend/internal/utils"
)

type JWTClaims struct {
  jwt.RegisteredClaims
}

type AuthService interface {
  RegisterUser(ctx context.Context, user *types.User) error
  LoginUser(ctx context.Context, email, password string) (string, string, error)
  RefreshUser(ctx context.Context) (string, string, error)
  LogoutUser(ctx context.Context) error
  SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
  GetAccessTTL() time.Duration
}

type authService struct {
  db            *gorm.DB
  log           *logger.Logger
  userRepo      repos.UserRepo
  userTokenRepo repos.UserTokenRepo
  jwtSecretKey  string
  accessTTL     time.Duration
  refreshTTL    time.Duration
}

func NewAuthService(
  db *gorm.DB,
  log *logger.Logger,
  userRepo repos.UserRepo,
  userTokenRepo repos.UserTokenRepo,
  jwtSecretKey string,
  accessTTL time.Duration,
  refreshTTL time.Duration,
) AuthService {
  serviceLog := log.With("service", "AuthService")
  return &authService{
    db:            db,
    log:           serviceLog,
    userRepo:      userRepo,
    userTokenRepo: userTokenRepo,
    jwtSecretKey:  jwtSecretKey,
    accessTTL:     accessTTL,
    refreshTTL:    refreshTTL,
  }
}

func (as *authService) RegisterUser(ctx context.Context, user *types.User) error {
  utils.NormalizeUserFields(ctx, user)
  if vErr := utils.InputValidation(ctx, "registration", as.userRepo, as.log, user, "", ""); vErr != nil {
    return vErr
  }
  if hErr := utils.HashPassword(ctx, as.log, user); hErr != nil {
    return hErr
  }
  return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    user.ID = uuid.New()
    if _, ucErr := as.userRepo.Create(ctx, tx, []*types.User{user}); ucErr != nil {
      return fmt.Errorf("failed to create user: %w", ucErr)
    }
    return nil
  })
}

func (as *authService) LoginUser(ctx context.Context, email, password string) (string, string, error) {
  email = normalization.ParseInputString(email)

  if vErr := utils.InputValidation(ctx, "login", as.userRepo, as.log, nil, email, password); vErr != nil {
    return "", "", vErr
  }

  users, usErr := as.userRepo.GetByEmails(ctx, nil, []string{email})
  if usErr != nil {
    return "", "", fmt.Errorf("error retrieving user by email: %w", usErr)
  }
  if len(users) == 0 {
    return "", "", ErrInvalidCredentials
  }

  user := users[0]
  if hErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); hErr != nil {
    return "", "", ErrInvalidCredentials
  }

  var accessToken string
  var refreshToken string
  if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    foundTokens, ftErr := as.userTokenRepo.GetByUserIDs(ctx, tx, []uuid.UUID{user.ID})
    if ftErr != nil {
      return fmt.Errorf("failed to check user tokens: %w", ftErr)
    }
    // expired leftovers are swept on login
    var stale []*types.UserToken
    for _, t := range foundTokens {
      if t != nil && t.ExpiresAt.Before(time.Now()) {
        stale = append(stale, t)
      }
    }
    if len(stale) > 0 {
      if dtErr := as.userTokenRepo.FullDeleteByTokens(ctx, tx, stale); dtErr != nil {
        return fmt.Errorf("failed to delete expired user tokens: %w", dtErr)
      }
    }

    tok, genErr := as.generateAccessToken(user)
    if genErr != nil {
      return fmt.Errorf("generate access token error: %w", genErr)
    }
    accessToken = tok
    refreshToken = uuid.New().String()
    userToken := types.UserToken{
      ID:           uuid.New(),
      UserID:       user.ID,
      AccessToken:  accessToken,
      RefreshToken: refreshToken,
      ExpiresAt:    time.Now().Add(as.refreshTTL),
    }
    if _, ctErr := as.userTokenRepo.Create(ctx, tx, []*types.UserToken{&userToken}); ctErr != nil {
      as.log.Warn("Create user token error", "error", ctErr)
      return fmt.Errorf("create user token error: %w", ctErr)
    }
    return nil
  }); err != nil {
    return "", "", err
  }
  return accessToken, refreshToken, nil
}

func (as *authService) RefreshUser(ctx context.Context) (string, string, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil {
    return "", "", fmt.Errorf("no request data found in context")
  }
  if rd.RefreshToken == "" {
    return "", "", fmt.Errorf("refresh token not found in request data")
  }

  var accessToken string
  var newRefreshTokenStr string
  err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    foundTokens, ftErr := as.userTokenRepo.GetByRefreshTokens(ctx, tx, []string{rd.RefreshToken})
    if ftErr != nil {
      as.log.Warn("Error fetching refresh token", "error", ftErr)
      return fmt.Errorf("error fetching refresh token: %w", ftErr)
    }
    if len(foundTokens) == 0 || foundTokens[0] == nil {
      return ErrInvalidToken
    }
    existingToken := foundTokens[0]
    if existingToken.ExpiresAt.Before(time.Now()) {
      if dtErr := as.userTokenRepo.FullDeleteByTokens(ctx, tx, []*types.UserToken{existingToken}); dtErr != nil {
        as.log.Warn("Refresh token expired, error deleting", "error", dtErr)
        return fmt.Errorf("refresh token expired, error deleting: %w", dtErr)
      }
      return ErrInvalidToken
    }
    users, uErr := as.userRepo.GetByIDs(ctx, tx, []uuid.UUID{existingToken.UserID})
    if uErr != nil {
      return fmt.Errorf("failed to load user for refresh: %w", uErr)
    }
    if len(users) == 0 {
      return fmt.Errorf("no user found for the given refresh token")
    }
    user := users[0]

    tok, genErr := as.generateAccessToken(user)
    if genErr != nil {
      return fmt.Errorf("failed to generate new access token: %w", genErr)
    }
    accessToken = tok
    newRefreshTokenStr = uuid.New().String()
    newUserToken := types.UserToken{
      ID:           uuid.New(),
      UserID:       user.ID,
      AccessToken:  tok,
      RefreshToken: newRefreshTokenStr,
      ExpiresAt:    time.Now().Add(as.refreshTTL),
    }
    if _, cErr := as.userTokenRepo.Create(ctx, tx, []*types.UserToken{&newUserToken}); cErr != nil {
      return fmt.Errorf("failed to create new user token: %w", cErr)
    }
    if dErr := as.userTokenRepo.FullDeleteByTokens(ctx, tx, []*types.UserToken{existingToken}); dErr != nil {
      return fmt.Errorf("failed to remove old refresh token: %w", dErr)
    }
    return nil
  })
  if err != nil {
    return "", "", err
  }
  return accessToken, newRefreshTokenStr, nil
}

func (as *authService) LogoutUser(ctx context.Context) error {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil {
    return fmt.Errorf("no request data found in context")
  }
  if rd.TokenString == "" {
    return fmt.Errorf("token string in request data empty")
  }
  return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    foundTokens, ftErr := as.userTokenRepo.GetByAccessTokens(ctx, tx, []string{rd.TokenString})
    if ftErr != nil {
      return fmt.Errorf("error finding user token from token string: %w", ftErr)
    }
    if len(foundTokens) == 0 {
      return nil
    }
    if tdErr := as.userTokenRepo.FullDeleteByTokens(ctx, tx, foundTokens); tdErr != nil {
      return fmt.Errorf("error deleting user token: %w", tdErr)
    }
    return nil
  })
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
  claims := JWTClaims{
    RegisteredClaims: jwt.RegisteredClaims{
      Subject:   user.ID.String(),
      ExpiresAt: jwt.NewNumericDate(time.Now().Add(as.accessTTL)),
      IssuedAt:  jwt.NewNumericDate(time.Now()),
    },
  }
  token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
  return token.SignedString([]byte(as.jwtSecretKey))
}

// SetContextFromToken verifies the bearer token and loads user identity
// into request data for downstream handlers.
func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
  if tokenString == "" {
    return ctx, nil
  }
  parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
    return []byte(as.jwtSecretKey), nil
  })
  if err != nil {
    return ctx, fmt.Errorf("failed to parse token: %w", err)
  }
  claims, ok := parsedToken.Claims.(*JWTClaims)
  if !ok || !parsedToken.Valid {
    return ctx, ErrInvalidToken
  }
  userID, err := uuid.Parse(claims.Subject)
  if err != nil {
    return ctx, fmt.Errorf("invalid user id in token: %w", err)
  }

  var refreshTokenStr string
  foundTokens, ftErr := as.userTokenRepo.GetByAccessTokens(ctx, nil, []string{tokenString})
  if ftErr != nil {
    as.log.Warn("Error fetching user token by access token", "error", ftErr)
    return ctx, fmt.Errorf("failed to fetch user token by access token: %w", ftErr)
  }
  if len(foundTokens) == 0 {
    return ctx, ErrInvalidToken
  }
  refreshTokenStr = foundTokens[0].RefreshToken

  rd := &requestdata.RequestData{
    TokenString:  tokenString,
    RefreshToken: refreshTokenStr,
    UserID:       userID,
  }
  return requestdata.WithRequestData(ctx, rd), nil
}

func (as *authService) GetAccessTTL() time.Duration {
  return as.accessTTL
}
