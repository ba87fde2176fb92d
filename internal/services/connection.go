package services

import (
  "context"
  "fmt"
  "net/url"
  "strings"
  "time"

  "github.com/google/uuid"

  "github.com/launchbase/launchbase-backend/internal/logger"
  "github.com/launchbase/launchbase-backend/internal/normalization"
  "github.com/launchbase/launchbase-backend/internal/repos"
  "github.com/launchbase/launchbase-backend/internal/types"
)

// ConnectInput carries one connect request. Which fields are required
// depends on ConnectionType.
type ConnectInput struct {
  ConnectionType     string
  Platform           string
  ConnectionURL      string
  ProjectName        string
  ProjectDescription string
}

type ConnectionService interface {
  Connect(ctx context.Context, userID uuid.UUID, input ConnectInput) (*types.MVPConnection, error)
  List(ctx context.Context, userID uuid.UUID) ([]*types.MVPConnection, error)
  Disconnect(ctx context.Context, userID, id uuid.UUID) error
}

type connectionService struct {
  log         *logger.Logger
  connections repos.MVPConnectionRepo
  analyses    repos.MVPAnalysisRepo
  analysis    AnalysisService
}

func NewConnectionService(log *logger.Logger, connections repos.MVPConnectionRepo, analyses repos.MVPAnalysisRepo, analysis AnalysisService) ConnectionService {
  return &connectionService{
    log:         log.With("service", "ConnectionService"),
    connections: connections,
    analyses:    analyses,
    analysis:    analysis,
  }
}

func validateHTTPURL(raw string) error {
  parsed, err := url.Parse(strings.TrimSpace(raw))
  if err != nil {
    return fmt.Errorf("invalid url: %w", err)
  }
  if parsed.Scheme != "http" && parsed.Scheme != "https" {
    return fmt.Errorf("url must use http or https")
  }
  if parsed.Host == "" {
    return fmt.Errorf("url must include a host")
  }
  return nil
}

func (s *connectionService) validate(input *ConnectInput) error {
  switch input.ConnectionType {
  case types.ConnectionTypeIntegration:
    if normalization.ParseInputString(input.Platform) == "" {
      return fmt.Errorf("platform required for integration connections")
    }
    if err := validateHTTPURL(input.ConnectionURL); err != nil {
      return err
    }
  case types.ConnectionTypeURL:
    if err := validateHTTPURL(input.ConnectionURL); err != nil {
      return err
    }
  case types.ConnectionTypeManual:
    if normalization.TrimInputString(input.ProjectName) == "" {
      return fmt.Errorf("project name required for manual connections")
    }
    if normalization.TrimInputString(input.ProjectDescription) == "" {
      return fmt.Errorf("project description required for manual connections")
    }
  default:
    return fmt.Errorf("unknown connection type %q", input.ConnectionType)
  }
  return nil
}

// Connect validates, persists the connection as "connected", and kicks off
// the go-to-market analysis in the background. Analysis failure never undoes
// the connection; the analysis row itself records the failure.
func (s *connectionService) Connect(ctx context.Context, userID uuid.UUID, input ConnectInput) (*types.MVPConnection, error) {
  input.ConnectionType = normalization.ParseInputString(input.ConnectionType)
  if err := s.validate(&input); err != nil {
    return nil, err
  }

  row := &types.MVPConnection{
    UserID:             userID,
    ConnectionType:     input.ConnectionType,
    Platform:           normalization.ParseInputString(input.Platform),
    ConnectionURL:      strings.TrimSpace(input.ConnectionURL),
    ProjectName:        normalization.TrimInputString(input.ProjectName),
    ProjectDescription: normalization.TrimInputString(input.ProjectDescription),
    Status:             types.ConnectionStatusConnected,
  }
  created, err := s.connections.Create(ctx, nil, []*types.MVPConnection{row})
  if err != nil {
    return nil, fmt.Errorf("create connection: %w", err)
  }
  connection := created[0]

  // Detached from the request context: the caller gets its response while
  // the model call runs.
  go func(conn types.MVPConnection) {
    bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
    defer cancel()
    if _, err := s.analysis.Analyze(bgCtx, &conn); err != nil {
      s.log.Warn("Background analysis failed", "connectionID", conn.ID, "error", err)
    }
  }(*connection)

  return connection, nil
}

func (s *connectionService) List(ctx context.Context, userID uuid.UUID) ([]*types.MVPConnection, error) {
  return s.connections.GetByUserID(ctx, nil, userID)
}

// Disconnect removes the connection and its analyses. Only the owner can
// delete.
func (s *connectionService) Disconnect(ctx context.Context, userID, id uuid.UUID) error {
  found, err := s.connections.GetByIDs(ctx, nil, []uuid.UUID{id})
  if err != nil {
    return err
  }
  if len(found) == 0 || found[0].UserID != userID {
    return ErrNotFound
  }

  analyses, err := s.analyses.GetByConnectionIDs(ctx, nil, []uuid.UUID{id})
  if err != nil {
    return err
  }
  if len(analyses) > 0 {
    ids := make([]uuid.UUID, 0, len(analyses))
    for _, a := range analyses {
      ids = append(ids, a.ID)
    }
    if err := s.analyses.FullDeleteByIDs(ctx, nil, ids); err != nil {
      return err
    }
  }

  return s.connections.FullDeleteByIDs(ctx, nil, []uuid.UUID{id})
}
