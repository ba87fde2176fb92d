package services

import (
  "context"
  "encoding/json"
  "errors"
  "fmt"
  "strings"
  "time"

  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"

  "github.com/launchbase/launchbase-backend/internal/insights"
  "github.com/launchbase/launchbase-backend/internal/logger"
  "github.com/launchbase/launchbase-backend/internal/repos"
  "github.com/launchbase/launchbase-backend/internal/sse"
  "github.com/launchbase/launchbase-backend/internal/types"
)

type ReplitService interface {
  Connect(ctx context.Context, userID uuid.UUID, projectURL string) (*types.ReplitProject, error)
  List(ctx context.Context, userID uuid.UUID) ([]*types.ReplitProject, error)
  Disconnect(ctx context.Context, userID, id uuid.UUID) error
}

type replitService struct {
  log           *logger.Logger
  projects      repos.ReplitProjectRepo
  scraper       PageScraper
  notifications NotificationService
}

func NewReplitService(log *logger.Logger, projects repos.ReplitProjectRepo, scraper PageScraper, notifications NotificationService) ReplitService {
  return &replitService{
    log:           log.With("service", "ReplitService"),
    projects:      projects,
    scraper:       scraper,
    notifications: notifications,
  }
}

func isDuplicateKeyErr(err error) bool {
  if errors.Is(err, gorm.ErrDuplicatedKey) {
    return true
  }
  msg := strings.ToLower(err.Error())
  return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

// Connect validates the URL, inspects the live app, and persists the
// project with detected tech stack, endpoints, and go-to-market
// suggestions. A second submit of the same URL returns ErrDuplicateProject;
// the unique index on (user_id, url) closes the race two concurrent submits
// would otherwise win together.
func (s *replitService) Connect(ctx context.Context, userID uuid.UUID, projectURL string) (*types.ReplitProject, error) {
  projectURL = strings.TrimSpace(projectURL)
  if !insights.ValidateReplitURL(projectURL) {
    return nil, fmt.Errorf("invalid Replit project URL")
  }

  count, err := s.projects.CountByUserAndURL(ctx, nil, userID, projectURL)
  if err != nil {
    return nil, err
  }
  if count > 0 {
    return nil, ErrDuplicateProject
  }

  // ID assigned up front so the tracking snippet can embed it and land in
  // the same insert.
  project := &types.ReplitProject{
    ID:          uuid.New(),
    UserID:      userID,
    Name:        insights.ProjectSlug(projectURL),
    URL:         projectURL,
    Status:      types.ReplitStatusChecking,
    ConnectedAt: time.Now(),
  }
  project.TrackingCode = insights.TrackingSnippet(project.ID.String())

  meta, text, scrapeErr := s.scraper.Scrape(ctx, projectURL)
  if scrapeErr != nil {
    s.log.Warn("Replit project scrape failed", "url", projectURL, "error", scrapeErr)
    project.Status = types.ReplitStatusError
    project.TechStack = jsonList([]string{"Web Application"})
    project.Endpoints = jsonList(nil)
    project.GTMSuggestions = jsonList(insights.GTMSuggestions(nil, nil))
  } else {
    techStack := insights.DetectTechStack(meta, text)
    endpoints := insights.ExtractEndpoints(text)

    project.Status = types.ReplitStatusLive
    if meta.Title != "" {
      project.Name = meta.Title
    }
    project.Description = meta.Description
    if project.Description == "" {
      project.Description = "Replit application"
    }
    project.TechStack = jsonList(techStack)
    project.Endpoints = jsonList(endpoints)
    project.GTMSuggestions = jsonList(insights.GTMSuggestions(techStack, endpoints))

    metadata := types.ReplitMetadata{
      Title:        meta.Title,
      Favicon:      meta.Favicon,
      Language:     insights.DetectLanguage(text),
      Framework:    insights.DetectFramework(techStack),
      LastDeployed: time.Now().UTC().Format(time.RFC3339),
    }
    if raw, mErr := json.Marshal(metadata); mErr == nil {
      project.Metadata = datatypes.JSON(raw)
    }
  }

  created, err := s.projects.Create(ctx, nil, []*types.ReplitProject{project})
  if err != nil {
    if isDuplicateKeyErr(err) {
      return nil, ErrDuplicateProject
    }
    return nil, fmt.Errorf("create replit project: %w", err)
  }
  project = created[0]

  s.notifications.Push(sse.SSEMessage{
    Channel: sse.UserChannel(userID),
    Event:   sse.SSEEventProjectConnected,
    Data:    project,
  })
  _, _ = s.notifications.Notify(ctx, userID,
    "Replit project connected",
    fmt.Sprintf("%s is connected and ready for launch tracking.", project.Name),
    types.NotificationTypeSuccess, "/dashboard")

  return project, nil
}

func (s *replitService) List(ctx context.Context, userID uuid.UUID) ([]*types.ReplitProject, error) {
  projects, err := s.projects.GetByUserID(ctx, nil, userID)
  if err != nil {
    return nil, err
  }
  for _, p := range projects {
    if p.TrackingCode == "" {
      p.TrackingCode = insights.TrackingSnippet(p.ID.String())
    }
  }
  return projects, nil
}

func (s *replitService) Disconnect(ctx context.Context, userID, id uuid.UUID) error {
  found, err := s.projects.GetByIDs(ctx, nil, []uuid.UUID{id})
  if err != nil {
    return err
  }
  if len(found) == 0 || found[0].UserID != userID {
    return ErrNotFound
  }
  return s.projects.FullDeleteByIDs(ctx, nil, []uuid.UUID{id})
}
