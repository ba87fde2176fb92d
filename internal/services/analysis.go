package services

import (
  "context"
  "encoding/json"
  "fmt"

  "github.com/google/uuid"
  "gorm.io/datatypes"

  "github.com/launchbase/launchbase-backend/internal/insights"
  "github.com/launchbase/launchbase-backend/internal/logger"
  "github.com/launchbase/launchbase-backend/internal/repos"
  "github.com/launchbase/launchbase-backend/internal/sse"
  "github.com/launchbase/launchbase-backend/internal/types"
)

const (
  analysisMaxTokens = 2000

  // analysisConfidence is fixed: the extraction heuristics carry no
  // per-field confidence signal to aggregate.
  analysisConfidence = 0.85
)

type AnalysisService interface {
  Analyze(ctx context.Context, connection *types.MVPConnection) (*types.MVPAnalysis, error)
  Latest(ctx context.Context, userID uuid.UUID) (*types.MVPAnalysis, error)
}

type analysisService struct {
  log           *logger.Logger
  analyses      repos.MVPAnalysisRepo
  ai            AIClient
  notifications NotificationService
}

func NewAnalysisService(log *logger.Logger, analyses repos.MVPAnalysisRepo, ai AIClient, notifications NotificationService) AnalysisService {
  return &analysisService{
    log:           log.With("service", "AnalysisService"),
    analyses:      analyses,
    ai:            ai,
    notifications: notifications,
  }
}

func jsonList(items []string) datatypes.JSON {
  raw, err := json.Marshal(items)
  if err != nil {
    return datatypes.JSON([]byte("[]"))
  }
  return datatypes.JSON(raw)
}

func analysisSource(conn *types.MVPConnection) insights.AnalysisSource {
  src := insights.AnalysisSource{
    Source:      conn.ConnectionType,
    Platform:    conn.Platform,
    URL:         conn.ConnectionURL,
    Description: conn.ProjectDescription,
  }
  if conn.ConnectionType == types.ConnectionTypeManual {
    src.Manual = map[string]string{}
    if conn.ProjectName != "" {
      src.Manual["project_name"] = conn.ProjectName
    }
    if conn.ProjectDescription != "" {
      src.Manual["description"] = conn.ProjectDescription
    }
  }
  return src
}

// Analyze runs the go-to-market analysis for a freshly connected MVP. The
// row is visible in "analyzing" state while the model call is in flight and
// moves to "completed" when it returns; a failed call leaves the row in
// "analyzing" and the user re-triggers by reconnecting. The raw response is
// kept verbatim next to the extracted fields.
func (s *analysisService) Analyze(ctx context.Context, connection *types.MVPConnection) (*types.MVPAnalysis, error) {
  if connection == nil {
    return nil, fmt.Errorf("connection required")
  }

  row := &types.MVPAnalysis{
    UserID:          connection.UserID,
    MVPConnectionID: connection.ID,
    AnalysisStatus:  types.AnalysisStatusAnalyzing,
  }
  created, err := s.analyses.Create(ctx, nil, []*types.MVPAnalysis{row})
  if err != nil {
    return nil, fmt.Errorf("create analysis: %w", err)
  }
  analysis := created[0]

  s.notifications.Push(sse.SSEMessage{
    Channel: sse.UserChannel(connection.UserID),
    Event:   sse.SSEEventAnalysisStarted,
    Data:    analysis,
  })

  prompt := insights.BuildAnalysisPrompt(analysisSource(connection))
  text, aiErr := s.ai.GenerateText(ctx, GenerateTextRequest{
    CallType:        "gtm_analysis",
    UserID:          &connection.UserID,
    ContextID:       &analysis.ID,
    Prompt:          prompt,
    MaxTokens:       analysisMaxTokens,
    SearchGrounding: true,
  })
  if aiErr != nil {
    // the row stays in "analyzing"; a re-trigger creates a fresh record
    s.log.Error("GTM analysis generation failed", "analysisID", analysis.ID, "error", aiErr)

    s.notifications.Push(sse.SSEMessage{
      Channel: sse.UserChannel(connection.UserID),
      Event:   sse.SSEEventAnalysisFailed,
      Data:    analysis,
    })
    _, _ = s.notifications.Notify(ctx, connection.UserID,
      "Analysis failed",
      "We couldn't analyze your MVP. Please try reconnecting.",
      types.NotificationTypeError, "")
    return analysis, fmt.Errorf("generate analysis: %w", aiErr)
  }

  fields := insights.ParseAnalysis(text)
  updates := map[string]interface{}{
    "analysis_status":       types.AnalysisStatusCompleted,
    "business_model":        fields.BusinessModel,
    "target_audience":       fields.TargetAudience,
    "market_category":       fields.MarketCategory,
    "industry":              fields.Industry,
    "value_proposition":     fields.ValueProposition,
    "pricing_model":         fields.PricingModel,
    "market_size":           fields.MarketSize,
    "go_to_market_strategy": fields.GoToMarketStrategy,
    "key_features":          jsonList(fields.KeyFeatures),
    "competitors":           jsonList(fields.Competitors),
    "revenue_streams":       jsonList(fields.RevenueStreams),
    "customer_segments":     jsonList(fields.CustomerSegments),
    "pain_points":           jsonList(fields.PainPoints),
    "unique_selling_points": jsonList(fields.UniqueSellingPoints),
    "analysis_confidence":   analysisConfidence,
    "raw_analysis_data":     text,
  }
  if err := s.analyses.Update(ctx, nil, analysis.ID, updates); err != nil {
    return nil, fmt.Errorf("store analysis: %w", err)
  }

  refreshed, err := s.analyses.GetByIDs(ctx, nil, []uuid.UUID{analysis.ID})
  if err == nil && len(refreshed) > 0 {
    analysis = refreshed[0]
  }

  s.notifications.Push(sse.SSEMessage{
    Channel: sse.UserChannel(connection.UserID),
    Event:   sse.SSEEventAnalysisCompleted,
    Data:    analysis,
  })
  _, _ = s.notifications.Notify(ctx, connection.UserID,
    "MVP analysis ready",
    "Your go-to-market analysis is complete.",
    types.NotificationTypeSuccess, "/dashboard")

  return analysis, nil
}

// Latest returns the newest analysis for the user, or nil when none exists.
func (s *analysisService) Latest(ctx context.Context, userID uuid.UUID) (*types.MVPAnalysis, error) {
  return s.analyses.GetLatestByUserID(ctx, nil, userID)
}
