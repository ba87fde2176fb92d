package services

import (
  "context"
  "fmt"
  "strings"

  "github.com/google/uuid"

  "github.com/launchbase/launchbase-backend/internal/logger"
  "github.com/launchbase/launchbase-backend/internal/repos"
  "github.com/launchbase/launchbase-backend/internal/sse"
  "github.com/launchbase/launchbase-backend/internal/types"
)

const (
  strategyMaxTokens    = 1000
  quickActionMaxTokens = 800
  agentTaskMaxTokens   = 1000

  defaultSuggestionLimit = 20
  defaultActivityLimit   = 10

  // marketingAgentName fronts quick actions in the activity feed.
  marketingAgentName = "Maya"
)

// StrategyStepIDs is the fixed strategy-builder step order.
var StrategyStepIDs = []string{"icp", "positioning", "pricing", "channels"}

var strategyPrompts = map[string]struct {
  Title  string
  Prompt string
}{
  "icp": {
    Title: "Ideal Customer Profile Strategy",
    Prompt: `Generate a comprehensive Ideal Customer Profile (ICP) strategy for a SaaS startup. Include:
- Detailed demographics and firmographics
- Psychographic profiles and pain points
- Buying behavior and decision-making process
- Communication preferences and channels
- Budget considerations and pricing sensitivity
- Success metrics and KPIs for ICP validation`,
  },
  "positioning": {
    Title: "Market Positioning Strategy",
    Prompt: `Create a comprehensive market positioning strategy for a SaaS startup. Include:
- Unique value proposition development
- Competitive differentiation analysis
- Brand messaging framework
- Target market segmentation
- Positioning statement and taglines
- Brand personality and voice guidelines`,
  },
  "pricing": {
    Title: "Pricing Strategy Framework",
    Prompt: `Develop a comprehensive pricing strategy for a SaaS startup. Include:
- Pricing model recommendations (freemium, tiered, usage-based)
- Competitive pricing analysis
- Value-based pricing methodology
- Price testing and optimization strategies
- Packaging and feature bundling
- Pricing psychology and anchoring techniques`,
  },
  "channels": {
    Title: "Go-to-Market Channels Strategy",
    Prompt: `Create a comprehensive go-to-market channels strategy for a SaaS startup. Include:
- Channel mix optimization
- Digital marketing channels (SEO, PPC, social media)
- Content marketing and thought leadership
- Partnership and referral programs
- Sales channel development
- Channel performance measurement and optimization`,
  },
}

var quickActionPrompts = map[string]struct {
  Title  string
  Prompt string
}{
  "icp": {
    Title: "Ideal Customer Profile",
    Prompt: `Generate a comprehensive Ideal Customer Profile (ICP) for a SaaS startup. Include:
- Demographics (age, job title, company size, industry)
- Psychographics (pain points, goals, behavior, values)
- Preferred channels and communication methods
- Budget and decision-making process
- Key characteristics that make them ideal customers`,
  },
  "competitors": {
    Title: "Competitor Analysis",
    Prompt: `Conduct a comprehensive competitor analysis for a SaaS startup. Include:
- Direct and indirect competitors
- Pricing strategies and models
- Key features and differentiators
- Market positioning and messaging
- Strengths and weaknesses
- Market share and growth trends
- Opportunities for differentiation`,
  },
  "outreach": {
    Title: "Cold Outreach Campaign",
    Prompt: `Create a cold outreach campaign strategy for B2B SaaS. Include:
- Target prospect criteria
- Email templates (initial, follow-up sequence)
- LinkedIn outreach messages
- Personalization strategies
- Timing and frequency recommendations
- Success metrics to track`,
  },
  "copy": {
    Title: "Landing Page Copy",
    Prompt: `Generate high-converting landing page copy for a SaaS startup. Include:
- Compelling headline and subheadline
- Clear value proposition
- Key benefits and features
- Social proof elements
- Strong call-to-action
- FAQ section addressing common objections`,
  },
}

// agentTasks maps each dashboard agent to the deliverable it produces.
var agentTasks = map[string]struct {
  AgentName string
  Title     string
  Prompt    string
}{
  "lex": {
    AgentName: "Lex",
    Title:     "Legal Document Review",
    Prompt: `As a legal AI agent, provide a comprehensive legal checklist for a SaaS startup launch. Include:
- Terms of Service requirements
- Privacy Policy essentials
- GDPR compliance checklist
- Business registration steps
- Intellectual property protection
- Liability considerations`,
  },
  "maya": {
    AgentName: "Maya",
    Title:     "Marketing Strategy",
    Prompt: `As a marketing AI agent, create a comprehensive marketing strategy for a SaaS startup. Include:
- Brand positioning and messaging
- Content marketing plan
- Social media strategy
- Email marketing campaigns
- SEO and content optimization
- Conversion optimization tactics`,
  },
  "sam": {
    AgentName: "Sam",
    Title:     "Sales Outreach Plan",
    Prompt: `As a sales AI agent, develop a comprehensive sales strategy for a SaaS startup. Include:
- Lead generation tactics
- Cold outreach templates
- Sales funnel optimization
- Prospect qualification criteria
- Follow-up sequences
- Closing techniques and objection handling`,
  },
  "alex": {
    AgentName: "Alex",
    Title:     "Analytics Setup Guide",
    Prompt: `As an analytics AI agent, provide a comprehensive analytics setup guide for a SaaS startup. Include:
- Key metrics to track
- Analytics tools setup
- Conversion tracking implementation
- Dashboard creation
- Reporting automation
- Performance optimization insights`,
  },
}

type StrategyService interface {
  GenerateStep(ctx context.Context, userID uuid.UUID, stepID string) (*types.AISuggestion, error)
  GenerateAll(ctx context.Context, userID uuid.UUID) ([]*types.AISuggestion, error)
  Steps(ctx context.Context, userID uuid.UUID) ([]*types.AISuggestion, error)
  QuickAction(ctx context.Context, userID uuid.UUID, action string) (*types.AISuggestion, error)
  AgentTask(ctx context.Context, userID uuid.UUID, agentID string) (*types.AISuggestion, error)
  ListSuggestions(ctx context.Context, userID uuid.UUID, limit int) ([]*types.AISuggestion, error)
  CompleteSuggestion(ctx context.Context, userID, id uuid.UUID) error
  ListActivities(ctx context.Context, userID uuid.UUID, limit int) ([]*types.AgentActivity, error)
}

type strategyService struct {
  log         *logger.Logger
  suggestions repos.AISuggestionRepo
  activities  repos.AgentActivityRepo
  ai          AIClient
  notifier    NotificationService
}

func NewStrategyService(log *logger.Logger, suggestions repos.AISuggestionRepo, activities repos.AgentActivityRepo, ai AIClient, notifier NotificationService) StrategyService {
  return &strategyService{
    log:         log.With("service", "StrategyService"),
    suggestions: suggestions,
    activities:  activities,
    ai:          ai,
    notifier:    notifier,
  }
}

// GenerateStep produces one strategy-builder step. The suggestion lands as
// "completed": the strategy builder renders it immediately rather than
// queueing it for review.
func (s *strategyService) GenerateStep(ctx context.Context, userID uuid.UUID, stepID string) (*types.AISuggestion, error) {
  tmpl, ok := strategyPrompts[stepID]
  if !ok {
    return nil, fmt.Errorf("unknown strategy step %q", stepID)
  }

  text, err := s.ai.GenerateText(ctx, GenerateTextRequest{
    CallType:  "strategy_" + stepID,
    UserID:    &userID,
    Prompt:    tmpl.Prompt,
    MaxTokens: strategyMaxTokens,
  })
  if err != nil {
    return nil, fmt.Errorf("generate %s strategy: %w", stepID, err)
  }

  row := &types.AISuggestion{
    UserID:      userID,
    Type:        stepID,
    Title:       tmpl.Title,
    Description: fmt.Sprintf("AI-generated %s", strings.ToLower(tmpl.Title)),
    Content:     text,
    Status:      types.SuggestionStatusCompleted,
    Priority:    types.SuggestionPriorityHigh,
  }
  created, err := s.suggestions.Create(ctx, nil, []*types.AISuggestion{row})
  if err != nil {
    return nil, fmt.Errorf("store strategy: %w", err)
  }
  return created[0], nil
}

// GenerateAll runs every step in order, stopping on the first failure so a
// broken model call doesn't burn through the remaining steps.
func (s *strategyService) GenerateAll(ctx context.Context, userID uuid.UUID) ([]*types.AISuggestion, error) {
  out := make([]*types.AISuggestion, 0, len(StrategyStepIDs))
  for _, stepID := range StrategyStepIDs {
    suggestion, err := s.GenerateStep(ctx, userID, stepID)
    if err != nil {
      return out, err
    }
    out = append(out, suggestion)
  }
  return out, nil
}

// Steps returns the user's existing strategy-step suggestions.
func (s *strategyService) Steps(ctx context.Context, userID uuid.UUID) ([]*types.AISuggestion, error) {
  return s.suggestions.GetByUserAndTypes(ctx, nil, userID, StrategyStepIDs)
}

// QuickAction runs one of the dashboard shortcuts. The result is queued as
// a pending suggestion and attributed to the marketing agent in the
// activity feed.
func (s *strategyService) QuickAction(ctx context.Context, userID uuid.UUID, action string) (*types.AISuggestion, error) {
  tmpl, ok := quickActionPrompts[action]
  if !ok {
    return nil, fmt.Errorf("unknown quick action %q", action)
  }

  text, err := s.ai.GenerateText(ctx, GenerateTextRequest{
    CallType:  "quick_action_" + action,
    UserID:    &userID,
    Prompt:    tmpl.Prompt,
    MaxTokens: quickActionMaxTokens,
  })
  if err != nil {
    return nil, fmt.Errorf("quick action %s: %w", action, err)
  }

  row := &types.AISuggestion{
    UserID:      userID,
    Type:        action,
    Title:       tmpl.Title,
    Description: fmt.Sprintf("AI-generated %s", strings.ToLower(tmpl.Title)),
    Content:     text,
    Status:      types.SuggestionStatusPending,
    Priority:    types.SuggestionPriorityHigh,
  }
  created, err := s.suggestions.Create(ctx, nil, []*types.AISuggestion{row})
  if err != nil {
    return nil, fmt.Errorf("store suggestion: %w", err)
  }

  s.recordActivity(ctx, userID, marketingAgentName, tmpl.Title, "insights")
  return created[0], nil
}

// AgentTask asks one of the named agents for its standing deliverable. The
// suggestion is pending at medium priority and credited to that agent.
func (s *strategyService) AgentTask(ctx context.Context, userID uuid.UUID, agentID string) (*types.AISuggestion, error) {
  task, ok := agentTasks[agentID]
  if !ok {
    return nil, fmt.Errorf("unknown agent %q", agentID)
  }

  text, err := s.ai.GenerateText(ctx, GenerateTextRequest{
    CallType:  "agent_" + agentID,
    UserID:    &userID,
    Prompt:    task.Prompt,
    MaxTokens: agentTaskMaxTokens,
  })
  if err != nil {
    return nil, fmt.Errorf("agent task %s: %w", agentID, err)
  }

  row := &types.AISuggestion{
    UserID:      userID,
    Type:        agentID,
    Title:       task.Title,
    Description: fmt.Sprintf("%s generated %s", task.AgentName, strings.ToLower(task.Title)),
    Content:     text,
    Status:      types.SuggestionStatusPending,
    Priority:    types.SuggestionPriorityMedium,
  }
  created, err := s.suggestions.Create(ctx, nil, []*types.AISuggestion{row})
  if err != nil {
    return nil, fmt.Errorf("store suggestion: %w", err)
  }

  s.recordActivity(ctx, userID, task.AgentName, task.Title, "recommendations")
  return created[0], nil
}

func (s *strategyService) recordActivity(ctx context.Context, userID uuid.UUID, agentName, title, flavor string) {
  row := &types.AgentActivity{
    UserID:    userID,
    AgentName: agentName,
    Action:    fmt.Sprintf("Generated %s", title),
    Details:   fmt.Sprintf("Created comprehensive %s with actionable %s", strings.ToLower(title), flavor),
    Status:    "completed",
  }
  if _, err := s.activities.Create(ctx, nil, []*types.AgentActivity{row}); err != nil {
    s.log.Warn("Failed to record agent activity", "agent", agentName, "error", err)
    return
  }
  s.notifier.Push(sse.SSEMessage{
    Channel: sse.UserChannel(userID),
    Event:   sse.SSEEventAgentActivity,
    Data:    row,
  })
}

func (s *strategyService) ListSuggestions(ctx context.Context, userID uuid.UUID, limit int) ([]*types.AISuggestion, error) {
  if limit <= 0 {
    limit = defaultSuggestionLimit
  }
  return s.suggestions.GetByUserID(ctx, nil, userID, limit)
}

func (s *strategyService) CompleteSuggestion(ctx context.Context, userID, id uuid.UUID) error {
  return s.suggestions.UpdateStatus(ctx, nil, id, userID, types.SuggestionStatusCompleted)
}

func (s *strategyService) ListActivities(ctx context.Context, userID uuid.UUID, limit int) ([]*types.AgentActivity, error) {
  if limit <= 0 {
    limit = defaultActivityLimit
  }
  return s.activities.GetByUserID(ctx, nil, userID, limit)
}
