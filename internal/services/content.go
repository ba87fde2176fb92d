package services

import (
  "context"
  "fmt"

  "github.com/google/uuid"

  "github.com/launchbase/launchbase-backend/internal/logger"
  "github.com/launchbase/launchbase-backend/internal/repos"
  "github.com/launchbase/launchbase-backend/internal/sse"
  "github.com/launchbase/launchbase-backend/internal/types"
)

const (
  contentMaxTokens   = 1000
  recentContentLimit = 4
)

// contentTemplates is the fixed catalog of generatable content kinds.
var contentTemplates = map[string]struct {
  Title  string
  Prompt string
}{
  "landing": {
    Title: "Landing Page Copy",
    Prompt: `Generate high-converting landing page copy for a SaaS startup. Include:
- Compelling headline
- Value proposition
- Key benefits (3-4 points)
- Social proof section
- Call-to-action`,
  },
  "email": {
    Title: "Email Sequence",
    Prompt: `Create a 5-email welcome sequence for new SaaS users. Include:
- Welcome email
- Product tour email
- Value demonstration
- Success stories
- Upgrade prompt`,
  },
  "social": {
    Title: "Social Media Posts",
    Prompt: `Generate 10 social media posts for LinkedIn about SaaS startup journey. Include:
- Mix of educational and personal content
- Engagement-driving questions
- Industry insights
- Behind-the-scenes content`,
  },
  "sales": {
    Title: "Sales Copy Templates",
    Prompt: `Create cold outreach email templates for B2B SaaS. Include:
- Subject lines (5 variations)
- Email body templates (3 variations)
- Follow-up sequence (3 emails)
- Personalization guidelines`,
  },
}

type ContentService interface {
  Generate(ctx context.Context, userID uuid.UUID, contentType, customPrompt string) (*types.GeneratedContent, error)
  ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*types.GeneratedContent, error)
  MarkUsed(ctx context.Context, userID, id uuid.UUID) error
}

type contentService struct {
  log           *logger.Logger
  contents      repos.GeneratedContentRepo
  ai            AIClient
  notifications NotificationService
}

func NewContentService(log *logger.Logger, contents repos.GeneratedContentRepo, ai AIClient, notifications NotificationService) ContentService {
  return &contentService{
    log:           log.With("service", "ContentService"),
    contents:      contents,
    ai:            ai,
    notifications: notifications,
  }
}

// Generate produces one piece of marketing content and stores it as a
// draft. customPrompt is appended to the template as extra context and kept
// on the row so the draft can be regenerated later.
func (s *contentService) Generate(ctx context.Context, userID uuid.UUID, contentType, customPrompt string) (*types.GeneratedContent, error) {
  tmpl, ok := contentTemplates[contentType]
  if !ok {
    return nil, fmt.Errorf("unknown content type %q", contentType)
  }

  prompt := tmpl.Prompt
  if customPrompt != "" {
    prompt += fmt.Sprintf("\n\nAdditional context: %s", customPrompt)
  }

  text, err := s.ai.GenerateText(ctx, GenerateTextRequest{
    CallType:  "content_" + contentType,
    UserID:    &userID,
    Prompt:    prompt,
    MaxTokens: contentMaxTokens,
  })
  if err != nil {
    return nil, fmt.Errorf("generate %s content: %w", contentType, err)
  }

  row := &types.GeneratedContent{
    UserID:  userID,
    Type:    contentType,
    Title:   tmpl.Title,
    Content: text,
    Prompt:  customPrompt,
    Status:  types.ContentStatusDraft,
  }
  created, err := s.contents.Create(ctx, nil, []*types.GeneratedContent{row})
  if err != nil {
    return nil, fmt.Errorf("store content: %w", err)
  }

  s.notifications.Push(sse.SSEMessage{
    Channel: sse.UserChannel(userID),
    Event:   sse.SSEEventContentGenerated,
    Data:    created[0],
  })
  return created[0], nil
}

func (s *contentService) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*types.GeneratedContent, error) {
  if limit <= 0 {
    limit = recentContentLimit
  }
  return s.contents.GetByUserID(ctx, nil, userID, limit)
}

func (s *contentService) MarkUsed(ctx context.Context, userID, id uuid.UUID) error {
  return s.contents.UpdateStatus(ctx, nil, id, userID, types.ContentStatusUsed)
}
