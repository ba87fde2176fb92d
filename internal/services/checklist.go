package services

import (
  "context"
  "fmt"
  "math"

  "github.com/google/uuid"

  "github.com/launchbase/launchbase-backend/internal/logger"
  "github.com/launchbase/launchbase-backend/internal/repos"
  "github.com/launchbase/launchbase-backend/internal/types"
)

// ChecklistItem is one catalog entry. DefaultCompleted seeds the state a
// user sees before they have toggled the item themselves.
type ChecklistItem struct {
  ID               string `json:"id"`
  Title            string `json:"title"`
  Critical         bool   `json:"critical"`
  DefaultCompleted bool   `json:"-"`
}

type ChecklistSection struct {
  ID    string          `json:"id"`
  Title string          `json:"title"`
  Items []ChecklistItem `json:"items"`
}

// checklistCatalog is the fixed launch checklist. Item IDs are stable; the
// per-user completion state persists against them.
var checklistCatalog = []ChecklistSection{
  {
    ID:    "product",
    Title: "Product Readiness",
    Items: []ChecklistItem{
      {ID: "mvp-complete", Title: "MVP development complete", Critical: true, DefaultCompleted: true},
      {ID: "testing-done", Title: "User testing completed", Critical: true, DefaultCompleted: true},
      {ID: "bugs-fixed", Title: "Critical bugs resolved", Critical: true},
      {ID: "performance", Title: "Performance optimization"},
      {ID: "mobile-responsive", Title: "Mobile responsiveness", Critical: true, DefaultCompleted: true},
    },
  },
  {
    ID:    "legal",
    Title: "Legal & Compliance",
    Items: []ChecklistItem{
      {ID: "terms-service", Title: "Terms of Service", Critical: true, DefaultCompleted: true},
      {ID: "privacy-policy", Title: "Privacy Policy", Critical: true, DefaultCompleted: true},
      {ID: "gdpr-compliance", Title: "GDPR compliance", Critical: true},
      {ID: "business-registration", Title: "Business registration"},
      {ID: "trademark", Title: "Trademark application"},
    },
  },
  {
    ID:    "marketing",
    Title: "Marketing Assets",
    Items: []ChecklistItem{
      {ID: "landing-page", Title: "Landing page live", Critical: true, DefaultCompleted: true},
      {ID: "brand-assets", Title: "Brand assets created", DefaultCompleted: true},
      {ID: "email-sequences", Title: "Email sequences ready", Critical: true},
      {ID: "social-profiles", Title: "Social media profiles", DefaultCompleted: true},
      {ID: "content-calendar", Title: "Content calendar"},
    },
  },
  {
    ID:    "sales",
    Title: "Sales & Outreach",
    Items: []ChecklistItem{
      {ID: "icp-defined", Title: "ICP clearly defined", Critical: true, DefaultCompleted: true},
      {ID: "prospect-list", Title: "Prospect database built", Critical: true},
      {ID: "outreach-templates", Title: "Outreach templates ready", Critical: true, DefaultCompleted: true},
      {ID: "crm-setup", Title: "CRM system configured"},
      {ID: "sales-process", Title: "Sales process documented"},
    },
  },
  {
    ID:    "analytics",
    Title: "Analytics & Tracking",
    Items: []ChecklistItem{
      {ID: "analytics-setup", Title: "Analytics tracking setup", Critical: true, DefaultCompleted: true},
      {ID: "conversion-tracking", Title: "Conversion tracking", Critical: true},
      {ID: "error-monitoring", Title: "Error monitoring"},
      {ID: "user-feedback", Title: "User feedback system"},
      {ID: "kpi-dashboard", Title: "KPI dashboard"},
    },
  },
  {
    ID:    "launch",
    Title: "Launch Preparation",
    Items: []ChecklistItem{
      {ID: "launch-plan", Title: "Launch plan finalized", Critical: true},
      {ID: "press-kit", Title: "Press kit prepared"},
      {ID: "support-docs", Title: "Support documentation", Critical: true},
      {ID: "backup-plan", Title: "Backup & recovery plan"},
      {ID: "team-briefing", Title: "Team launch briefing"},
    },
  },
}

// ChecklistItemView is a catalog item merged with the user's state.
type ChecklistItemView struct {
  ID        string `json:"id"`
  Title     string `json:"title"`
  Critical  bool   `json:"critical"`
  Completed bool   `json:"completed"`
}

type ChecklistSectionView struct {
  ID       string              `json:"id"`
  Title    string              `json:"title"`
  Items    []ChecklistItemView `json:"items"`
  Progress int                 `json:"progress"`
}

type ChecklistProgress struct {
  Sections          []ChecklistSectionView `json:"sections"`
  OverallProgress   int                    `json:"overall_progress"`
  CriticalRemaining int                    `json:"critical_remaining"`
  ReadyToLaunch     bool                   `json:"ready_to_launch"`
}

type ChecklistService interface {
  Progress(ctx context.Context, userID uuid.UUID) (*ChecklistProgress, error)
  Toggle(ctx context.Context, userID uuid.UUID, itemID string) (*ChecklistProgress, error)
}

type checklistService struct {
  log    *logger.Logger
  states repos.ChecklistStateRepo
}

func NewChecklistService(log *logger.Logger, states repos.ChecklistStateRepo) ChecklistService {
  return &checklistService{
    log:    log.With("service", "ChecklistService"),
    states: states,
  }
}

func catalogSectionFor(itemID string) (string, bool) {
  for _, section := range checklistCatalog {
    for _, item := range section.Items {
      if item.ID == itemID {
        return section.ID, true
      }
    }
  }
  return "", false
}

// Progress merges the catalog with the user's persisted toggles. A stored
// state wins over the catalog default, so default-completed items can be
// unchecked.
func (s *checklistService) Progress(ctx context.Context, userID uuid.UUID) (*ChecklistProgress, error) {
  states, err := s.states.GetByUserID(ctx, nil, userID)
  if err != nil {
    return nil, err
  }
  byItem := make(map[string]bool, len(states))
  for _, st := range states {
    byItem[st.ItemID] = st.Completed
  }

  out := &ChecklistProgress{}
  totalItems := 0
  totalCompleted := 0

  for _, section := range checklistCatalog {
    view := ChecklistSectionView{ID: section.ID, Title: section.Title}
    sectionCompleted := 0
    for _, item := range section.Items {
      completed := item.DefaultCompleted
      if v, ok := byItem[item.ID]; ok {
        completed = v
      }
      view.Items = append(view.Items, ChecklistItemView{
        ID:        item.ID,
        Title:     item.Title,
        Critical:  item.Critical,
        Completed: completed,
      })
      totalItems++
      if completed {
        totalCompleted++
        sectionCompleted++
      } else if item.Critical {
        out.CriticalRemaining++
      }
    }
    view.Progress = int(math.Round(float64(sectionCompleted) / float64(len(section.Items)) * 100))
    out.Sections = append(out.Sections, view)
  }

  out.OverallProgress = int(math.Round(float64(totalCompleted) / float64(totalItems) * 100))
  out.ReadyToLaunch = out.OverallProgress == 100
  return out, nil
}

// Toggle flips one item for the user and returns the refreshed progress.
func (s *checklistService) Toggle(ctx context.Context, userID uuid.UUID, itemID string) (*ChecklistProgress, error) {
  sectionID, ok := catalogSectionFor(itemID)
  if !ok {
    return nil, fmt.Errorf("unknown checklist item %q", itemID)
  }

  current := false
  for _, section := range checklistCatalog {
    for _, item := range section.Items {
      if item.ID == itemID {
        current = item.DefaultCompleted
      }
    }
  }
  if existing, err := s.states.GetByUserAndItem(ctx, nil, userID, itemID); err != nil {
    return nil, err
  } else if existing != nil {
    current = existing.Completed
  }

  state := &types.ChecklistItemState{
    UserID:    userID,
    SectionID: sectionID,
    ItemID:    itemID,
    Completed: !current,
  }
  if err := s.states.Upsert(ctx, nil, state); err != nil {
    return nil, fmt.Errorf("toggle checklist item: %w", err)
  }
  return s.Progress(ctx, userID)
}
