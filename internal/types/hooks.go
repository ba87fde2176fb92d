package types

import (
  "github.com/google/uuid"
  "gorm.io/gorm"
)

// BeforeCreate hooks assign IDs client-side when the caller didn't. Column
// defaults are postgres-only DDL applied in db.AutoMigrateAll; the hooks are
// what every driver, sqlite included, actually relies on.

func (u *User) BeforeCreate(tx *gorm.DB) error {
  if u.ID == uuid.Nil {
    u.ID = uuid.New()
  }
  return nil
}

func (t *UserToken) BeforeCreate(tx *gorm.DB) error {
  if t.ID == uuid.Nil {
    t.ID = uuid.New()
  }
  return nil
}

func (c *MVPConnection) BeforeCreate(tx *gorm.DB) error {
  if c.ID == uuid.Nil {
    c.ID = uuid.New()
  }
  return nil
}

func (a *MVPAnalysis) BeforeCreate(tx *gorm.DB) error {
  if a.ID == uuid.Nil {
    a.ID = uuid.New()
  }
  return nil
}

func (p *ReplitProject) BeforeCreate(tx *gorm.DB) error {
  if p.ID == uuid.Nil {
    p.ID = uuid.New()
  }
  return nil
}

func (g *GeneratedContent) BeforeCreate(tx *gorm.DB) error {
  if g.ID == uuid.Nil {
    g.ID = uuid.New()
  }
  return nil
}

func (s *AISuggestion) BeforeCreate(tx *gorm.DB) error {
  if s.ID == uuid.Nil {
    s.ID = uuid.New()
  }
  return nil
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
  if n.ID == uuid.Nil {
    n.ID = uuid.New()
  }
  return nil
}

func (a *AgentActivity) BeforeCreate(tx *gorm.DB) error {
  if a.ID == uuid.Nil {
    a.ID = uuid.New()
  }
  return nil
}

func (s *ChecklistItemState) BeforeCreate(tx *gorm.DB) error {
  if s.ID == uuid.Nil {
    s.ID = uuid.New()
  }
  return nil
}

func (l *AICallLog) BeforeCreate(tx *gorm.DB) error {
  if l.ID == uuid.Nil {
    l.ID = uuid.New()
  }
  return nil
}
