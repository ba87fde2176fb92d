package types

import (
  "time"

  "github.com/google/uuid"
)

const (
  SuggestionStatusPending   = "pending"
  SuggestionStatusCompleted = "completed"

  SuggestionPriorityLow    = "low"
  SuggestionPriorityMedium = "medium"
  SuggestionPriorityHigh   = "high"
)

type AISuggestion struct {
  ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
  UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
  User        *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  Type        string    `gorm:"column:type;not null;index" json:"type"`
  Title       string    `gorm:"column:title;not null" json:"title"`
  Description string    `gorm:"column:description" json:"description"`
  Content     string    `gorm:"type:text;column:content" json:"content"`
  Status      string    `gorm:"column:status;not null" json:"status"`
  Priority    string    `gorm:"column:priority;not null" json:"priority"`
  CreatedAt   time.Time `gorm:"not null" json:"created_at"`
  UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (AISuggestion) TableName() string {
  return "ai_suggestion"
}
