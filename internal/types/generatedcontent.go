package types

import (
  "time"

  "github.com/google/uuid"
)

const (
  ContentStatusDraft = "draft"
  ContentStatusUsed  = "used"
)

type GeneratedContent struct {
  ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
  UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
  User      *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  Type      string    `gorm:"column:type;not null" json:"type"`
  Title     string    `gorm:"column:title;not null" json:"title"`
  Content   string    `gorm:"type:text;column:content" json:"content"`
  Prompt    string    `gorm:"type:text;column:prompt" json:"prompt"`
  Status    string    `gorm:"column:status;not null" json:"status"`
  CreatedAt time.Time `gorm:"not null" json:"created_at"`
  UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (GeneratedContent) TableName() string {
  return "generated_content"
}
