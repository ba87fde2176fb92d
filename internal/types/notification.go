package types

import (
  "time"

  "github.com/google/uuid"
)

const (
  NotificationTypeInfo    = "info"
  NotificationTypeSuccess = "success"
  NotificationTypeWarning = "warning"
  NotificationTypeError   = "error"
)

// ReadStatus is 0/1 rather than bool to match how the dashboard stores and
// filters the flag.
type Notification struct {
  ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
  UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
  User       *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  Title      string    `gorm:"column:title;not null" json:"title"`
  Message    string    `gorm:"column:message" json:"message"`
  Type       string    `gorm:"column:type;not null" json:"type"`
  ReadStatus int       `gorm:"column:read_status;not null;default:0" json:"read_status"`
  ActionURL  string    `gorm:"column:action_url" json:"action_url,omitempty"`
  CreatedAt  time.Time `gorm:"not null" json:"created_at"`
  UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

func (Notification) TableName() string {
  return "user_notification"
}
