package types

import (
  "time"

  "github.com/google/uuid"
)

const (
  ConnectionTypeIntegration = "integration"
  ConnectionTypeManual      = "manual"
  ConnectionTypeURL         = "url"

  ConnectionStatusConnected = "connected"
  ConnectionStatusError     = "error"
)

type MVPConnection struct {
  ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
  UserID             uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
  User               *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  ConnectionType     string    `gorm:"column:connection_type;not null" json:"connection_type"`
  Platform           string    `gorm:"column:platform" json:"platform,omitempty"`
  ConnectionURL      string    `gorm:"column:connection_url" json:"connection_url,omitempty"`
  ProjectName        string    `gorm:"column:project_name" json:"project_name,omitempty"`
  ProjectDescription string    `gorm:"column:project_description" json:"project_description,omitempty"`
  Status             string    `gorm:"column:status;not null" json:"status"`
  CreatedAt          time.Time `gorm:"not null" json:"created_at"`
  UpdatedAt          time.Time `gorm:"not null" json:"updated_at"`
}

func (MVPConnection) TableName() string {
  return "mvp_connection"
}
