package types

import (
  "time"

  "github.com/google/uuid"
  "gorm.io/datatypes"
)

const (
  ReplitStatusLive     = "live"
  ReplitStatusError    = "error"
  ReplitStatusChecking = "checking"
)

// ReplitProject is a URL-connected app. The composite unique index on
// (user_id, url) closes the duplicate-submission race that the
// check-then-act duplicate lookup alone cannot.
type ReplitProject struct {
  ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
  UserID         uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_replit_project_user_url" json:"user_id"`
  User           *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  Name           string         `gorm:"column:name;not null" json:"name"`
  URL            string         `gorm:"column:url;not null;uniqueIndex:idx_replit_project_user_url" json:"url"`
  Description    string         `gorm:"column:description" json:"description"`
  TechStack      datatypes.JSON `gorm:"type:jsonb;column:tech_stack" json:"tech_stack"`
  Endpoints      datatypes.JSON `gorm:"type:jsonb;column:endpoints" json:"endpoints"`
  Metadata       datatypes.JSON `gorm:"type:jsonb;column:metadata" json:"metadata"`
  GTMSuggestions datatypes.JSON `gorm:"type:jsonb;column:gtm_suggestions" json:"gtm_suggestions"`
  TrackingCode   string         `gorm:"type:text;column:tracking_code" json:"tracking_code"`
  Status         string         `gorm:"column:status;not null" json:"status"`
  ConnectedAt    time.Time      `gorm:"column:connected_at" json:"connected_at"`
  CreatedAt      time.Time      `gorm:"not null" json:"created_at"`
  UpdatedAt      time.Time      `gorm:"not null" json:"updated_at"`
}

func (ReplitProject) TableName() string {
  return "replit_project"
}

// ReplitMetadata is the shape stored in the Metadata jsonb column.
type ReplitMetadata struct {
  Title        string `json:"title,omitempty"`
  Favicon      string `json:"favicon,omitempty"`
  Language     string `json:"language,omitempty"`
  Framework    string `json:"framework,omitempty"`
  LastDeployed string `json:"last_deployed,omitempty"`
}
