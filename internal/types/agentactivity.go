package types

import (
  "time"

  "github.com/google/uuid"
)

type AgentActivity struct {
  ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
  UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
  User      *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  AgentName string    `gorm:"column:agent_name;not null" json:"agent_name"`
  Action    string    `gorm:"column:action;not null" json:"action"`
  Details   string    `gorm:"column:details" json:"details"`
  Status    string    `gorm:"column:status;not null" json:"status"`
  CreatedAt time.Time `gorm:"not null" json:"created_at"`
  UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (AgentActivity) TableName() string {
  return "agent_activity"
}
