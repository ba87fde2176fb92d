package types

import (
  "time"

  "github.com/google/uuid"
)

// ChecklistItemState persists a user's completion of one fixed checklist
// item. The item catalog itself is static; only the per-user toggle state is
// stored.
type ChecklistItemState struct {
  ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
  UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_checklist_state_user_item" json:"user_id"`
  User      *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  SectionID string    `gorm:"column:section_id;not null" json:"section_id"`
  ItemID    string    `gorm:"column:item_id;not null;uniqueIndex:idx_checklist_state_user_item" json:"item_id"`
  Completed bool      `gorm:"column:completed;not null;default:false" json:"completed"`
  CreatedAt time.Time `gorm:"not null" json:"created_at"`
  UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (ChecklistItemState) TableName() string {
  return "checklist_item_state"
}
