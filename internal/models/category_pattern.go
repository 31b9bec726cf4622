package models

import (
	"time"

	"github.com/google/uuid"
)

// CategoryPattern maps a description keyword to a category for one bank
// within one workspace. The integer primary key is deliberate: when two
// patterns share a priority, the lower id (earlier insertion) wins, so
// seeding order stays reproducible.
type CategoryPattern struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	WorkspaceID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_workspace_bank_pattern" json:"workspace_id"`
	CategoryID  uuid.UUID `gorm:"type:uuid;index" json:"category_id"`
	BankID      string    `gorm:"uniqueIndex:idx_workspace_bank_pattern" json:"bank_id"`
	Pattern     string    `gorm:"uniqueIndex:idx_workspace_bank_pattern" json:"pattern"`
	Priority    int       `gorm:"index" json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
}
