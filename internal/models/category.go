package models

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	WorkspaceID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_workspace_category_name" json:"workspace_id"`
	Name        string    `gorm:"uniqueIndex:idx_workspace_category_name" json:"name"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
}
