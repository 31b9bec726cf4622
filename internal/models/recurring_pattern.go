package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
	FrequencyYearly  = "yearly"
)

// RecurringPattern is a detected group of transactions sharing a normalized
// description and a regular cadence. Transactions back-reference it through
// RecurringPatternID; deleting a pattern unlinks them, never deletes them.
type RecurringPattern struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	WorkspaceID        uuid.UUID       `gorm:"type:uuid;index" json:"workspace_id"`
	DescriptionPattern string          `json:"description_pattern"`
	Frequency          string          `json:"frequency"`
	AvgAmount          decimal.Decimal `gorm:"type:decimal(14,2)" json:"avg_amount"`
	OccurrenceCount    int             `json:"occurrence_count"`
	IsActive           bool            `json:"is_active"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
