package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is a persisted statement line. Amount is always a positive
// magnitude; Direction carries the sign semantics. Once IsManual is set the
// category is owned by the user and no automated sweep may change it.
type Transaction struct {
	ID                 uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	LedgerID           uuid.UUID           `gorm:"type:uuid;index" json:"ledger_id"`
	WorkspaceID        uuid.UUID           `gorm:"type:uuid;index" json:"workspace_id"`
	BankID             string              `gorm:"index" json:"bank_id"`
	Date               time.Time           `gorm:"index" json:"date"`
	Description        string              `json:"description"`
	Amount             decimal.Decimal     `gorm:"type:decimal(14,2)" json:"amount"`
	Balance            decimal.NullDecimal `gorm:"type:decimal(14,2)" json:"balance"`
	Direction          string              `gorm:"index" json:"direction"`
	RawText            string              `json:"raw_text"`
	CategoryID         *uuid.UUID          `gorm:"type:uuid;index" json:"category_id"`
	IsManual           bool                `json:"is_manual"`
	RecurringPatternID *uuid.UUID          `gorm:"type:uuid;index" json:"recurring_pattern_id"`
	CreatedAt          time.Time           `json:"created_at"`
}
