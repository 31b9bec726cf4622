package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Ledger is one imported bank statement (one PDF upload) and owns the
// transactions parsed out of it. FileHash is the SHA-256 of the original
// bytes and drives duplicate-upload detection per workspace.
type Ledger struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	WorkspaceID      uuid.UUID      `gorm:"type:uuid;index:idx_workspace_file_hash" json:"workspace_id"`
	BankID           string         `gorm:"index" json:"bank_id"`
	Filename         string         `json:"filename"`
	FileHash         string         `gorm:"type:char(64);index:idx_workspace_file_hash" json:"file_hash"`
	PeriodStart      *time.Time     `json:"period_start"`
	PeriodEnd        *time.Time     `json:"period_end"`
	TransactionCount int            `json:"transaction_count"`
	FlaggedLines     datatypes.JSON `json:"flagged_lines"`
	CreatedAt        time.Time      `json:"created_at"`
}
