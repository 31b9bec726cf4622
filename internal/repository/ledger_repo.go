package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bank-ledger-backend/internal/models"
)

type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) Create(ledger *models.Ledger) error {
	return r.db.Create(ledger).Error
}

func (r *LedgerRepository) GetByID(id uuid.UUID) (*models.Ledger, error) {
	var ledger models.Ledger
	err := r.db.First(&ledger, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ledger, nil
}

// FindByHash returns the ledger with the given file hash in a workspace,
// or nil. Drives the re-upload-is-refresh behavior.
func (r *LedgerRepository) FindByHash(workspaceID uuid.UUID, fileHash string) (*models.Ledger, error) {
	var ledger models.Ledger
	err := r.db.First(&ledger, "workspace_id = ? AND file_hash = ?", workspaceID, fileHash).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ledger, nil
}

func (r *LedgerRepository) ListByWorkspace(workspaceID uuid.UUID) ([]models.Ledger, error) {
	var ledgers []models.Ledger
	err := r.db.Where("workspace_id = ?", workspaceID).Order("created_at DESC").Find(&ledgers).Error
	return ledgers, err
}

// DeleteWithTransactions removes a ledger together with its transaction
// rows. Callers wanting atomicity pass a transaction-scoped repository.
func (r *LedgerRepository) DeleteWithTransactions(id uuid.UUID) error {
	if err := r.db.Delete(&models.Transaction{}, "ledger_id = ?", id).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.Ledger{}, "id = ?", id).Error
}
