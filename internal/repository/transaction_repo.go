package repository

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bank-ledger-backend/internal/models"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}
	return r.db.Create(&transactions).Error
}

func (r *TransactionRepository) ListByLedger(ledgerID uuid.UUID) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.Where("ledger_id = ?", ledgerID).Order("created_at ASC").Find(&txs).Error
	return txs, err
}

func (r *TransactionRepository) ListByWorkspace(workspaceID uuid.UUID) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.Where("workspace_id = ?", workspaceID).Order("date ASC").Find(&txs).Error
	return txs, err
}

func (r *TransactionRepository) ListByRecurringPattern(patternID uuid.UUID) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.Where("recurring_pattern_id = ?", patternID).Order("date ASC").Find(&txs).Error
	return txs, err
}

// likeEscaper neutralizes LIKE metacharacters so a pattern is always a
// literal substring, matching the strings.Contains semantics of the
// suggestion path.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SweepCategory recategorizes every non-manual transaction of a bank in a
// workspace whose description contains the pattern, case-insensitively.
// Manual transactions are excluded in the WHERE clause, never in Go code,
// so the invariant holds no matter who calls this.
func (r *TransactionRepository) SweepCategory(workspaceID uuid.UUID, bankID, pattern string, categoryID uuid.UUID) (int64, error) {
	like := "%" + likeEscaper.Replace(strings.ToLower(pattern)) + "%"
	result := r.db.Model(&models.Transaction{}).
		Where("workspace_id = ? AND bank_id = ? AND is_manual = ?", workspaceID, bankID, false).
		Where(`LOWER(description) LIKE ? ESCAPE '\'`, like).
		Update("category_id", categoryID)
	return result.RowsAffected, result.Error
}

// LinkRecurring points a set of transactions at a recurring pattern.
func (r *TransactionRepository) LinkRecurring(ids []uuid.UUID, patternID uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&models.Transaction{}).
		Where("id IN ?", ids).
		Update("recurring_pattern_id", patternID).Error
}

// UnlinkRecurring clears the back-reference for one pattern. Transactions
// themselves are untouched.
func (r *TransactionRepository) UnlinkRecurring(patternID uuid.UUID) error {
	return r.db.Model(&models.Transaction{}).
		Where("recurring_pattern_id = ?", patternID).
		Update("recurring_pattern_id", nil).Error
}

// ClearRecurringLinks resets every back-reference in a workspace ahead of
// a detection rebuild.
func (r *TransactionRepository) ClearRecurringLinks(workspaceID uuid.UUID) error {
	return r.db.Model(&models.Transaction{}).
		Where("workspace_id = ? AND recurring_pattern_id IS NOT NULL", workspaceID).
		Update("recurring_pattern_id", nil).Error
}
