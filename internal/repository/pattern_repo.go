package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bank-ledger-backend/internal/models"
)

type PatternRepository struct {
	db *gorm.DB
}

func NewPatternRepository(db *gorm.DB) *PatternRepository {
	return &PatternRepository{db: db}
}

func (r *PatternRepository) Create(pattern *models.CategoryPattern) error {
	return r.db.Create(pattern).Error
}

func (r *PatternRepository) GetByID(id uint) (*models.CategoryPattern, error) {
	var pattern models.CategoryPattern
	err := r.db.First(&pattern, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pattern, nil
}

// Exists reports whether the pattern text is already taken for this bank
// anywhere in the workspace, across categories.
func (r *PatternRepository) Exists(workspaceID uuid.UUID, bankID, pattern string) (bool, error) {
	var count int64
	err := r.db.Model(&models.CategoryPattern{}).
		Where("workspace_id = ? AND bank_id = ? AND pattern = ?", workspaceID, bankID, pattern).
		Count(&count).Error
	return count > 0, err
}

// ListForBank returns patterns in resolution order: lowest priority value
// first, insertion order breaking ties.
func (r *PatternRepository) ListForBank(workspaceID uuid.UUID, bankID string) ([]models.CategoryPattern, error) {
	var patterns []models.CategoryPattern
	err := r.db.
		Where("workspace_id = ? AND bank_id = ?", workspaceID, bankID).
		Order("priority ASC, id ASC").
		Find(&patterns).Error
	return patterns, err
}

func (r *PatternRepository) ListByWorkspace(workspaceID uuid.UUID) ([]models.CategoryPattern, error) {
	var patterns []models.CategoryPattern
	err := r.db.
		Where("workspace_id = ?", workspaceID).
		Order("bank_id ASC, priority ASC, id ASC").
		Find(&patterns).Error
	return patterns, err
}

func (r *PatternRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.CategoryPattern{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
