package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bank-ledger-backend/internal/models"
)

type RecurringRepository struct {
	db *gorm.DB
}

func NewRecurringRepository(db *gorm.DB) *RecurringRepository {
	return &RecurringRepository{db: db}
}

func (r *RecurringRepository) Create(pattern *models.RecurringPattern) error {
	return r.db.Create(pattern).Error
}

func (r *RecurringRepository) Save(pattern *models.RecurringPattern) error {
	return r.db.Save(pattern).Error
}

func (r *RecurringRepository) GetByID(id uuid.UUID) (*models.RecurringPattern, error) {
	var pattern models.RecurringPattern
	err := r.db.First(&pattern, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pattern, nil
}

func (r *RecurringRepository) ListByWorkspace(workspaceID uuid.UUID) ([]models.RecurringPattern, error) {
	var patterns []models.RecurringPattern
	err := r.db.Where("workspace_id = ?", workspaceID).Order("created_at ASC").Find(&patterns).Error
	return patterns, err
}

func (r *RecurringRepository) ListActive(workspaceID uuid.UUID) ([]models.RecurringPattern, error) {
	var patterns []models.RecurringPattern
	err := r.db.Where("workspace_id = ? AND is_active = ?", workspaceID, true).Find(&patterns).Error
	return patterns, err
}

func (r *RecurringRepository) DeleteByWorkspace(workspaceID uuid.UUID) error {
	return r.db.Delete(&models.RecurringPattern{}, "workspace_id = ?", workspaceID).Error
}

func (r *RecurringRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.RecurringPattern{}, "id = ?", id).Error
}
