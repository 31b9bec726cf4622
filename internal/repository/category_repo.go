package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bank-ledger-backend/internal/models"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *CategoryRepository) GetByID(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// FindByName returns the category with the given name in a workspace, or
// nil when absent.
func (r *CategoryRepository) FindByName(workspaceID uuid.UUID, name string) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "workspace_id = ? AND name = ?", workspaceID, name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) ListByWorkspace(workspaceID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("workspace_id = ?", workspaceID).Order("name ASC").Find(&categories).Error
	return categories, err
}
