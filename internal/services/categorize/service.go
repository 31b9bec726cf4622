// Package categorize is the category pattern engine: per-workspace,
// per-bank keyword patterns with priorities, suggestion for new
// transactions and recategorization sweeps over existing ones.
package categorize

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bank-ledger-backend/internal/apperrors"
	"bank-ledger-backend/internal/models"
	"bank-ledger-backend/internal/repository"
	"bank-ledger-backend/internal/statement"
)

type Service struct {
	db         *gorm.DB
	registry   *statement.Registry
	patterns   *repository.PatternRepository
	categories *repository.CategoryRepository
}

func NewService(db *gorm.DB, registry *statement.Registry) *Service {
	return &Service{
		db:         db,
		registry:   registry,
		patterns:   repository.NewPatternRepository(db),
		categories: repository.NewCategoryRepository(db),
	}
}

// SuggestCategory matches a description against the workspace's patterns
// for one bank. Case-insensitive substring match; the lowest priority
// value wins and ties resolve to the earliest-created pattern, so the
// repository's resolution ordering is the whole algorithm. Returns nil
// when nothing matches.
func (s *Service) SuggestCategory(workspaceID uuid.UUID, bankID, description string) (*uuid.UUID, error) {
	patterns, err := s.patterns.ListForBank(workspaceID, bankID)
	if err != nil {
		return nil, err
	}
	d := strings.ToLower(description)
	for _, p := range patterns {
		if strings.Contains(d, strings.ToLower(p.Pattern)) {
			categoryID := p.CategoryID
			return &categoryID, nil
		}
	}
	return nil, nil
}

// CreatePattern adds a pattern and immediately recategorizes every
// matching non-manual transaction of that bank in the workspace. The
// duplicate check, the create and the sweep run in one transaction; a
// reader never observes a half-recategorized workspace and a racing
// duplicate still surfaces as duplicate_pattern, not as a raw unique
// constraint violation. Returns the new pattern id and the number of
// transactions affected.
func (s *Service) CreatePattern(workspaceID, categoryID uuid.UUID, bankID, pattern string, priority int) (uint, int64, error) {
	var patternID uint
	var recategorized int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		patterns := repository.NewPatternRepository(tx)
		exists, err := patterns.Exists(workspaceID, bankID, pattern)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.DuplicatePattern(pattern)
		}

		row := &models.CategoryPattern{
			WorkspaceID: workspaceID,
			CategoryID:  categoryID,
			BankID:      bankID,
			Pattern:     pattern,
			Priority:    priority,
			CreatedAt:   time.Now(),
		}
		if err := patterns.Create(row); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.DuplicatePattern(pattern)
			}
			return err
		}
		n, err := repository.NewTransactionRepository(tx).SweepCategory(workspaceID, bankID, pattern, categoryID)
		if err != nil {
			return err
		}
		patternID = row.ID
		recategorized = n
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	slog.Info("pattern created",
		"workspace_id", workspaceID, "bank_id", bankID,
		"pattern", pattern, "recategorized", recategorized)
	return patternID, recategorized, nil
}

// CreateQuickPattern is CreatePattern for the upload-review flow; the
// caller already holds the transaction list and updates it optimistically,
// so the affected count is not reported back.
func (s *Service) CreateQuickPattern(workspaceID, categoryID uuid.UUID, bankID, pattern string, priority int) (uint, error) {
	id, _, err := s.CreatePattern(workspaceID, categoryID, bankID, pattern, priority)
	return id, err
}

// DeletePattern removes a pattern. Already-categorized transactions keep
// their category.
func (s *Service) DeletePattern(id uint) error {
	rows, err := s.patterns.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.PatternNotFound()
	}
	return nil
}

func (s *Service) CheckPatternExists(workspaceID uuid.UUID, bankID, pattern string) (bool, error) {
	return s.patterns.Exists(workspaceID, bankID, pattern)
}

func (s *Service) ListPatterns(workspaceID uuid.UUID, bankID string) ([]models.CategoryPattern, error) {
	if bankID != "" {
		return s.patterns.ListForBank(workspaceID, bankID)
	}
	return s.patterns.ListByWorkspace(workspaceID)
}

// SeedWorkspace creates the default categories and, per supported bank,
// the seed keyword patterns. Keyword index within a category's list
// becomes the pattern priority, so seeding is deterministic and
// reproducible.
func (s *Service) SeedWorkspace(workspaceID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		categories := repository.NewCategoryRepository(tx)
		patterns := repository.NewPatternRepository(tx)

		for _, bankID := range s.registry.SupportedIDs() {
			parser, ok := s.registry.Get(bankID)
			if !ok {
				continue
			}
			for _, seed := range parser.CategoryPatterns() {
				category, err := categories.FindByName(workspaceID, seed.Category)
				if err != nil {
					return err
				}
				if category == nil {
					category = &models.Category{
						ID:          uuid.New(),
						WorkspaceID: workspaceID,
						Name:        seed.Category,
						Color:       seed.Color,
						Icon:        seed.Icon,
						IsDefault:   true,
						CreatedAt:   time.Now(),
					}
					if err := categories.Create(category); err != nil {
						return err
					}
				}
				for i, keyword := range seed.Keywords {
					if err := patterns.Create(&models.CategoryPattern{
						WorkspaceID: workspaceID,
						CategoryID:  category.ID,
						BankID:      bankID,
						Pattern:     keyword,
						Priority:    i,
						CreatedAt:   time.Now(),
					}); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}
