// Package upload drives a bank parser against an uploaded statement and
// persists the result: one ledger row plus its transactions, with category
// suggestions applied before storage.
package upload

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bank-ledger-backend/internal/apperrors"
	"bank-ledger-backend/internal/models"
	"bank-ledger-backend/internal/repository"
	"bank-ledger-backend/internal/statement"
)

// ParserLookup is the slice of the bank registry the orchestrator needs.
type ParserLookup interface {
	Get(bankID string) (statement.Parser, bool)
	SupportedIDs() []string
}

// Suggester is the slice of the pattern engine the orchestrator needs.
type Suggester interface {
	SuggestCategory(workspaceID uuid.UUID, bankID, description string) (*uuid.UUID, error)
}

type Service struct {
	db      *gorm.DB
	parsers ParserLookup
	suggest Suggester
	ledgers *repository.LedgerRepository
}

func NewService(db *gorm.DB, parsers ParserLookup, suggest Suggester) *Service {
	return &Service{
		db:      db,
		parsers: parsers,
		suggest: suggest,
		ledgers: repository.NewLedgerRepository(db),
	}
}

// UploadedTransaction is a parsed transaction plus the category the
// pattern engine suggested for it.
type UploadedTransaction struct {
	statement.ParsedTransaction
	CategoryID *uuid.UUID `json:"category_id"`
}

type Result struct {
	LedgerID         uuid.UUID             `json:"ledger_id"`
	Filename         string                `json:"filename"`
	BankID           string                `json:"bank_id"`
	TransactionCount int                   `json:"transaction_count"`
	PeriodStart      *time.Time            `json:"period_start"`
	PeriodEnd        *time.Time            `json:"period_end"`
	Transactions     []UploadedTransaction `json:"transactions"`
}

// Upload parses the statement, suggests categories, and persists ledger
// and transactions. A ledger with the same file hash in the same workspace
// is replaced, not rejected: re-uploading a statement means refresh.
func (s *Service) Upload(data []byte, filename, bankID string, workspaceID uuid.UUID) (*Result, error) {
	parser, ok := s.parsers.Get(bankID)
	if !ok {
		return nil, apperrors.UnsupportedBank(bankID, s.parsers.SupportedIDs())
	}

	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	uploaded := make([]UploadedTransaction, 0, len(parsed.Transactions))
	for _, pt := range parsed.Transactions {
		categoryID, err := s.suggest.SuggestCategory(workspaceID, bankID, pt.Description)
		if err != nil {
			return nil, err
		}
		uploaded = append(uploaded, UploadedTransaction{ParsedTransaction: pt, CategoryID: categoryID})
	}

	ledger := &models.Ledger{
		ID:               uuid.New(),
		WorkspaceID:      workspaceID,
		BankID:           bankID,
		Filename:         filename,
		FileHash:         parsed.FileHash,
		PeriodStart:      parseISODate(parsed.PeriodStart),
		PeriodEnd:        parseISODate(parsed.PeriodEnd),
		TransactionCount: len(uploaded),
		CreatedAt:        time.Now(),
	}
	if len(parsed.FlaggedLines) > 0 {
		flagged, err := json.Marshal(parsed.FlaggedLines)
		if err != nil {
			return nil, err
		}
		ledger.FlaggedLines = flagged
	}

	rows := make([]models.Transaction, 0, len(uploaded))
	for _, ut := range uploaded {
		rows = append(rows, models.Transaction{
			ID:          uuid.New(),
			LedgerID:    ledger.ID,
			WorkspaceID: workspaceID,
			BankID:      bankID,
			Date:        parseISODateValue(ut.Date),
			Description: ut.Description,
			Amount:      ut.Amount,
			Balance:     ut.Balance,
			Direction:   ut.Direction,
			RawText:     ut.RawText,
			CategoryID:  ut.CategoryID,
			CreatedAt:   time.Now(),
		})
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		ledgers := repository.NewLedgerRepository(tx)
		existing, err := ledgers.FindByHash(workspaceID, parsed.FileHash)
		if err != nil {
			return err
		}
		if existing != nil {
			if err := ledgers.DeleteWithTransactions(existing.ID); err != nil {
				return err
			}
		}
		if err := ledgers.Create(ledger); err != nil {
			return err
		}
		return repository.NewTransactionRepository(tx).CreateBatch(rows)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("statement uploaded",
		"workspace_id", workspaceID, "bank_id", bankID,
		"ledger_id", ledger.ID, "transactions", len(rows),
		"flagged_lines", len(parsed.FlaggedLines))

	return &Result{
		LedgerID:         ledger.ID,
		Filename:         filename,
		BankID:           bankID,
		TransactionCount: len(uploaded),
		PeriodStart:      ledger.PeriodStart,
		PeriodEnd:        ledger.PeriodEnd,
		Transactions:     uploaded,
	}, nil
}

// GetLedgerWorkspaceID is the single read exposed for authorization
// checks in the surrounding service.
func (s *Service) GetLedgerWorkspaceID(ledgerID uuid.UUID) (uuid.UUID, error) {
	ledger, err := s.ledgers.GetByID(ledgerID)
	if err != nil {
		return uuid.Nil, err
	}
	if ledger == nil {
		return uuid.Nil, apperrors.LedgerNotFound()
	}
	return ledger.WorkspaceID, nil
}

func (s *Service) ListLedgers(workspaceID uuid.UUID) ([]models.Ledger, error) {
	return s.ledgers.ListByWorkspace(workspaceID)
}

func (s *Service) DeleteLedger(ledgerID uuid.UUID) error {
	ledger, err := s.ledgers.GetByID(ledgerID)
	if err != nil {
		return err
	}
	if ledger == nil {
		return apperrors.LedgerNotFound()
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return repository.NewLedgerRepository(tx).DeleteWithTransactions(ledgerID)
	})
}

// parseISODate is lenient on purpose: a period field that never parsed to
// ISO stays nil rather than failing the upload.
func parseISODate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// parseISODateValue returns the zero time for unparseable dates; the
// original string is still preserved in RawText.
func parseISODateValue(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}
