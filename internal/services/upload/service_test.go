package upload

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bank-ledger-backend/internal/apperrors"
	"bank-ledger-backend/internal/models"
	"bank-ledger-backend/internal/services/categorize"
	"bank-ledger-backend/internal/statement"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

// stubParser sidesteps PDF extraction so orchestration can be tested with
// plain byte fixtures. The file hash is still computed from the input.
type stubParser struct {
	result statement.ParseResult
}

func (p *stubParser) Config() statement.BankConfig {
	return statement.BankConfig{ID: "stub", DisplayName: "Stub Bank", Country: "PT", Currency: "EUR"}
}

func (p *stubParser) Parse(data []byte) (*statement.ParseResult, error) {
	if len(data) == 0 {
		return nil, apperrors.InvalidDocument("empty file")
	}
	res := p.result
	res.FileHash = statement.FileHash(data)
	return &res, nil
}

func (p *stubParser) CategoryPatterns() []statement.CategorySeed { return nil }

type stubRegistry struct {
	parser statement.Parser
}

func (r *stubRegistry) Get(bankID string) (statement.Parser, bool) {
	if bankID == "stub" {
		return r.parser, true
	}
	return nil, false
}

func (r *stubRegistry) SupportedIDs() []string { return []string{"stub"} }

func parsedTx(date, description, amount string) statement.ParsedTransaction {
	return statement.ParsedTransaction{
		Date:        date,
		Description: description,
		Amount:      decimal.RequireFromString(amount),
		Balance:     decimal.NewNullDecimal(decimal.RequireFromString("100.00")),
		Direction:   statement.DirectionExpense,
		RawText:     date + " " + description + " " + amount,
	}
}

func newTestService(t *testing.T, result statement.ParseResult) (*Service, *gorm.DB) {
	db := newTestDB(t)
	registry := &stubRegistry{parser: &stubParser{result: result}}
	suggester := categorize.NewService(db, statement.NewRegistry())
	return NewService(db, registry, suggester), db
}

func TestUpload_UnsupportedBank(t *testing.T) {
	svc, _ := newTestService(t, statement.ParseResult{})

	_, err := svc.Upload([]byte("%PDF-1.4"), "extrato.pdf", "unknown", uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeUnsupportedBank, apperrors.CodeOf(err))
	assert.Contains(t, err.Error(), "stub")
}

func TestUpload_PersistsLedgerAndTransactions(t *testing.T) {
	svc, db := newTestService(t, statement.ParseResult{
		PeriodStart: "2024-11-01",
		PeriodEnd:   "2024-11-30",
		Transactions: []statement.ParsedTransaction{
			parsedTx("2024-11-15", "COMPRA CONTINENTE", "23.45"),
			parsedTx("2024-11-16", "PAGAMENTO NETFLIX", "9.99"),
		},
	})
	workspaceID := uuid.New()

	result, err := svc.Upload([]byte("%PDF-1.4 fixture"), "extrato.pdf", "stub", workspaceID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.TransactionCount)
	assert.Equal(t, "extrato.pdf", result.Filename)
	require.NotNil(t, result.PeriodStart)
	assert.Equal(t, time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), *result.PeriodStart)

	var txCount int64
	require.NoError(t, db.Model(&models.Transaction{}).Where("ledger_id = ?", result.LedgerID).Count(&txCount).Error)
	assert.Equal(t, int64(2), txCount)
}

// Re-uploading the same bytes is refresh, not conflict: the prior ledger
// is replaced and the ledger count stays at one.
func TestUpload_DuplicateReplacesLedger(t *testing.T) {
	svc, db := newTestService(t, statement.ParseResult{
		Transactions: []statement.ParsedTransaction{
			parsedTx("2024-11-15", "COMPRA CONTINENTE", "23.45"),
		},
	})
	workspaceID := uuid.New()
	data := []byte("%PDF-1.4 same bytes")

	first, err := svc.Upload(data, "extrato.pdf", "stub", workspaceID)
	require.NoError(t, err)
	second, err := svc.Upload(data, "extrato-v2.pdf", "stub", workspaceID)
	require.NoError(t, err)
	assert.NotEqual(t, first.LedgerID, second.LedgerID)

	var ledgerCount int64
	require.NoError(t, db.Model(&models.Ledger{}).Where("workspace_id = ?", workspaceID).Count(&ledgerCount).Error)
	assert.Equal(t, int64(1), ledgerCount)

	// transaction rows reflect the latest parse, none orphaned
	var txs []models.Transaction
	require.NoError(t, db.Where("workspace_id = ?", workspaceID).Find(&txs).Error)
	require.Len(t, txs, 1)
	assert.Equal(t, second.LedgerID, txs[0].LedgerID)
}

func TestUpload_SameBytesOtherWorkspaceKept(t *testing.T) {
	svc, db := newTestService(t, statement.ParseResult{
		Transactions: []statement.ParsedTransaction{
			parsedTx("2024-11-15", "COMPRA CONTINENTE", "23.45"),
		},
	})
	data := []byte("%PDF-1.4 shared statement")

	_, err := svc.Upload(data, "a.pdf", "stub", uuid.New())
	require.NoError(t, err)
	_, err = svc.Upload(data, "b.pdf", "stub", uuid.New())
	require.NoError(t, err)

	var ledgerCount int64
	require.NoError(t, db.Model(&models.Ledger{}).Count(&ledgerCount).Error)
	assert.Equal(t, int64(2), ledgerCount)
}

func TestUpload_AppliesCategorySuggestions(t *testing.T) {
	svc, db := newTestService(t, statement.ParseResult{
		Transactions: []statement.ParsedTransaction{
			parsedTx("2024-11-15", "COMPRA SUPERMARKET LISBOA", "23.45"),
			parsedTx("2024-11-16", "LEV MULTIBANCO", "50.00"),
		},
	})
	workspaceID := uuid.New()
	groceries := models.Category{ID: uuid.New(), WorkspaceID: workspaceID, Name: "Groceries", CreatedAt: time.Now()}
	require.NoError(t, db.Create(&groceries).Error)
	require.NoError(t, db.Create(&models.CategoryPattern{
		WorkspaceID: workspaceID,
		CategoryID:  groceries.ID,
		BankID:      "stub",
		Pattern:     "supermarket",
		CreatedAt:   time.Now(),
	}).Error)

	result, err := svc.Upload([]byte("%PDF-1.4 fixture"), "extrato.pdf", "stub", workspaceID)
	require.NoError(t, err)

	require.NotNil(t, result.Transactions[0].CategoryID)
	assert.Equal(t, groceries.ID, *result.Transactions[0].CategoryID)
	assert.Nil(t, result.Transactions[1].CategoryID)
}

func TestUpload_StoresFlaggedLines(t *testing.T) {
	svc, db := newTestService(t, statement.ParseResult{
		Transactions: []statement.ParsedTransaction{
			parsedTx("2024-11-15", "COMPRA CONTINENTE", "23.45"),
		},
		FlaggedLines: []statement.FlaggedLine{
			{RawText: "15.10.2024 ESTORNO 5,00 5,00 1.159,80", Reason: "debit and credit both populated, amount ambiguous"},
		},
	})

	result, err := svc.Upload([]byte("%PDF-1.4 fixture"), "extrato.pdf", "stub", uuid.New())
	require.NoError(t, err)

	var ledger models.Ledger
	require.NoError(t, db.First(&ledger, "id = ?", result.LedgerID).Error)
	assert.Contains(t, string(ledger.FlaggedLines), "ESTORNO")
}

func TestGetLedgerWorkspaceID(t *testing.T) {
	svc, _ := newTestService(t, statement.ParseResult{
		Transactions: []statement.ParsedTransaction{
			parsedTx("2024-11-15", "COMPRA CONTINENTE", "23.45"),
		},
	})
	workspaceID := uuid.New()

	result, err := svc.Upload([]byte("%PDF-1.4 fixture"), "extrato.pdf", "stub", workspaceID)
	require.NoError(t, err)

	got, err := svc.GetLedgerWorkspaceID(result.LedgerID)
	require.NoError(t, err)
	assert.Equal(t, workspaceID, got)

	_, err = svc.GetLedgerWorkspaceID(uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeLedgerNotFound, apperrors.CodeOf(err))
}

func TestDeleteLedger(t *testing.T) {
	svc, db := newTestService(t, statement.ParseResult{
		Transactions: []statement.ParsedTransaction{
			parsedTx("2024-11-15", "COMPRA CONTINENTE", "23.45"),
		},
	})
	workspaceID := uuid.New()

	result, err := svc.Upload([]byte("%PDF-1.4 fixture"), "extrato.pdf", "stub", workspaceID)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteLedger(result.LedgerID))

	var count int64
	require.NoError(t, db.Model(&models.Transaction{}).Where("ledger_id = ?", result.LedgerID).Count(&count).Error)
	assert.Zero(t, count)

	err = svc.DeleteLedger(result.LedgerID)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeLedgerNotFound, apperrors.CodeOf(err))
}
