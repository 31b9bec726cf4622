// Package statement turns raw bank-statement PDFs into normalized
// transaction rows. Each supported bank registers a Parser; everything else
// in the service consumes ParseResult and never touches PDF bytes.
package statement

import "github.com/shopspring/decimal"

const (
	DirectionIncome  = "income"
	DirectionExpense = "expense"
)

type DecimalFormat string

const (
	DecimalFormatEuropean DecimalFormat = "european"
	DecimalFormatStandard DecimalFormat = "standard"
)

// BankConfig describes one registered bank. Immutable.
type BankConfig struct {
	ID            string        `json:"id"`
	DisplayName   string        `json:"display_name"`
	Country       string        `json:"country"`
	Currency      string        `json:"currency"`
	DateFormat    string        `json:"date_format"`
	DecimalFormat DecimalFormat `json:"decimal_format"`
}

// ParsedTransaction is one statement line, pre-persistence. Amount is a
// positive magnitude; Direction carries the sign semantics so sign
// conventions can't drift between banks.
type ParsedTransaction struct {
	Date        string              `json:"date"` // ISO-8601
	Description string              `json:"description"`
	Amount      decimal.Decimal     `json:"amount"`
	Balance     decimal.NullDecimal `json:"balance"`
	Direction   string              `json:"direction"`
	RawText     string              `json:"raw_text"`
}

// FlaggedLine is a candidate transaction line the parser refused to guess
// about (both debit and credit populated). Kept for manual review.
type FlaggedLine struct {
	RawText string `json:"raw_text"`
	Reason  string `json:"reason"`
}

// ParseResult is the full output of parsing one statement. Transactions are
// in document order. Period fields are empty strings when the statement
// carries no recognizable period header.
type ParseResult struct {
	FileHash     string              `json:"file_hash"`
	PeriodStart  string              `json:"period_start"`
	PeriodEnd    string              `json:"period_end"`
	Transactions []ParsedTransaction `json:"transactions"`
	FlaggedLines []FlaggedLine       `json:"flagged_lines"`
}

// CategorySeed is one default category plus its keyword patterns for a
// bank. Keyword index becomes the seeded pattern priority.
type CategorySeed struct {
	Category string
	Color    string
	Icon     string
	Keywords []string
}

// Parser is the per-bank capability: config, parse, and category seeds.
type Parser interface {
	Config() BankConfig
	Parse(data []byte) (*ParseResult, error)
	CategoryPatterns() []CategorySeed
}
