package statement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseDecimal_European(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"thousands and decimal", "1.234,56", "1234.56"},
		{"plain decimal", "0,99", "0.99"},
		{"negative", "-23,45", "-23.45"},
		{"no separators", "1234,56", "1234.56"},
		{"millions", "1.234.567,89", "1234567.89"},
		{"surrounding whitespace", "  12,00  ", "12"},
		{"empty", "", "0"},
		{"whitespace only", "   ", "0"},
		{"garbage", "n/a", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDecimal(tt.input, DecimalFormatEuropean)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"ParseDecimal(%q) = %s, want %s", tt.input, got, tt.want)
		})
	}
}

func TestParseDecimal_Standard(t *testing.T) {
	got := ParseDecimal("1,234.56", DecimalFormatStandard)
	assert.True(t, got.Equal(decimal.RequireFromString("1234.56")))
}

func TestParseStatementDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"two-digit year below pivot", "15.11.24", "2024-11-15"},
		{"two-digit year at pivot", "15.11.50", "2050-11-15"},
		{"two-digit year above pivot", "15.11.51", "1951-11-15"},
		{"four-digit year", "01.11.2024", "2024-11-01"},
		{"with whitespace", " 03.02.25 ", "2025-02-03"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStatementDate(tt.input))
		})
	}
}

// Unrecognized input passes through unchanged; downstream code detects
// non-date strings by equality, not by error.
func TestParseStatementDate_Passthrough(t *testing.T) {
	for _, input := range []string{"", "not a date", "2024-11-15", "15/11/2024", "1.1.24"} {
		assert.Equal(t, input, ParseStatementDate(input))
	}
}
