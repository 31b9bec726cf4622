package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bank-ledger-backend/internal/apperrors"
)

func TestFileHash_EmptyBuffer(t *testing.T) {
	got := FileHash(nil)
	assert.Len(t, got, 64)
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", got)
}

func TestFileHash_Lowercase(t *testing.T) {
	got := FileHash([]byte("%PDF-1.4 statement body"))
	assert.Len(t, got, 64)
	assert.Equal(t, got, FileHash([]byte("%PDF-1.4 statement body")))
	assert.Regexp(t, "^[0-9a-f]{64}$", got)
}

func TestIsPDF(t *testing.T) {
	assert.True(t, IsPDF([]byte("%PDF-1.7\n...")))
	assert.False(t, IsPDF([]byte("PK\x03\x04 zip archive")))
	assert.False(t, IsPDF([]byte("%PD")))
	assert.False(t, IsPDF(nil))
}

// Empty and non-PDF buffers must fail before any heuristic parsing; a
// silent zero-transaction result would hide parser drift.
func TestParse_RejectsNonPDF(t *testing.T) {
	for _, id := range []string{"bcp", "cgd"} {
		parser, ok := NewRegistry().Get(id)
		require.True(t, ok)

		_, err := parser.Parse(nil)
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeInvalidDocument, apperrors.CodeOf(err))

		_, err = parser.Parse([]byte("plain text, definitely not a statement"))
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeInvalidDocument, apperrors.CodeOf(err))
	}
}
