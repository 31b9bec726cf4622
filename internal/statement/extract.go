package statement

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"bank-ledger-backend/internal/apperrors"
)

var pdfMagic = []byte("%PDF")

// IsPDF reports whether data starts with the %PDF magic bytes.
func IsPDF(data []byte) bool {
	return len(data) >= len(pdfMagic) && bytes.Equal(data[:len(pdfMagic)], pdfMagic)
}

// FileHash is the lowercase hex SHA-256 of the whole input buffer, 64
// characters. Computed over the original bytes, used for duplicate-upload
// detection per workspace.
func FileHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// extractLines pulls text rows out of a PDF, one line per visual row, with
// row chunks joined by single spaces.
func extractLines(data []byte) (lines []string, err error) {
	// ledongthuc/pdf panics on some malformed documents instead of
	// returning an error; treat that the same as an unreadable file.
	defer func() {
		if r := recover(); r != nil {
			lines = nil
			err = apperrors.InvalidDocument(fmt.Sprintf("unreadable pdf: %v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, apperrors.InvalidDocument("unreadable pdf: " + err.Error())
	}

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, apperrors.InvalidDocument(fmt.Sprintf("page %d: %v", i, err))
		}
		for _, row := range rows {
			var sb strings.Builder
			for _, chunk := range row.Content {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(chunk.S)
			}
			if line := strings.TrimSpace(sb.String()); line != "" {
				lines = append(lines, line)
			}
		}
	}
	return lines, nil
}

// parseDocument runs the shared front half of every bank parser: reject
// empty and non-PDF input loudly (zero transactions out of a large
// statement means parser drift, not an empty statement), extract text, let
// the bank-specific line parser do its work, then attach the file hash.
func parseDocument(data []byte, parseLines func([]string) *ParseResult) (*ParseResult, error) {
	if len(data) == 0 {
		return nil, apperrors.InvalidDocument("empty file")
	}
	if !IsPDF(data) {
		return nil, apperrors.InvalidDocument("missing %PDF header")
	}
	lines, err := extractLines(data)
	if err != nil {
		return nil, err
	}
	result := parseLines(lines)
	result.FileHash = FileHash(data)
	return result, nil
}
