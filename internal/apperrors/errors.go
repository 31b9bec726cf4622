// Package apperrors defines the typed, user-visible error taxonomy. Every
// error carries a stable machine code; handlers translate codes to HTTP
// statuses and anything without a code is treated as internal.
package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

const (
	CodeUnsupportedBank  = "unsupported_bank"
	CodeInvalidDocument  = "invalid_document"
	CodeDuplicatePattern = "duplicate_pattern"
	CodePatternNotFound  = "pattern_not_found"
	CodeLedgerNotFound   = "ledger_not_found"
)

type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// UnsupportedBank reports an unknown bank id along with the ids callers may use.
func UnsupportedBank(bankID string, supported []string) *Error {
	return &Error{
		Code:    CodeUnsupportedBank,
		Message: fmt.Sprintf("unsupported bank %q, supported banks: %s", bankID, strings.Join(supported, ", ")),
	}
}

func InvalidDocument(reason string) *Error {
	return &Error{Code: CodeInvalidDocument, Message: "invalid document: " + reason}
}

func DuplicatePattern(pattern string) *Error {
	return &Error{Code: CodeDuplicatePattern, Message: fmt.Sprintf("pattern %q already exists for this bank", pattern)}
}

func PatternNotFound() *Error {
	return &Error{Code: CodePatternNotFound, Message: "pattern not found"}
}

func LedgerNotFound() *Error {
	return &Error{Code: CodeLedgerNotFound, Message: "ledger not found"}
}

// CodeOf returns the stable code of err, or "" if err carries none.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
