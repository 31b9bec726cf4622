package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"bank-ledger-backend/internal/apperrors"
)

// respondError maps the typed error taxonomy to HTTP statuses. Errors
// without a code are internal: logged in full, surfaced as a generic 500.
func respondError(c *gin.Context, err error) {
	code := apperrors.CodeOf(err)
	switch code {
	case apperrors.CodeUnsupportedBank, apperrors.CodeInvalidDocument:
		c.JSON(http.StatusBadRequest, gin.H{"code": code, "error": err.Error()})
	case apperrors.CodeDuplicatePattern:
		c.JSON(http.StatusConflict, gin.H{"code": code, "error": err.Error()})
	case apperrors.CodePatternNotFound, apperrors.CodeLedgerNotFound:
		c.JSON(http.StatusNotFound, gin.H{"code": code, "error": err.Error()})
	default:
		slog.Error("internal error", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
