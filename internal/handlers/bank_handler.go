package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bank-ledger-backend/internal/statement"
)

type BankHandler struct {
	registry *statement.Registry
}

func NewBankHandler(registry *statement.Registry) *BankHandler {
	return &BankHandler{registry: registry}
}

// List returns the supported banks for UI bank selection.
func (h *BankHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"banks": h.registry.List()})
}
