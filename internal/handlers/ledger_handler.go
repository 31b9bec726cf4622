package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bank-ledger-backend/internal/services/upload"
)

type LedgerHandler struct {
	upload *upload.Service
}

func NewLedgerHandler(uploadService *upload.Service) *LedgerHandler {
	return &LedgerHandler{upload: uploadService}
}

// Upload ingests one statement PDF: multipart file plus bank_id and
// workspace_id form fields.
func (h *LedgerHandler) Upload(c *gin.Context) {
	workspaceID, err := uuid.Parse(c.PostForm("workspace_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workspace ID"})
		return
	}
	bankID := c.PostForm("bank_id")
	if bankID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bank_id is required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.upload.Upload(data, fileHeader.Filename, bankID, workspaceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *LedgerHandler) List(c *gin.Context) {
	workspaceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workspace ID"})
		return
	}
	ledgers, err := h.upload.ListLedgers(workspaceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ledgers": ledgers})
}

func (h *LedgerHandler) Delete(c *gin.Context) {
	ledgerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ledger ID"})
		return
	}
	if err := h.upload.DeleteLedger(ledgerID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ledger deleted"})
}
