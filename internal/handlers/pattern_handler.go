package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bank-ledger-backend/internal/services/categorize"
)

type PatternHandler struct {
	categorize *categorize.Service
}

func NewPatternHandler(categorizeService *categorize.Service) *PatternHandler {
	return &PatternHandler{categorize: categorizeService}
}

type patternPayload struct {
	WorkspaceID string `json:"workspace_id" binding:"required"`
	CategoryID  string `json:"category_id" binding:"required"`
	BankID      string `json:"bank_id" binding:"required"`
	Pattern     string `json:"pattern" binding:"required"`
	Priority    int    `json:"priority"`
}

func (p *patternPayload) ids() (workspaceID, categoryID uuid.UUID, ok bool) {
	workspaceID, err := uuid.Parse(p.WorkspaceID)
	if err != nil {
		return uuid.Nil, uuid.Nil, false
	}
	categoryID, err = uuid.Parse(p.CategoryID)
	if err != nil {
		return uuid.Nil, uuid.Nil, false
	}
	return workspaceID, categoryID, true
}

// Create adds a pattern and reports how many transactions the sweep
// recategorized.
func (h *PatternHandler) Create(c *gin.Context) {
	var payload patternPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	workspaceID, categoryID, ok := payload.ids()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workspace or category ID"})
		return
	}

	patternID, recategorized, err := h.categorize.CreatePattern(workspaceID, categoryID, payload.BankID, payload.Pattern, payload.Priority)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"pattern_id": patternID, "recategorized": recategorized})
}

// CreateQuick is the upload-review variant: same creation and sweep, but
// the affected count stays server-side.
func (h *PatternHandler) CreateQuick(c *gin.Context) {
	var payload patternPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	workspaceID, categoryID, ok := payload.ids()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workspace or category ID"})
		return
	}

	patternID, err := h.categorize.CreateQuickPattern(workspaceID, categoryID, payload.BankID, payload.Pattern, payload.Priority)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"pattern_id": patternID})
}

func (h *PatternHandler) Exists(c *gin.Context) {
	workspaceID, err := uuid.Parse(c.Query("workspace_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workspace ID"})
		return
	}
	bankID := c.Query("bank_id")
	pattern := c.Query("pattern")
	if bankID == "" || pattern == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bank_id and pattern are required"})
		return
	}

	exists, err := h.categorize.CheckPatternExists(workspaceID, bankID, pattern)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

func (h *PatternHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pattern ID"})
		return
	}
	if err := h.categorize.DeletePattern(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pattern deleted"})
}

func (h *PatternHandler) List(c *gin.Context) {
	workspaceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workspace ID"})
		return
	}
	patterns, err := h.categorize.ListPatterns(workspaceID, c.Query("bank_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patterns": patterns})
}
