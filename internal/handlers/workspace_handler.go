package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bank-ledger-backend/internal/models"
	"bank-ledger-backend/internal/services/categorize"
)

type WorkspaceHandler struct {
	db         *gorm.DB
	categorize *categorize.Service
}

func NewWorkspaceHandler(db *gorm.DB, categorizeService *categorize.Service) *WorkspaceHandler {
	return &WorkspaceHandler{db: db, categorize: categorizeService}
}

// Create makes a workspace and seeds its default categories and bank
// keyword patterns.
func (h *WorkspaceHandler) Create(c *gin.Context) {
	var payload struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	workspace := &models.Workspace{
		ID:        uuid.New(),
		Name:      payload.Name,
		CreatedAt: time.Now(),
	}
	if err := h.db.Create(workspace).Error; err != nil {
		respondError(c, err)
		return
	}
	if err := h.categorize.SeedWorkspace(workspace.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"workspace": workspace})
}
