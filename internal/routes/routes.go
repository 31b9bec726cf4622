package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	handler "bank-ledger-backend/internal/handlers"
	"bank-ledger-backend/internal/services/categorize"
	"bank-ledger-backend/internal/services/recurring"
	"bank-ledger-backend/internal/services/upload"
	"bank-ledger-backend/internal/statement"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	registry := statement.NewRegistry()

	categorizeService := categorize.NewService(db, registry)
	uploadService := upload.NewService(db, registry, categorizeService)
	recurringService := recurring.NewService(db)

	bankHandler := handler.NewBankHandler(registry)
	workspaceHandler := handler.NewWorkspaceHandler(db, categorizeService)
	ledgerHandler := handler.NewLedgerHandler(uploadService)
	patternHandler := handler.NewPatternHandler(categorizeService)
	recurringHandler := handler.NewRecurringHandler(recurringService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api.GET("/banks", bankHandler.List)

	workspaces := api.Group("/workspaces")
	workspaces.POST("", workspaceHandler.Create)
	workspaces.GET("/:id/ledgers", ledgerHandler.List)
	workspaces.GET("/:id/patterns", patternHandler.List)
	workspaces.POST("/:id/recurring/detect", recurringHandler.Detect)
	workspaces.GET("/:id/recurring", recurringHandler.List)
	workspaces.GET("/:id/recurring/summary", recurringHandler.Summary)

	ledgers := api.Group("/ledgers")
	ledgers.POST("/upload", ledgerHandler.Upload)
	ledgers.DELETE("/:id", ledgerHandler.Delete)

	patterns := api.Group("/patterns")
	patterns.POST("", patternHandler.Create)
	patterns.POST("/quick", patternHandler.CreateQuick)
	patterns.GET("/exists", patternHandler.Exists)
	patterns.DELETE("/:id", patternHandler.Delete)

	recurringGroup := api.Group("/recurring")
	recurringGroup.PUT("/:id", recurringHandler.Update)
	recurringGroup.POST("/:id/toggle", recurringHandler.Toggle)
	recurringGroup.DELETE("/:id", recurringHandler.Delete)
	recurringGroup.GET("/:id/transactions", recurringHandler.Transactions)
}
