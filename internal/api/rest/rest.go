package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/chaintrace/custody-api/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Liveness endpoint (no auth)
	router.GET("/health", handler.HealthCheck)

	// Item registration and audit trail
	router.POST("/items/register", handler.RegisterItem)
	router.GET("/items/:id/history", handler.GetItemHistory)

	// Signed custody scans
	router.POST("/scans", handler.SubmitScan)

	// Administrative handler authorization (API-key gated when keys are configured;
	// the ledger contract enforces the real authority either way)
	router.POST("/handlers/authorize", middleware.APIKeyAuth(authCfg), handler.AuthorizeHandler)
}
