package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/tagin-labs/tagin-verifier/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Product registration (requires manufacturer JWT)
		v1.POST("/products", middleware.Auth(authCfg), handler.RegisterProduct)

		// Product passport endpoints (public read access)
		v1.GET("/products/:token_id", handler.GetProduct)
		v1.GET("/products", handler.ListProducts)

		// Verification endpoint (public; scan pages call this directly)
		v1.POST("/verifications", handler.Verify)

		// Scan telemetry ingestion (requires authentication)
		v1.POST("/scans", middleware.Auth(authCfg), handler.AppendScan)

		// Analytics endpoints (requires authentication)
		v1.GET("/analytics/scan-stats", middleware.Auth(authCfg), handler.GetScanStats)
		v1.GET("/analytics/mismatch-heatmap", middleware.Auth(authCfg), handler.GetMismatchHeatmap)

		// Transfer endpoints (requires authentication)
		v1.POST("/transfers", middleware.Auth(authCfg), handler.StartTransfer)
		v1.GET("/transfers/:workflow_id", middleware.Auth(authCfg), handler.GetTransferStatus)

		// Whitelist administration (requires API key authentication only)
		v1.PUT("/whitelist/:address", middleware.APIKeyAuth(authCfg), handler.UpdateWhitelist)
	}
}
