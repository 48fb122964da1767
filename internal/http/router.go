package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	documentsHTTP "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/documents/http"
	keysHTTP "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/keys/http"
)

// RouterConfig carries the middleware configuration for the API router.
type RouterConfig struct {
	Logger            *slog.Logger
	RateLimitEnabled  bool
	RateLimitRPS      float64
	RateLimitBurst    int
	CORSEnabled       bool
	CORSAllowOrigins  string
	MetricsMiddleware gin.HandlerFunc
}

// NewRouter builds the API router with middleware and all v1 routes.
func NewRouter(
	documentHandler *documentsHTTP.DocumentHandler,
	keyHandler *keysHTTP.KeyHandler,
	cfg RouterConfig,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(CustomLoggerMiddleware(cfg.Logger))

	if cors := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, cfg.Logger); cors != nil {
		router.Use(cors)
	}

	if cfg.MetricsMiddleware != nil {
		router.Use(cfg.MetricsMiddleware)
	}

	if cfg.RateLimitEnabled {
		router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.Logger))
	}

	// Health and readiness endpoints
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	v1 := router.Group("/v1")
	{
		v1.POST("/documents", documentHandler.ProcessHandler)
		v1.GET("/documents", documentHandler.ListHandler)
		v1.GET("/documents/:id", documentHandler.GetHandler)
		v1.POST("/documents/:id/decrypt", documentHandler.DecryptHandler)
		v1.GET("/documents/:id/audit", documentHandler.ListAuditHandler)
		v1.GET("/documents/:id/key", keyHandler.GetHandler)
		v1.POST("/documents/:id/key/download", keyHandler.DownloadHandler)
	}

	return router
}
