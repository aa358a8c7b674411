package http

import (
	"github.com/gin-gonic/gin"
	"github.com/stylefit/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP, cfg.RateLimit.Burst))

	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		size := v1.Group("/size")
		{
			size.GET("/chart", handler.GetSizeChart)
			size.POST("/estimate", handler.EstimateSize)
			size.POST("/predict", handler.PredictSize)
		}

		color := v1.Group("/color")
		{
			color.POST("/analyze", handler.AnalyzeColors)
			color.GET("/palettes/:season/swatch.png", handler.GetPaletteSwatch)
		}
	}

	return router
}
