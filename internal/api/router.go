package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/idxboard/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// requestTimeout bounds every request, including its store queries.
const requestTimeout = 10 * time.Second

// NewRouter creates a Gin engine with routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, RateLimiter).
//   - Adds request timeout handling.
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures the dashboard routes under /api.
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler, ratePerMinute int) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(ratePerMinute),
	)

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── Dashboard API ────────────────────────────
	dash := router.Group("/api")
	{
		dash.GET("/stock-data", handler.GetStockData)
		dash.GET("/stock-chart", handler.GetStockChart)
		dash.GET("/financial-summary", handler.GetFinancialSummary)
		dash.GET("/news", handler.GetNews)
	}

	return router
}
