package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/guttosm/idxboard/config"
	"github.com/guttosm/idxboard/internal/api"
	"github.com/guttosm/idxboard/internal/domain/models"
	"github.com/guttosm/idxboard/internal/logger"
	"github.com/guttosm/idxboard/internal/middleware"
	"github.com/guttosm/idxboard/internal/service"
	"github.com/guttosm/idxboard/internal/storage"
)

// closeTimeout bounds the MongoDB disconnect on shutdown.
const closeTimeout = 5 * time.Second

// InitializeApp sets up all application dependencies and returns
// a fully configured HTTP handler, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Creates the MongoDB store; the client connects on the first request.
//   - Initializes the repository layer (prices, financials, news).
//   - Creates the dashboard service and the HTTP handler layer.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Wraps the router with CORS.
//   - Provides a cleanup function to close resources (the MongoDB client).
//
// Returns:
//   - http.Handler: the router behind the CORS layer.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (http.Handler, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	variant := models.NewsVariant(cfg.Dashboard.NewsVariant)
	if variant != models.NewsIQPlus && variant != models.NewsHeadline {
		return nil, nil, fmt.Errorf("unsupported news variant %q", cfg.Dashboard.NewsVariant)
	}

	// Shared MongoDB store
	// indirection for unit testing
	store := storage.NewMongoStore(cfg.Mongo, mongoOpener)

	// Initialize repository layer (responsible for collection access)
	prices := storage.NewPriceRepository(store, cfg.Dashboard.PriceOrderField)
	financials := storage.NewFinancialRepository(store)
	news := storage.NewNewsRepository(store, cfg.Dashboard.NewsDatabase, cfg.Dashboard.NewsCollection, variant)

	// Initialize service layer (collection lookup and shaping)
	svc := service.NewDashboardService(prices, financials, news, service.Options{
		PriceCollection: cfg.Dashboard.PriceCollection,
		DefaultStock:    cfg.Dashboard.DefaultStock,
	})

	// Initialize HTTP handler layer (service results to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler, cfg.Server.RateLimitPerMinute)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(store.Ping)
	healthHandler.Register(router)

	logger.For("app").Info().
		Str("database", cfg.Mongo.Database).
		Str("price_collection", cfg.Dashboard.PriceCollection).
		Str("news", cfg.Dashboard.NewsDatabase+"."+cfg.Dashboard.NewsCollection).
		Str("news_variant", string(variant)).
		Msg("application initialized")

	// Cleanup resources on shutdown
	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if err := store.Close(ctx); err != nil {
			logger.For("app").Warn().Err(err).Msg("mongo disconnect failed")
		}
	}

	return middleware.CORS(cfg.Server.AllowedOrigins, router), cleanup, nil
}
