package main

//
//  @title           idxboard API
//  @version         1.0
//  @description     Read-only IDX stock and financial dashboard API over MongoDB.
//  @termsOfService  https://github.com/guttosm/idxboard
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/idxboard
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        stocks
//  @tag.description Ticker snapshots and close-price charts
//
//  @tag.name        financials
//  @tag.description Issuer financial statements
//
//  @tag.name        news
//  @tag.description Market news feed
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/idxboard/config"
	_ "github.com/guttosm/idxboard/docs" // swagger docs
	"github.com/guttosm/idxboard/internal/app"
	"github.com/guttosm/idxboard/internal/client"
	"github.com/guttosm/idxboard/internal/domain/models"
	"github.com/guttosm/idxboard/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., the MongoDB client).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runFetch loads one dashboard from a running server through the API client
// and writes it to w as indented JSON.
func runFetch(ctx context.Context, w io.Writer, baseURL string, g models.Granularity, stock, year string) error {
	c := client.New(baseURL, client.DefaultTimeout)
	d, err := c.LoadDashboard(ctx, g, stock, year)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// main is the entry point of the idxboard application.
//
// Modes (selected via --mode flag):
//   - api:   Starts the REST API over the MongoDB collections.
//   - fetch: Loads one dashboard from a running API and prints it as JSON.
//
// Flags:
//   - --mode:   Execution mode ("api" or "fetch"). Default: "api".
//   - --port:   Port for the API server. Defaults to value from config (SERVER_PORT).
//   - --url:    Base URL of the API for fetch mode.
//   - --period: Chart granularity for fetch mode (daily, monthly, annually).
//   - --stock:  Ticker for fetch mode. Defaults to DEFAULT_STOCK.
//   - --year:   Financial period key for fetch mode (e.g., 2024, 2025-q1).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or fetch")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	baseURL := flag.String("url", "http://localhost:"+config.AppConfig.Server.Port, "API base URL for fetch mode")
	period := flag.String("period", string(models.Daily), "Chart period for fetch mode: daily, monthly or annually")
	stock := flag.String("stock", config.AppConfig.Dashboard.DefaultStock, "Ticker for fetch mode")
	year := flag.String("year", "2025-q1", "Financial period for fetch mode: 2021-2024 or 2025-q1")
	flag.Parse()

	switch *mode {
	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "fetch":
		// Fetch mode: one-shot dashboard load through the API client
		if err := runFetch(ctx, os.Stdout, *baseURL, models.ParseGranularity(*period), *stock, *year); err != nil {
			logger.L().Fatal().Err(err).Msg("fetch failed")
		}

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
