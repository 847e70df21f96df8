// Package main is the entry point for the catalog API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"bijoucatalog/internal/brands"
	"bijoucatalog/internal/cache"
	"bijoucatalog/internal/config"
	"bijoucatalog/internal/content"
	"bijoucatalog/internal/database"
	"bijoucatalog/internal/handlers"
	"bijoucatalog/internal/router"
	"bijoucatalog/internal/search"
	"bijoucatalog/internal/store"
)

func main() {
	// Structured logger — text output, debug level in every environment.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Local .env overrides for development; missing file is fine.
	if err := godotenv.Load(); err == nil {
		slog.Debug(".env file loaded")
	}

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"search_backend", cfg.SearchBackend,
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Initialize data stores.
	categoryStore := store.NewCategoryStore(db)
	brandStore := store.NewBrandStore(db)
	contentStore := store.NewContentStore(db)

	// Upstream category index registry. The local Postgres catalog is always
	// registered as the fallback backend.
	registry := search.NewRegistry(cfg.SearchBackend, map[string]search.ProviderConfig{
		"meilisearch": {Host: cfg.MeiliHost, APIKey: cfg.MeiliAPIKey, Index: cfg.MeiliIndex},
		"appsearch":   {Host: cfg.AppSearchHost, APIKey: cfg.AppSearchAPIKey, Index: cfg.AppSearchEngine},
	})
	registry.Register("postgres", search.NewPostgresProvider(categoryStore))

	slog.Info("search backends initialized",
		"active", registry.ActiveName(),
		"available", registry.Available(),
	)

	// Connect to Valkey (optional — without it every request rebuilds the
	// catalog from the upstream index).
	var responseCache *cache.ResponseCache
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey unavailable, catalog response cache disabled", "error", err)
	} else {
		defer valkeyClient.Close()
		responseCache = cache.NewResponseCache(valkeyClient, cache.DefaultCatalogTTL)
	}

	// Brand directory with its in-memory TTL cache.
	brandDirectory := brands.New(brandStore, cfg.BrandCacheTTL)

	// CMS content service (announcements, hero banners).
	contentService := content.NewService(contentStore)

	// Create handler groups with their dependencies.
	catalogHandlers := handlers.NewCatalog(registry, responseCache)
	storefrontHandlers := handlers.NewStorefront(brandDirectory, contentService)

	// Set up the Chi router with all middleware and routes.
	r := router.New(catalogHandlers, storefrontHandlers)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
