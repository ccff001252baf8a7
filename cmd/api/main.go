package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/shopsmart/shopsmart-backend/internal/modules/assist"
	"github.com/shopsmart/shopsmart-backend/internal/modules/catalog"
	"github.com/shopsmart/shopsmart-backend/internal/modules/customer"
	"github.com/shopsmart/shopsmart-backend/internal/modules/report"
	"github.com/shopsmart/shopsmart-backend/internal/modules/reseller"
	"github.com/shopsmart/shopsmart-backend/internal/modules/sale"
	"github.com/shopsmart/shopsmart-backend/internal/modules/settings"
	"github.com/shopsmart/shopsmart-backend/internal/modules/syncstatus"
	"github.com/shopsmart/shopsmart-backend/internal/storage"
)

func main() {
	// .env is optional; all settings have defaults.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	dbPath := os.Getenv("SHOPSMART_DB")
	if dbPath == "" {
		dbPath = "shopsmart.db"
	}
	store, err := storage.NewSQLite(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()
	logger.Info("database ready", "path", dbPath)

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// ── Catalog & Customers ─────────────────────────────────
	catalogRepo := catalog.NewKVRepository(store, logger)
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	customerRepo := customer.NewKVRepository(store, logger)
	customerService := customer.NewService(customerRepo)
	customer.NewHandler(customerService).RegisterRoutes(router)

	// ── Sync indicator ──────────────────────────────────────
	tracker := syncstatus.NewTracker(syncstatus.DefaultDelay)
	syncstatus.NewHandler(tracker).RegisterRoutes(router)

	// ── Sales & Reporting ───────────────────────────────────
	saleRepo := sale.NewKVRepository(store, logger)
	saleService := sale.NewService(saleRepo, catalogRepo, customerRepo,
		sale.WithCommitHook(tracker.Trigger))
	sale.NewHandler(saleService).RegisterRoutes(router)

	reportService := report.NewService(saleRepo)
	report.NewHandler(reportService).RegisterRoutes(router)

	// ── Settings ────────────────────────────────────────────
	settingsService := settings.NewService(store, logger)
	settings.NewHandler(settingsService).RegisterRoutes(router)

	// ── Shop Assistant ──────────────────────────────────────
	assistClient := assist.NewClient(os.Getenv("GEMINI_API_KEY"), logger)
	assist.NewHandler(assistClient, func() string {
		name, err := settingsService.ShopName(context.Background())
		if err != nil {
			return ""
		}
		return name
	}).RegisterRoutes(router)

	// ── Reseller ────────────────────────────────────────────
	resellerService := reseller.NewService(store)
	reseller.NewHandler(resellerService).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("ShopSmart API server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
	logger.Info("server stopped")
}

// corsOrigins reads CORS_ORIGINS as a comma-separated list, defaulting
// to the local dev frontend.
func corsOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return []string{"http://localhost:5173", "http://localhost:8080"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
