package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"tradedeck/configs"
	"tradedeck/internal/adapter"
	"tradedeck/internal/adapter/telegram"
	delivery "tradedeck/internal/delivery/http"
	"tradedeck/internal/infra"
	"tradedeck/internal/provider"
	"tradedeck/internal/service"
	"tradedeck/internal/store"
	"tradedeck/internal/usecase"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Load configuration
	cfg := configs.Load()

	// Initialize backend bridge
	bridge := adapter.NewBackendBridge(cfg.Backend.URL)

	// Health check trading backend
	log.Println("Checking trading backend health...")
	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := bridge.HealthCheck(ctx); err != nil {
			log.Printf("WARNING: trading backend is not available: %v", err)
			log.Println("Dashboard will start anyway; bot and order actions will fall back or fail until it is up")
		} else {
			log.Println("✓ Trading backend is healthy")
		}
		cancel()
	}

	// Initialize the in-memory model
	watchlist := store.NewWatchlistStore()
	table := store.NewResultTable()

	// Initialize providers and services
	yahoo := provider.NewYahooProvider(cfg.Chart.YahooSuffix)
	notifier := telegram.NewNotificationService(cfg.Telegram.BotToken, cfg.Telegram.ChatID)

	dashboard := usecase.NewDashboardService(bridge, watchlist, table)
	charts := service.NewChartService(bridge, yahoo)
	orders := service.NewOrderDesk(bridge, notifier)

	// Seed watchlist and sample data
	symbols, err := configs.LoadWatchlist(cfg.Watchlist.File)
	if err != nil {
		log.Printf("WARNING: failed to load watchlist file: %v, using defaults", err)
		symbols, _ = configs.LoadWatchlist("")
	}
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		dashboard.Seed(ctx, symbols)
		cancel()
	}

	// Start the watchlist LTP refresh scheduler
	refresher := infra.NewRefreshScheduler(cfg.Watchlist.RefreshCron, watchlist, table, yahoo)
	if err := refresher.Start(); err != nil {
		log.Fatalf("Failed to start refresh scheduler: %v", err)
	}
	defer refresher.Stop()

	// Dashboard API server (echo)
	e := echo.New()
	e.HideBanner = true
	handler := delivery.NewDashboardHandler(dashboard, charts, orders)
	delivery.SetupRoutes(e, &delivery.RouterConfig{DashboardHandler: handler})

	// Ops server (chi): info, health, manual refresh trigger
	opsSrv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.OpsPort),
		Handler:      newOpsRouter(bridge, refresher),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 TradeDeck dashboard starting on %s (ops on :%s)", addr, cfg.Server.OpsPort)
	log.Printf("📊 Environment: %s", cfg.Server.Env)
	log.Printf("🔗 Trading backend: %s", cfg.Backend.URL)
	log.Println("========================================")

	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start dashboard server: %v", err)
		}
	}()
	go func() {
		if err := opsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start ops server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down servers...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Printf("ERROR: dashboard server forced to shutdown: %v", err)
	}
	if err := opsSrv.Shutdown(ctx); err != nil {
		log.Printf("ERROR: ops server forced to shutdown: %v", err)
	}

	log.Println("✓ Servers exited gracefully")
}

// newOpsRouter builds the operational surface served next to the dashboard
// API.
func newOpsRouter(bridge *adapter.BackendBridge, refresher *infra.RefreshScheduler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", handleRoot)
	r.Get("/health", handleHealth(bridge))
	r.Post("/refresh/trigger", handleTriggerRefresh(refresher))

	return r
}

func handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{
		"message": "TradeDeck dashboard controller - ops surface",
		"version": "0.1.0",
		"endpoints": {
			"health": "GET /health",
			"trigger_refresh": "POST /refresh/trigger"
		}
	}`))
}

func handleHealth(bridge *adapter.BackendBridge) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		backendStatus := "healthy"
		if err := bridge.HealthCheck(ctx); err != nil {
			backendStatus = "unhealthy"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(fmt.Sprintf(`{
			"status": "healthy",
			"service": "tradedeck-ops",
			"backend": "%s",
			"timestamp": "%s"
		}`, backendStatus, time.Now().Format(time.RFC3339))))
	}
}

func handleTriggerRefresh(refresher *infra.RefreshScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Println("Manual watchlist refresh triggered via API")

		go refresher.RunNow()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(`{
			"message": "Watchlist refresh triggered successfully",
			"status": "processing"
		}`))
	}
}
