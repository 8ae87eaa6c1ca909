package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"household-ledger/internal/config"
	"household-ledger/internal/database"
	"household-ledger/internal/handlers"
	custommiddleware "household-ledger/internal/middleware"
	"household-ledger/internal/repositories"
	"household-ledger/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	transactionRepo := repositories.NewTransactionRepository(db)

	// Services
	metricsRecorder := services.NewPrometheusMetrics()
	dashboardService := services.NewDashboardService(transactionRepo, metricsRecorder)

	// Handlers
	transactionHandler := handlers.NewTransactionHandler(transactionRepo, metricsRecorder)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	metaHandler := handlers.NewMetaHandler()
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommiddleware.CustomHTTPErrorHandler

	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.PanicRecovery())
	e.Use(custommiddleware.SecurityHeaders())
	e.Use(custommiddleware.RateLimiterWithConfig(
		cfg.Security.RateLimitPerSecond,
		cfg.Security.RateLimitBurst,
	))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, custommiddleware.TraceIDHeader},
	}))

	// Routes
	e.GET("/transactions", transactionHandler.ListTransactions)
	e.POST("/transactions", transactionHandler.CreateTransaction)
	e.GET("/transactions/summary", dashboardHandler.GetSummary)
	e.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)
	e.GET("/users", metaHandler.ListUsers)
	e.GET("/categories", metaHandler.ListCategories)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Graceful shutdown handling
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		slog.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	}()

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	slog.Info("Starting ledger server", "addr", addr, "environment", cfg.Server.Environment)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped gracefully")
}
