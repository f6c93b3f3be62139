package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/handlers"
	"fintrack/internal/middleware"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	db, err := database.New(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}()

	if sqlDB, err := db.DB.DB(); err == nil {
		if err := database.RunMigrationsIfEnabled(sqlDB); err != nil {
			slog.Error("Failed to run SQL migrations", "error", err)
			os.Exit(1)
		}
	}

	if err := db.AutoMigrate(); err != nil {
		slog.Error("Failed to run schema migration", "error", err)
		os.Exit(1)
	}
	if err := db.CreateIndexes(); err != nil {
		slog.Error("Failed to create indexes", "error", err)
		os.Exit(1)
	}

	e := buildServer(cfg, db)

	go func() {
		addr := ":" + cfg.Server.Port
		slog.Info("Starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("Server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}
	slog.Info("Server exited")
}

func buildServer(cfg *config.Config, db *database.DB) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiter(cfg.Security))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, middleware.TraceIDHeader},
	}))

	metricsRecorder := services.NewPrometheusMetrics()

	transactionRepo := repositories.NewTransactionRepository(db.DB)
	budgetRepo := repositories.NewBudgetRepository(db.DB)

	transactionService := services.NewTransactionService(transactionRepo, metricsRecorder)
	budgetService := services.NewBudgetService(budgetRepo, metricsRecorder)
	forecastService := services.NewForecastService(transactionRepo, metricsRecorder)
	recommendationService := services.NewRecommendationService(transactionRepo, budgetRepo, metricsRecorder)
	sampleDataService := services.NewSampleDataService(transactionRepo, metricsRecorder, uint64(time.Now().UnixNano()))

	transactionHandler := handlers.NewTransactionHandler(transactionService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	forecastHandler := handlers.NewForecastHandler(forecastService, recommendationService)
	healthHandler := handlers.NewHealthCheckHandler(db.DB)
	devHandler := handlers.NewDevHandler(sampleDataService, cfg.Forecast.SeedEnabled && !cfg.IsProduction())

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	api.POST("/transactions", transactionHandler.CreateTransaction)
	api.GET("/transactions", transactionHandler.ListTransactions)
	api.GET("/transactions/:id", transactionHandler.GetTransaction)
	api.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	api.PUT("/budgets", budgetHandler.UpsertBudget)
	api.GET("/budgets", budgetHandler.ListBudgets)
	api.DELETE("/budgets/:category", budgetHandler.DeleteBudget)

	api.GET("/forecast", forecastHandler.GetForecast)
	api.GET("/forecast/accuracy", forecastHandler.GetAccuracy)
	api.GET("/trends", forecastHandler.GetTrends)
	api.GET("/recommendations", forecastHandler.GetRecommendations)

	api.POST("/dev/seed", devHandler.SeedData)

	return e
}
