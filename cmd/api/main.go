package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirhossein-jamali/gold-assistant/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/gold-assistant/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-assistant/internal/domain/usecase/assistant"
	"github.com/amirhossein-jamali/gold-assistant/internal/domain/usecase/purchase"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/llm"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	production := cfg.Environment == config.Production
	if production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Production: production,
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	// run returns only after its deferred cleanups have closed the store and the LLM client
	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Server stopped with error", map[string]any{"error": err.Error()})
		_ = appLogger.Flush()
		os.Exit(1)
	}
	_ = appLogger.Flush()
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	tp := timeProvider.NewRealTimeProvider()
	ctx := context.Background()

	// Open the store; it lives until shutdown
	dbManager := database.NewManager(database.CreateConfigFromAppConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database", map[string]any{"error": err.Error()})
		}
	}()

	if err := dbManager.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	rate, err := entity.NewGoldRate(cfg.Gold.RatePerGram)
	if err != nil {
		return err
	}

	completionClient, err := llm.NewCompletionClient(ctx, cfg.LLM, appLogger)
	if err != nil {
		return fmt.Errorf("failed to create completion client: %w", err)
	}
	defer func() {
		if err := completionClient.Close(); err != nil {
			appLogger.Error("Failed to close completion client", map[string]any{"error": err.Error()})
		}
	}()

	// Use cases
	purchaseRepo := repository.NewPurchaseRepository(dbManager.DB(), appLogger)
	purchaseService := purchase.NewPurchaseService(purchaseRepo, rate, tp, appLogger)
	assistantService := assistant.NewAssistantService(completionClient, cfg.LLM.Provider, appLogger)

	router := routes.NewRouter(appLogger, tp, cfg.CORS, routes.Handlers{
		Assistant: handler.NewAssistantHandler(assistantService, appLogger),
		Purchase:  handler.NewPurchaseHandler(purchaseService, appLogger),
		Health:    handler.NewHealthHandler(dbManager, appLogger),
	})

	server := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"address":      server.Addr,
			"env":          cfg.Environment,
			"llm_provider": cfg.LLM.Provider,
			"db_driver":    dbManager.Driver(),
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var listenErr error
	select {
	case sig := <-quit:
		appLogger.Info("Shutting down server...", map[string]any{"signal": sig.String()})
	case listenErr = <-serverErr:
		listenErr = fmt.Errorf("failed to start server: %w", listenErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited", nil)
	return listenErr
}
