package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jobtrackhq/jobtrack-be/internal/api/handler"
	"github.com/jobtrackhq/jobtrack-be/internal/api/router"
	"github.com/jobtrackhq/jobtrack-be/internal/catalog"
	"github.com/jobtrackhq/jobtrack-be/internal/checklist"
	"github.com/jobtrackhq/jobtrack-be/internal/config"
	"github.com/jobtrackhq/jobtrack-be/internal/digest"
	"github.com/jobtrackhq/jobtrack-be/internal/match"
	"github.com/jobtrackhq/jobtrack-be/internal/prefs"
	"github.com/jobtrackhq/jobtrack-be/internal/saved"
	"github.com/jobtrackhq/jobtrack-be/internal/store"
	"github.com/jobtrackhq/jobtrack-be/internal/tracker"
	"github.com/jobtrackhq/jobtrack-be/shared/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or flags")
	}

	// Parse command-line flags
	defaultConfigPath := os.Getenv("API_SERVICE_CONFIG_PATH")
	if defaultConfigPath == "" {
		defaultConfigPath = "configs/api-service/config.yaml"
	}
	configPath := flag.String("config", defaultConfigPath, "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Initialize logger
	appLogger, err := initLogger(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger.Info("Starting API service",
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("environment", cfg.App.Environment),
	)

	// Load the job catalog
	jobCatalog, err := initCatalog(&cfg.Catalog)
	if err != nil {
		return fmt.Errorf("failed to load job catalog: %w", err)
	}

	appLogger.Info("Job catalog loaded",
		slog.Int("jobs", jobCatalog.Len()),
	)

	// Open the key-value store
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	kv, closeStore, err := store.Open(ctx, &cfg.Storage, appLogger.Logger)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer closeStore()

	appLogger.Info("Key-value store ready",
		slog.String("backend", cfg.Storage.Backend),
	)

	// Initialize router
	r := initRouter(cfg, appLogger.Logger, jobCatalog, kv)

	// Create HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed to start",
				slog.Any("error", err),
			)
			os.Exit(1)
		}
	}()

	appLogger.Info("API service is running",
		slog.String("address", addr),
	)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown",
			slog.Any("error", err),
		)
		return err
	}

	appLogger.Info("Server shutdown complete")
	return nil
}

// initLogger initializes and configures the application logger
func initLogger(cfg *config.LoggingConfig) (*logger.Logger, error) {
	loggerCfg := &logger.Config{
		Level:        cfg.Level,
		Format:       cfg.Format,
		Output:       cfg.Output,
		EnableSource: cfg.EnableCaller,
		TimeFormat:   time.RFC3339,
	}

	return logger.New(loggerCfg)
}

// initCatalog loads the job seed file, or the built-in sample set when
// none is configured
func initCatalog(cfg *config.CatalogConfig) (*catalog.Catalog, error) {
	if cfg.JobsFile == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(cfg.JobsFile)
}

// initRouter wires the domain services and returns the Gin router
func initRouter(cfg *config.Config, log *slog.Logger, jobCatalog *catalog.Catalog, kv store.Store) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	scorer := match.NewScorer(match.Weights{
		RoleKeyword: cfg.Match.RoleKeywordWeight,
		Skill:       cfg.Match.SkillWeight,
		Location:    cfg.Match.LocationWeight,
	})

	deps := &handler.Dependencies{
		Logger:    log,
		Catalog:   jobCatalog,
		Scorer:    scorer,
		Prefs:     prefs.New(kv),
		Tracker:   tracker.New(kv),
		Digest:    digest.NewGenerator(jobCatalog, scorer, kv),
		Saved:     saved.New(kv),
		Checklist: checklist.New(kv),
	}

	return router.SetupRouter(deps)
}
