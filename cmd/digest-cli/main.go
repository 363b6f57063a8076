package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/jobtrackhq/jobtrack-be/internal/catalog"
	"github.com/jobtrackhq/jobtrack-be/internal/config"
	"github.com/jobtrackhq/jobtrack-be/internal/digest"
	"github.com/jobtrackhq/jobtrack-be/internal/match"
	"github.com/jobtrackhq/jobtrack-be/internal/prefs"
	"github.com/jobtrackhq/jobtrack-be/internal/store"
	"github.com/jobtrackhq/jobtrack-be/shared/logger"
)

// digest-cli generates (or regenerates) today's digest against the
// shared store and prints the plain-text rendering. With -mailto it
// also prints the prefilled email compose link.
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or flags")
	}

	defaultConfigPath := os.Getenv("API_SERVICE_CONFIG_PATH")
	if defaultConfigPath == "" {
		defaultConfigPath = "configs/api-service/config.yaml"
	}
	configPath := flag.String("config", defaultConfigPath, "Path to configuration file")
	printMailto := flag.Bool("mailto", false, "Also print the prefilled email compose link")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.ValidateStorage(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	appLogger, err := logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: "stderr", // keep stdout clean for the rendered digest
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	jobCatalog := catalog.Default()
	if cfg.Catalog.JobsFile != "" {
		jobCatalog, err = catalog.LoadFile(cfg.Catalog.JobsFile)
		if err != nil {
			return fmt.Errorf("failed to load job catalog: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	kv, closeStore, err := store.Open(ctx, &cfg.Storage, appLogger.Logger)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer closeStore()

	preferences, err := prefs.New(kv).Get(ctx)
	if err != nil {
		return err
	}

	scorer := match.NewScorer(match.Weights{
		RoleKeyword: cfg.Match.RoleKeywordWeight,
		Skill:       cfg.Match.SkillWeight,
		Location:    cfg.Match.LocationWeight,
	})

	data, err := digest.NewGenerator(jobCatalog, scorer, kv).Generate(ctx, preferences)
	if err != nil {
		return err
	}

	appLogger.Info("Digest generated",
		slog.String("date", data.Date),
		slog.Int("jobs", len(data.Jobs)),
	)

	fmt.Println(digest.Render(data))
	if *printMailto {
		fmt.Println(digest.MailtoURL(data))
	}

	return nil
}
