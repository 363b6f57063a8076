package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jobtrackhq/jobtrack-be/internal/config"
	"github.com/jobtrackhq/jobtrack-be/shared/postgresql"
)

// Open builds the configured backend. The returned cleanup function
// releases any held connections and is safe to call once.
func Open(ctx context.Context, cfg *config.StorageConfig, logger *slog.Logger) (Store, func(), error) {
	noop := func() {}

	switch cfg.Backend {
	case "", config.BackendMemory:
		return NewMemoryStore(), noop, nil

	case config.BackendFile:
		fs, err := NewFileStore(cfg.File.Path, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open file store: %w", err)
		}
		return fs, noop, nil

	case config.BackendPostgres:
		client, err := postgresql.NewClient(&postgresql.Config{
			Host:            cfg.Database.Host,
			Port:            cfg.Database.Port,
			User:            cfg.Database.User,
			Password:        cfg.Database.Password,
			Database:        cfg.Database.Database,
			SSLMode:         cfg.Database.SSLMode,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
			ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		}, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open postgres store: %w", err)
		}

		ps := NewPostgresStore(client)
		if err := ps.EnsureSchema(ctx); err != nil {
			client.Close()
			return nil, nil, err
		}
		return ps, func() { client.Close() }, nil

	case config.BackendRedis:
		rs, err := NewRedisStore(ctx, cfg.Redis.URL, cfg.Redis.Prefix)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open redis store: %w", err)
		}
		return rs, func() { rs.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unknown storage backend: %q", cfg.Backend)
}
