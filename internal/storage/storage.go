// Package storage opens the dictionary store selected in the configuration.
package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/learn-words-bot/internal/config"
	"github.com/aliskhannn/learn-words-bot/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/learn-words-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/learn-words-bot/internal/repository"
	"github.com/aliskhannn/learn-words-bot/internal/service"
)

// Open returns the dictionary store for cfg.Storage.Driver and a function
// releasing its resources.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (service.DictionaryStore, func(), error) {
	files := repository.NewDictionaryRepository(cfg.Dictionary.Path, cfg.Dictionary.SeedPath)

	switch cfg.Storage.Driver {
	case config.DriverFile, "":
		logger.Info("using file dictionary store", zap.String("path", files.Path()))
		return files, func() {}, nil

	case config.DriverPostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, nil, err
		}

		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("connect to postgres: %w", err)
		}

		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}

		logger.Info("using postgres dictionary store")
		store := pgrepo.NewWordRepository(pool, postgres.NewTransactor(pool), files, logger)
		return store, pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
