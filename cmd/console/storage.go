package main

import (
	"context"
	"fmt"
	"time"

	"github.com/xavierca1/farmareach/internal/config"
	"github.com/xavierca1/farmareach/internal/infra/database"
	"github.com/xavierca1/farmareach/internal/usecase"
)

// openTokenStore builds the configured store. The returned closer is never
// nil.
func openTokenStore(cfg config.StorageConfig) (usecase.TokenStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case config.DriverMemory:
		return database.NewMemoryTokenStore(), noop, nil

	case config.DriverRedis:
		store := database.NewRedisTokenStore(database.RedisConfig{
			Address:  cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			store.Close()
			return nil, noop, err
		}
		return store, store.Close, nil

	case config.DriverPostgres:
		db, err := database.NewDBConnection(cfg.PostgresDSN)
		if err != nil {
			return nil, noop, fmt.Errorf("connect postgres: %w", err)
		}
		repo := database.NewTokenRepository(db)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := repo.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, noop, err
		}
		return repo, db.Close, nil

	default:
		store, err := database.OpenBoltTokenStore(cfg.Path)
		if err != nil {
			return nil, noop, err
		}
		return store, store.Close, nil
	}
}
