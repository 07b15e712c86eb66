package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/na2na-p/compoundname/internal/config"
	"github.com/na2na-p/compoundname/internal/domain"
	"github.com/na2na-p/compoundname/internal/infrastructure"
	"github.com/na2na-p/compoundname/internal/infrastructure/memory"
	"github.com/na2na-p/compoundname/internal/infrastructure/postgres"
	"github.com/na2na-p/compoundname/internal/infrastructure/redis"
	"github.com/na2na-p/compoundname/internal/usecase"
)

// nameStore は保存済み名前のリポジトリと、その接続先のヘルスチェッカー
type nameStore struct {
	repo     domain.NameRepository
	checkers []usecase.HealthChecker
	closers  []func() error
}

func (s *nameStore) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i]())
	}
	return errors.Join(errs...)
}

func newNameStore(ctx context.Context, cfg *config.Config) (*nameStore, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		return &nameStore{repo: memory.NewNameRepository()}, nil
	case config.StoreDriverRedis:
		client, err := newRedisClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &nameStore{
			repo:     redis.NewNameRepository(client),
			checkers: []usecase.HealthChecker{redis.NewRedisHealthChecker(client, domain.StoreRolePrimary)},
			closers:  []func() error{client.Close},
		}, nil
	case config.StoreDriverPostgres:
		return newPostgresStore(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: unknown store driver %q", config.ErrInvalidConfig, cfg.Store.Driver)
	}
}

func newPostgresStore(ctx context.Context, cfg *config.Config) (*nameStore, error) {
	slog.Info("connecting to postgres", "database", cfg.Database.String())
	pool, err := postgres.NewPostgresConnection(postgres.PostgresConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Database: cfg.Database.DBName,
		PoolSize: cfg.Database.PoolSize,
		SSLMode:  cfg.Database.SSLMode,
		CAFile:   cfg.Database.CAFile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	schemaCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := postgres.EnsureSchema(schemaCtx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	store := &nameStore{
		repo:     postgres.NewNameRepository(pool),
		checkers: []usecase.HealthChecker{postgres.NewPostgresHealthChecker(pool, domain.StoreRolePrimary)},
		closers: []func() error{func() error {
			pool.Close()
			return nil
		}},
	}
	if !cfg.Store.Cache {
		return store, nil
	}

	client, err := newRedisClient(cfg.Redis)
	if err != nil {
		pool.Close()
		return nil, err
	}
	store.repo = infrastructure.NewCachingNameRepository(store.repo, client, redis.SavedNameCacheKey, cfg.Store.CacheTTL)
	store.checkers = append(store.checkers, redis.NewRedisHealthChecker(client, domain.StoreRoleCache))
	store.closers = append(store.closers, client.Close)
	return store, nil
}

func newRedisClient(cfg config.RedisConfig) (*redis.RedisClient, error) {
	slog.Info("connecting to redis", "redis", cfg.String())
	conn, err := redis.NewRedisConnection(redis.RedisConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return redis.NewRedisClient(conn), nil
}
