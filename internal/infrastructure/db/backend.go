// Package db builds the user store selected by configuration: the chosen
// backend, optionally wrapped by the Redis lookup cache.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/99minutos/user-registry/internal/core/ports"
	"github.com/99minutos/user-registry/internal/infrastructure/config"
	"github.com/99minutos/user-registry/internal/infrastructure/db/memory"
	"github.com/99minutos/user-registry/internal/infrastructure/db/mongo"
	"github.com/99minutos/user-registry/internal/infrastructure/db/postgres"
	"github.com/99minutos/user-registry/internal/infrastructure/db/redis"
)

// Checker probes one dependency for the readiness endpoint.
type Checker = func(ctx context.Context) error

// Store is an opened user repository plus the resources behind it.
type Store struct {
	Repo   ports.UserRepository
	Checks map[string]Checker

	closers []func(context.Context) error
}

// Open connects the configured backend. Close must be called on the result.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Store, error) {
	s := &Store{Checks: make(map[string]Checker)}

	switch cfg.Store.Backend {
	case config.BackendMemory:
		s.Repo = memory.NewUserRepository()

	case config.BackendMongo:
		database, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func(ctx context.Context) error { return mongo.Disconnect(ctx, database) })
		repo := mongo.NewUserRepository(database)
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = s.Close(ctx)
			return nil, fmt.Errorf("mongo indexes: %w", err)
		}
		s.Repo = repo
		s.Checks["mongodb"] = func(ctx context.Context) error { return mongo.Ping(ctx, database) }

	case config.BackendPostgres:
		pool, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Postgres.URL})
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func(context.Context) error { pool.Close(); return nil })
		if err := postgres.Migrate(ctx, pool); err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		s.Repo = postgres.NewUserRepository(pool)
		s.Checks["postgres"] = func(ctx context.Context) error { return pool.Ping(ctx) }

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	if cfg.Redis.Enabled {
		client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		s.closers = append(s.closers, func(context.Context) error { return client.Close() })
		s.Repo = redis.NewCachedUserRepository(s.Repo, client, cfg.Redis.TTL, log)
		s.Checks["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
	}

	log.Info().
		Str("backend", cfg.Store.Backend).
		Bool("cache", cfg.Redis.Enabled).
		Msg("user store ready")
	return s, nil
}

// Close releases resources in reverse order of acquisition.
func (s *Store) Close(ctx context.Context) error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
