package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/99minutos/user-registry/internal/api/metrics"
	"github.com/99minutos/user-registry/internal/core/domain"
	"github.com/99minutos/user-registry/internal/core/ports"
)

const (
	DefaultCacheTTL = 10 * time.Minute
	// TombstoneTTL bounds how long a removed id blocks cache fills. A lookup
	// whose backend read outlasts it may still refill a removed user.
	TombstoneTTL = 30 * time.Second

	tombstone = "-"
)

// cacheClient is the subset of *redis.Client the cache needs.
type cacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

var _ ports.UserRepository = (*CachedUserRepository)(nil)

// CachedUserRepository is a read-through cache in front of another
// repository. Key format: user:<id>
//
// Only found users are cached. Adding a duplicate id never changes which
// record a lookup returns, so Add leaves the cache alone. Remove overwrites
// the entry with a tombstone, and fills use SET NX, so a lookup that read the
// backend before a concurrent Remove cannot re-cache the removed user.
type CachedUserRepository struct {
	next   ports.UserRepository
	client cacheClient
	ttl    time.Duration
	log    zerolog.Logger
}

// NewCachedUserRepository wraps next. A non-positive ttl selects DefaultCacheTTL.
func NewCachedUserRepository(next ports.UserRepository, client *redis.Client, ttl time.Duration, log zerolog.Logger) *CachedUserRepository {
	return newCachedUserRepository(next, client, ttl, log)
}

func newCachedUserRepository(next ports.UserRepository, client cacheClient, ttl time.Duration, log zerolog.Logger) *CachedUserRepository {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedUserRepository{next: next, client: client, ttl: ttl, log: log}
}

func (r *CachedUserRepository) Add(ctx context.Context, user *domain.User) (*domain.User, error) {
	return r.next.Add(ctx, user)
}

// FindByID serves from Redis when possible. Cache errors are logged and the
// lookup falls through to the wrapped repository.
func (r *CachedUserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	key := cacheKey(id)

	raw, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil && string(raw) == tombstone:
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
	case err == nil:
		var u domain.User
		if jsonErr := json.Unmarshal(raw, &u); jsonErr == nil {
			metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
			return &u, nil
		}
		r.log.Warn().Str("key", key).Msg("discarding undecodable cache entry")
		metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
	case errors.Is(err, redis.Nil):
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
	default:
		r.log.Warn().Err(err).Str("key", key).Msg("cache read failed, using backend")
		metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
	}

	user, err := r.next.FindByID(ctx, id)
	if err != nil || user == nil {
		return user, err
	}

	if payload, err := json.Marshal(user); err == nil {
		if err := r.client.SetNX(ctx, key, payload, r.ttl).Err(); err != nil {
			r.log.Warn().Err(err).Str("key", key).Msg("failed to fill cache")
		}
	}
	return user, nil
}

// Remove deletes from the backend first, then replaces the cache entry with a
// tombstone. A failed eviction is returned so callers do not assume the id is
// gone.
func (r *CachedUserRepository) Remove(ctx context.Context, id int64) error {
	if err := r.next.Remove(ctx, id); err != nil {
		return err
	}
	if err := r.client.Set(ctx, cacheKey(id), tombstone, TombstoneTTL).Err(); err != nil {
		r.log.Error().Err(err).Int64("user_id", id).Msg("failed to evict cache entry")
		return fmt.Errorf("evict user %d: %w", id, err)
	}
	return nil
}

func (r *CachedUserRepository) Count(ctx context.Context) (int64, error) {
	return r.next.Count(ctx)
}

func (r *CachedUserRepository) MaxID(ctx context.Context) (int64, error) {
	return r.next.MaxID(ctx)
}

func cacheKey(id int64) string {
	return "user:" + strconv.FormatInt(id, 10)
}
