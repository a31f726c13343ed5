package cache

import (
	"context"
	"errors"
	"fmt"
	"hotelhub/infras/otel"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
)

var ErrLockNotHeld = errors.New("lock not held")

// releaseScript deletes the lock only when it still carries the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisCache holds request counters and cross-replica locks. Contract state is never cached.
type RedisCache interface {
	Increment(ctx context.Context, key string, window time.Duration) (count int64, err error)
	Locker
}

// Locker is a best effort mutual exclusion across replicas.
type Locker interface {
	AcquireLock(ctx context.Context, key string, ttl time.Duration) (token string, acquired bool, err error)
	ReleaseLock(ctx context.Context, key, token string) error
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

// Increment bumps a fixed-window counter. The window starts with the first hit.
func (cache *redisCache) Increment(ctx context.Context, key string, window time.Duration) (count int64, err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Increment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	pipe := cache.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)

	if _, err = pipe.Exec(ctx); err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisCache", "Increment").Msg("failed to increment counter")

		return 0, fmt.Errorf("failed to increment counter: %w", err)
	}

	return incr.Val(), nil
}

// AcquireLock implements Locker with SET NX PX and a random token.
func (cache *redisCache) AcquireLock(ctx context.Context, key string, ttl time.Duration) (token string, acquired bool, err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".AcquireLock")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	token = uuid.NewString()

	acquired, err = cache.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisCache", "AcquireLock").Msg("failed to acquire lock")

		return "", false, fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !acquired {
		return "", false, nil
	}

	return token, true, nil
}

// ReleaseLock implements Locker. Releasing a lock that expired or was taken over returns ErrLockNotHeld.
func (cache *redisCache) ReleaseLock(ctx context.Context, key, token string) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".ReleaseLock")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	deleted, err := releaseScript.Run(ctx, cache.client, []string{key}, token).Int()
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisCache", "ReleaseLock").Msg("failed to release lock")

		return fmt.Errorf("failed to release lock: %w", err)
	}

	if deleted == 0 {
		return ErrLockNotHeld
	}

	return nil
}
