package utils

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campusconnect/campus-events-backend/config"
)

var redisClient *redis.Client

// InitRedis connects the shared Redis client. The cache is best-effort; the
// service keeps running without it.
func InitRedis(cfg *config.Config) error {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return err
	}

	redisClient = client
	return nil
}

// RedisCache adapts the shared client to the cache interface the event and
// registration services consume.
type RedisCache struct {
	TTL time.Duration
}

// NewRedisCache returns a cache with the configured listing TTL, or nil when
// Redis was never initialized so services skip caching entirely.
func NewRedisCache(cfg *config.Config) *RedisCache {
	if redisClient == nil {
		return nil
	}
	return &RedisCache{TTL: time.Duration(cfg.UpcomingCacheTTL) * time.Second}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := redisClient.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *RedisCache) Set(ctx context.Context, key string, val []byte) {
	if err := redisClient.Set(ctx, key, val, c.TTL).Err(); err != nil {
		log.Printf("cache set %s failed: %v", key, err)
	}
}

func (c *RedisCache) Del(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := redisClient.Del(ctx, keys...).Err(); err != nil {
		log.Printf("cache del failed: %v", err)
	}
}
