package utils

import (
	"context"
	"fmt"
	"sync"
	"time"

	"readycleans/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the generic cache client.
var CacheClient *redis.Client

// InitCache initializes the generic Redis cache client (using DB from AppConfig for general caching).
func InitCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return fmt.Errorf("failed to connect to Redis (Cache): %w", err)
	}
	CacheClient = client
	return nil
}

var (
	cacheOnce sync.Once
	initCache = InitCache
)

// GetCacheClient returns the generic cache client, or nil when Redis was
// unreachable. The connection is attempted once per process.
func GetCacheClient() *redis.Client {
	cacheOnce.Do(func() {
		if err := initCache(); err != nil {
			GetLogger().Sugar().Warnf("cache disabled: %v", err)
		}
	})
	return CacheClient
}
