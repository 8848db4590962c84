package utils

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Redis     bool      `json:"redis"`
	BlogStore bool      `json:"blogStore"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// CheckHealth pings Redis (a nil client counts as down) and checks that the
// blog file's directory exists.
func CheckHealth(ctx context.Context, redisClient *redis.Client, blogFile string) HealthStatus {
	status := HealthStatus{CheckedAt: time.Now()}
	if redisClient != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		status.Redis = redisClient.Ping(pingCtx).Err() == nil
		cancel()
	}
	if info, err := os.Stat(filepath.Dir(blogFile)); err == nil && info.IsDir() {
		status.BlogStore = true
	}

	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

// StartHealthMonitor checks once immediately, then every interval until ctx
// is done.
func StartHealthMonitor(ctx context.Context, redisClient *redis.Client, blogFile string, interval time.Duration) {
	CheckHealth(ctx, redisClient, blogFile)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CheckHealth(ctx, redisClient, blogFile)
			}
		}
	}()
}
