package feed

import (
	"context"
	"encoding/json"
	"time"

	"readycleans/models"

	"github.com/go-redis/redis/v8"
)

const postsCacheKey = "blog:posts"

// PostCache holds the rendered post list between generations.
type PostCache interface {
	GetPosts(ctx context.Context) ([]models.BlogPost, bool, error)
	SetPosts(ctx context.Context, posts []models.BlogPost) error
	Invalidate(ctx context.Context) error
}

type RedisPostCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPostCache(client *redis.Client, ttl time.Duration) *RedisPostCache {
	return &RedisPostCache{client: client, ttl: ttl}
}

// GetPosts reports a miss with ok == false and a nil error.
func (c *RedisPostCache) GetPosts(ctx context.Context) ([]models.BlogPost, bool, error) {
	data, err := c.client.Get(ctx, postsCacheKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var posts []models.BlogPost
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, false, err
	}
	return posts, true, nil
}

func (c *RedisPostCache) SetPosts(ctx context.Context, posts []models.BlogPost) error {
	b, err := json.Marshal(posts)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, postsCacheKey, b, c.ttl).Err()
}

func (c *RedisPostCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, postsCacheKey).Err()
}
