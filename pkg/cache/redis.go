package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hotel-booking/pkg/utils"

	"github.com/go-redis/redis/v8"
)

// Cache wraps the redis client used for response caching, the notification
// job queue, and the price-alert poller lock.
type Cache struct {
	client *redis.Client
}

func InitCache(config utils.RedisConfig) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis failed: %w", err)
	}

	return &Cache{client: client}, nil
}

// Set marshals value as JSON under key with an expiration.
func (c *Cache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, expiration).Err()
}

// Get unmarshals the JSON stored under key into dest.
// Returns redis.Nil when the key is absent.
func (c *Cache) Get(ctx context.Context, key string, dest any) error {
	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}

func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	return c.client.Del(ctx, keys...).Err()
}

// IsMiss reports whether err is a cache miss.
func IsMiss(err error) bool {
	return err == redis.Nil
}

// AcquireLock takes a best-effort lock via SETNX. Returns false when another
// holder has it.
func (c *Cache) AcquireLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, key, "locked", ttl).Result()
}

func (c *Cache) ReleaseLock(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// PushJob appends a raw job payload to a list queue.
func (c *Cache) PushJob(ctx context.Context, queue string, payload []byte) error {
	return c.client.RPush(ctx, queue, payload).Err()
}

// PopJob blocks up to timeout waiting for the next job on the queue.
// Returns nil payload on timeout.
func (c *Cache) PopJob(ctx context.Context, queue string, timeout time.Duration) ([]byte, error) {
	res, err := c.client.BLPop(ctx, timeout, queue).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(res) < 2 {
		return nil, nil
	}
	return []byte(res[1]), nil
}

func (c *Cache) Close() error {
	return c.client.Close()
}
