package cache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
)

// RedisReportCache stores dashboard aggregates as JSON in Redis.
type RedisReportCache struct {
	client *redis.Client
}

func NewRedisReportCache(addr string, password string, db int) *RedisReportCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisReportCache{client: client}
}

func (c *RedisReportCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisReportCache) Close() error {
	return c.client.Close()
}

func (c *RedisReportCache) Get(ctx context.Context, key string) (*domain.DashboardReport, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var report domain.DashboardReport
	if err := json.Unmarshal([]byte(val), &report); err != nil {
		return nil, false, err
	}
	return &report, true, nil
}

func (c *RedisReportCache) Set(ctx context.Context, key string, value *domain.DashboardReport, ttl time.Duration) error {
	if value == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}

func (c *RedisReportCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
