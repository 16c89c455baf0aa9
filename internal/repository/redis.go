package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"travelbook/internal/config"

	"github.com/redis/go-redis/v9"
)

// RedisStatsCache keeps derived aggregates in Redis.
type RedisStatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient создает новый клиент Redis на основе конфигурации
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func NewRedisStatsCache(client *redis.Client, ttl time.Duration) *RedisStatsCache {
	return &RedisStatsCache{client: client, ttl: ttl}
}

func (r *RedisStatsCache) GetInt64(ctx context.Context, key string) (int64, bool, error) {
	if r.client == nil {
		return 0, false, fmt.Errorf("redis client is nil")
	}
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get from redis: %w", err)
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("failed to parse cached int: %w", err)
	}
	return n, true, nil
}

func (r *RedisStatsCache) SetInt64(ctx context.Context, key string, value int64, ttl time.Duration) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if ttl <= 0 {
		ttl = r.ttl
	}
	if err := r.client.Set(ctx, key, strconv.FormatInt(value, 10), ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in redis: %w", err)
	}
	return nil
}

func (r *RedisStatsCache) GetFloat64(ctx context.Context, key string) (float64, bool, error) {
	if r.client == nil {
		return 0, false, fmt.Errorf("redis client is nil")
	}
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get from redis: %w", err)
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false, fmt.Errorf("failed to parse cached float: %w", err)
	}
	return f, true, nil
}

func (r *RedisStatsCache) SetFloat64(ctx context.Context, key string, value float64, ttl time.Duration) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if ttl <= 0 {
		ttl = r.ttl
	}
	if err := r.client.Set(ctx, key, strconv.FormatFloat(value, 'f', -1, 64), ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in redis: %w", err)
	}
	return nil
}

func (r *RedisStatsCache) Invalidate(ctx context.Context, keys ...string) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete from redis: %w", err)
	}
	return nil
}
