package repository

import (
	"context"
	"sync/atomic"
	"time"

	"travelbook/internal/domain"

	"github.com/rs/zerolog"
)

// FailoverStatsCache serves from the primary (Redis) cache and falls back to
// the in-memory cache when the primary is unreachable, probing the primary
// again after a cooldown.
type FailoverStatsCache struct {
	primary   domain.StatsCache
	fallback  domain.StatsCache
	logger    *zerolog.Logger
	isDown    atomic.Bool
	lastCheck atomic.Int64 // unix nanos of the last failed primary call
}

const recoveryProbeInterval = time.Minute

func NewFailoverStatsCache(primary, fallback domain.StatsCache, logger *zerolog.Logger) *FailoverStatsCache {
	return &FailoverStatsCache{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// usePrimary reports whether the call should go to the primary cache.
func (f *FailoverStatsCache) usePrimary() bool {
	if !f.isDown.Load() {
		return true
	}
	last := time.Unix(0, f.lastCheck.Load())
	return time.Since(last) > recoveryProbeInterval
}

func (f *FailoverStatsCache) markDown(err error) {
	f.logger.Error().Err(err).Msg("primary stats cache failed, falling back to memory")
	f.isDown.Store(true)
	f.lastCheck.Store(time.Now().UnixNano())
}

func (f *FailoverStatsCache) markUp() {
	if f.isDown.Swap(false) {
		f.logger.Info().Msg("primary stats cache recovered")
	}
}

func (f *FailoverStatsCache) GetInt64(ctx context.Context, key string) (int64, bool, error) {
	if f.usePrimary() {
		v, ok, err := f.primary.GetInt64(ctx, key)
		if err == nil {
			f.markUp()
			return v, ok, nil
		}
		f.markDown(err)
	}
	return f.fallback.GetInt64(ctx, key)
}

func (f *FailoverStatsCache) SetInt64(ctx context.Context, key string, value int64, ttl time.Duration) error {
	if f.usePrimary() {
		if err := f.primary.SetInt64(ctx, key, value, ttl); err != nil {
			f.markDown(err)
		} else {
			f.markUp()
		}
	}
	return f.fallback.SetInt64(ctx, key, value, ttl)
}

func (f *FailoverStatsCache) GetFloat64(ctx context.Context, key string) (float64, bool, error) {
	if f.usePrimary() {
		v, ok, err := f.primary.GetFloat64(ctx, key)
		if err == nil {
			f.markUp()
			return v, ok, nil
		}
		f.markDown(err)
	}
	return f.fallback.GetFloat64(ctx, key)
}

func (f *FailoverStatsCache) SetFloat64(ctx context.Context, key string, value float64, ttl time.Duration) error {
	if f.usePrimary() {
		if err := f.primary.SetFloat64(ctx, key, value, ttl); err != nil {
			f.markDown(err)
		} else {
			f.markUp()
		}
	}
	return f.fallback.SetFloat64(ctx, key, value, ttl)
}

func (f *FailoverStatsCache) Invalidate(ctx context.Context, keys ...string) error {
	if f.usePrimary() {
		if err := f.primary.Invalidate(ctx, keys...); err != nil {
			f.markDown(err)
		} else {
			f.markUp()
		}
	}
	return f.fallback.Invalidate(ctx, keys...)
}
