package repository

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	intVal    int64
	floatVal  float64
	isFloat   bool
	expiresAt time.Time
}

// MemoryStatsCache is the in-process fallback for the stats cache.
type MemoryStatsCache struct {
	entries sync.Map
	ttl     time.Duration
}

func NewMemoryStatsCache(ttl time.Duration) *MemoryStatsCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &MemoryStatsCache{ttl: ttl}
}

func (m *MemoryStatsCache) load(key string) (memoryEntry, bool) {
	v, ok := m.entries.Load(key)
	if !ok {
		return memoryEntry{}, false
	}
	entry := v.(memoryEntry)
	if time.Now().After(entry.expiresAt) {
		m.entries.Delete(key)
		return memoryEntry{}, false
	}
	return entry, true
}

func (m *MemoryStatsCache) GetInt64(_ context.Context, key string) (int64, bool, error) {
	entry, ok := m.load(key)
	if !ok || entry.isFloat {
		return 0, false, nil
	}
	return entry.intVal, true, nil
}

func (m *MemoryStatsCache) SetInt64(_ context.Context, key string, value int64, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = m.ttl
	}
	m.entries.Store(key, memoryEntry{intVal: value, expiresAt: time.Now().Add(ttl)})
	return nil
}

func (m *MemoryStatsCache) GetFloat64(_ context.Context, key string) (float64, bool, error) {
	entry, ok := m.load(key)
	if !ok || !entry.isFloat {
		return 0, false, nil
	}
	return entry.floatVal, true, nil
}

func (m *MemoryStatsCache) SetFloat64(_ context.Context, key string, value float64, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = m.ttl
	}
	m.entries.Store(key, memoryEntry{floatVal: value, isFloat: true, expiresAt: time.Now().Add(ttl)})
	return nil
}

func (m *MemoryStatsCache) Invalidate(_ context.Context, keys ...string) error {
	for _, key := range keys {
		m.entries.Delete(key)
	}
	return nil
}
