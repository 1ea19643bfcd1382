package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Nils2312/Fleksibelt-sub000/internal/goroutine"
)

// CacheService provides in-memory caching with TTL and invalidation support.
type CacheService struct {
	mu    sync.RWMutex
	cache map[string]*cacheEntry
}

type cacheEntry struct {
	data      interface{}
	expiresAt time.Time
}

// NewCacheService creates a new cache service. Expired entries are removed
// every cleanupInterval until ctx is done.
func NewCacheService(ctx context.Context, cleanupInterval time.Duration) *CacheService {
	cs := &CacheService{
		cache: make(map[string]*cacheEntry),
	}

	if cleanupInterval > 0 {
		goroutine.Go(ctx, "cache-cleanup", func(ctx context.Context) {
			cs.cleanup(ctx, cleanupInterval)
		})
	}

	return cs
}

// Get retrieves a value from cache.
func (cs *CacheService) Get(key string) (interface{}, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	entry, exists := cs.cache[key]
	if !exists {
		return nil, false
	}

	// Check if expired
	if time.Now().After(entry.expiresAt) {
		// Don't delete here, let cleanup handle it
		return nil, false
	}

	return entry.data, true
}

// Set stores a value in cache with TTL.
func (cs *CacheService) Set(key string, value interface{}, ttl time.Duration) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.cache[key] = &cacheEntry{
		data:      value,
		expiresAt: time.Now().Add(ttl),
	}
}

// Delete removes a key from cache.
func (cs *CacheService) Delete(key string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	delete(cs.cache, key)
}

// InvalidateByPrefix removes all keys with the given prefix.
func (cs *CacheService) InvalidateByPrefix(prefix string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	for key := range cs.cache {
		if strings.HasPrefix(key, prefix) {
			delete(cs.cache, key)
		}
	}
}

// Len returns the number of stored entries, expired ones included.
func (cs *CacheService) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.cache)
}

// cleanup removes expired entries periodically.
func (cs *CacheService) cleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cs.removeExpired()
		}
	}
}

func (cs *CacheService) removeExpired() {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	now := time.Now()
	for key, entry := range cs.cache {
		if now.After(entry.expiresAt) {
			delete(cs.cache, key)
		}
	}
}

// Cache key generators
func SearchCacheKey(criteriaKey string) string {
	return "search:" + criteriaKey
}

func SessionViewKey(sessionID string) string {
	return "view:" + sessionID
}

const facetsCacheKey = "facets"

// GetOrSet retrieves a value from cache or computes it if not found.
func (cs *CacheService) GetOrSet(
	ctx context.Context,
	key string,
	ttl time.Duration,
	fn func() (interface{}, error),
) (interface{}, error) {
	// Try to get from cache
	if value, found := cs.Get(key); found {
		return value, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Compute value
	value, err := fn()
	if err != nil {
		return nil, err
	}

	// Store in cache
	cs.Set(key, value, ttl)

	return value, nil
}
