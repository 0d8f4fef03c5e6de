package scrape

import (
	"sync"
	"time"
)

// pageCacheEntry holds a cached page body and its expiration time.
type pageCacheEntry struct {
	body      []byte
	expiresAt time.Time
}

// PageCache is a thread-safe, in-memory TTL cache for fetched index pages.
// Entries are lazily expired on access.
type PageCache struct {
	mu         sync.RWMutex
	entries    map[string]pageCacheEntry
	defaultTTL time.Duration
}

// NewPageCache creates a cache with the given default TTL. A non-positive
// TTL disables caching entirely.
func NewPageCache(defaultTTL time.Duration) *PageCache {
	return &PageCache{
		entries:    make(map[string]pageCacheEntry),
		defaultTTL: defaultTTL,
	}
}

// Get retrieves a cached page body by URL. Returns the body and true when
// present and not expired. Expired entries are removed on access.
func (pageCache *PageCache) Get(url string) ([]byte, bool) {
	if pageCache.defaultTTL <= 0 {
		return nil, false
	}

	pageCache.mu.RLock()
	entry, exists := pageCache.entries[url]
	pageCache.mu.RUnlock()

	if !exists {
		return nil, false
	}

	if time.Now().After(entry.expiresAt) {
		pageCache.mu.Lock()
		if current, stillExists := pageCache.entries[url]; stillExists && time.Now().After(current.expiresAt) {
			delete(pageCache.entries, url)
		}
		pageCache.mu.Unlock()
		return nil, false
	}

	return entry.body, true
}

// Set stores a page body with the default TTL.
func (pageCache *PageCache) Set(url string, body []byte) {
	if pageCache.defaultTTL <= 0 {
		return
	}

	pageCache.mu.Lock()
	pageCache.entries[url] = pageCacheEntry{
		body:      body,
		expiresAt: time.Now().Add(pageCache.defaultTTL),
	}
	pageCache.mu.Unlock()
}

// Len returns the number of entries currently in the cache.
func (pageCache *PageCache) Len() int {
	pageCache.mu.RLock()
	count := len(pageCache.entries)
	pageCache.mu.RUnlock()
	return count
}
