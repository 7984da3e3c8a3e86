// Package cache holds the explicit query cache for company list results.
// The key is the full query tuple (search, page, limit); invalidation is
// synchronous after every confirmed write, so no entry can outlive the
// data it was computed from.
package cache

import (
	"sync"

	"github.com/compdir/company-directory-api/internal/application/dto"
)

// Key identifies one cached list page.
type Key struct {
	Search string
	Page   int
	Limit  int
}

// ListCache is a plain key-value cache for list responses. Mutations purge
// the whole cache rather than tracking which pages a write touches;
// list pages shift on any insert or delete, so per-key invalidation would
// be wrong anyway.
type ListCache struct {
	mu      sync.RWMutex
	entries map[Key]*dto.CompanyListResponse
}

// NewListCache returns an empty cache.
func NewListCache() *ListCache {
	return &ListCache{entries: make(map[Key]*dto.CompanyListResponse)}
}

// Get returns the cached response for k, if present.
func (c *ListCache) Get(k Key) (*dto.CompanyListResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[k]
	return v, ok
}

// Put stores the response for k.
func (c *ListCache) Put(k Key, v *dto.CompanyListResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[k] = v
}

// Purge drops every entry. Called after each confirmed mutation.
func (c *ListCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[Key]*dto.CompanyListResponse)
}

// Len reports the number of cached pages.
func (c *ListCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
