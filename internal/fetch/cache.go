package fetch

import (
	"context"
	"sync"
	"time"

	"dealhunt-engine/internal/domain"
)

// Cache memoizes one aggregate fetch for a bounded window so repeated runs
// don't hammer the sources. Sources are not parameterized by user settings,
// so the cache key is "no parameters". A miss recomputes and replaces the
// whole snapshot; snapshots are never merged.
type Cache struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.RWMutex
	fetched  time.Time
	listings []domain.RawListing
	warns    []Warning
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl, now: time.Now}
}

func (c *Cache) Get(ctx context.Context, fetchers []Fetcher, opts Options) ([]domain.RawListing, []Warning) {
	c.mu.RLock()
	if !c.fetched.IsZero() && c.now().Sub(c.fetched) < c.ttl {
		listings, warns := c.listings, c.warns
		c.mu.RUnlock()
		return listings, warns
	}
	c.mu.RUnlock()

	listings, warns := All(ctx, fetchers, opts)

	c.mu.Lock()
	c.listings, c.warns, c.fetched = listings, warns, c.now()
	c.mu.Unlock()
	return listings, warns
}
