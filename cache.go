package geodat

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedResolver puts a fixed-size LRU cache in front of a Resolver. The
// decoder itself never caches; repeated lookups of hot addresses in a
// long-running process are the caller's concern, and this is the batteries-
// included way to handle them.
type CachedResolver struct {
	r     *Resolver
	cache *lru.Cache[string, *Record]
}

// NewCachedResolver wraps r with an LRU of the given size.
func NewCachedResolver(r *Resolver, size int) (*CachedResolver, error) {
	c, err := lru.New[string, *Record](size)
	if err != nil {
		return nil, fmt.Errorf("geodat: failed to create lookup cache: %w", err)
	}
	return &CachedResolver{r: r, cache: c}, nil
}

// Lookup returns the cached record for addr, or performs the lookup and
// caches the result. Errors, including ErrNotFound, are never cached, so a
// corrupt-record failure does not stick to an address. Callers must treat
// returned records as read-only.
func (c *CachedResolver) Lookup(addr string) (*Record, error) {
	if rec, ok := c.cache.Get(addr); ok {
		return rec, nil
	}
	rec, err := c.r.Lookup(addr)
	if err != nil {
		return nil, err
	}
	c.cache.Add(addr, rec)
	return rec, nil
}

// Purge drops all cached records, e.g. after swapping database files.
func (c *CachedResolver) Purge() { c.cache.Purge() }
