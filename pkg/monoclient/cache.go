package monoclient

import (
	"sync"
	"time"
)

// currencyCache memoizes the result of exactly one read-only endpoint. It is
// a single entry with an expiry instant, not a general cache subsystem.
type currencyCache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	value   []Currency
	expires time.Time
}

func newCurrencyCache(ttl time.Duration, now func() time.Time) *currencyCache {
	return &currencyCache{ttl: ttl, now: now}
}

// get returns the cached value while it is still fresh.
func (c *currencyCache) get() ([]Currency, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.value == nil || !c.now().Before(c.expires) {
		return nil, false
	}
	return c.value, true
}

func (c *currencyCache) put(value []Currency) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = value
	c.expires = c.now().Add(c.ttl)
}
