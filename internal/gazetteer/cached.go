package gazetteer

import (
	"encoding/json"
	"time"

	"github.com/relextract/slotscan/internal/cache"
)

// Cached wraps a gazetteer with a lookup cache. Useful in front of the remote
// backend, where the same antecedent strings recur across sentences.
type Cached struct {
	inner Gazetteer
	store cache.Cache
	ttl   time.Duration
}

// cachedEntry is the serialized cache value for one name.
type cachedEntry struct {
	City    bool `json:"city"`
	Region  bool `json:"region"`
	Country bool `json:"country"`
}

// NewCached creates a caching gazetteer wrapper.
func NewCached(inner Gazetteer, store cache.Cache, ttl time.Duration) *Cached {
	return &Cached{inner: inner, store: store, ttl: ttl}
}

// IsValidCity reports whether the name is a known city.
func (c *Cached) IsValidCity(name string) bool {
	return c.lookup(name).City
}

// IsValidRegion reports whether the name is a known state or province.
func (c *Cached) IsValidRegion(name string) bool {
	return c.lookup(name).Region
}

// IsValidCountry reports whether the name is a known country.
func (c *Cached) IsValidCountry(name string) bool {
	return c.lookup(name).Country
}

// lookup resolves all three classifications for a name, serving from cache
// when possible. All three are resolved together so one remote round trip
// covers the rewrite pass's city → region → country cascade.
func (c *Cached) lookup(name string) cachedEntry {
	key := cache.Key(normalize(name))

	if data, found := c.store.Get(key); found {
		var entry cachedEntry
		if err := json.Unmarshal(data, &entry); err == nil {
			return entry
		}
		// Corrupt entry; fall through and refresh
	}

	entry := cachedEntry{
		City:    c.inner.IsValidCity(name),
		Region:  c.inner.IsValidRegion(name),
		Country: c.inner.IsValidCountry(name),
	}

	if data, err := json.Marshal(entry); err == nil {
		_ = c.store.Set(key, data, c.ttl)
	}
	return entry
}
