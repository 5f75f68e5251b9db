package gazetteer

import (
	"fmt"

	"github.com/relextract/slotscan/internal/cache"
	"github.com/relextract/slotscan/internal/model"
)

// Gazetteer answers whether a name denotes a known city, region, or country.
// Implementations must be read-only and safe for concurrent use; the annotator
// queries it from multiple sentence workers.
type Gazetteer interface {
	IsValidCity(name string) bool
	IsValidRegion(name string) bool
	IsValidCountry(name string) bool
}

// FromConfig builds the configured gazetteer backend, wrapping it in the
// lookup cache when caching is enabled.
func FromConfig(cfg *model.Config) (Gazetteer, error) {
	var gaz Gazetteer

	switch cfg.Gazetteer.Mode {
	case "", "static":
		static, err := NewStaticFromFiles(cfg.Gazetteer.CityFile, cfg.Gazetteer.RegionFile, cfg.Gazetteer.CountryFile)
		if err != nil {
			return nil, fmt.Errorf("load gazetteer word lists: %w", err)
		}
		// Static lookups are map hits; caching buys nothing
		return static, nil

	case "remote":
		if cfg.Gazetteer.BaseURL == "" {
			return nil, fmt.Errorf("remote gazetteer requires gazetteer.base_url")
		}
		gaz = NewClient(cfg.Gazetteer)

	default:
		return nil, fmt.Errorf("unknown gazetteer mode: %s (supported: static, remote)", cfg.Gazetteer.Mode)
	}

	if cfg.Cache.Enabled {
		var store cache.Cache
		if cfg.Cache.Dir != "" {
			store = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		} else {
			store = cache.NewMemoryCache(cfg.Cache.MemoryTTL, cfg.Cache.MemoryTTL)
		}
		gaz = NewCached(gaz, store, cfg.Cache.MemoryTTL)
	}

	return gaz, nil
}
