package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for gazetteer lookup caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a namespaced cache key from a lookup name
func Key(name string) string {
	hash := sha256.Sum256([]byte(name))
	return "slotscan:v1:" + hex.EncodeToString(hash[:])
}
