package ccapi

import (
	"fmt"
	"time"
)

// CacheType selects a cache backend.
type CacheType string

// Available cache backends.
const (
	CacheTypeMemory CacheType = "memory"
	CacheTypeNATS   CacheType = "nats"
	CacheTypeNone   CacheType = "none"
)

// CacheConfig configures response caching for GET requests.
type CacheConfig struct {
	Type CacheType
	// TTL applied to stored entries. Zero means entries never expire.
	TTL time.Duration
	// MaxSize bounds the memory backend. Ignored by other backends.
	MaxSize int
	// NATS configures the NATS backend. Required when Type is
	// CacheTypeNATS.
	NATS *NATSKVConfig
}

// DefaultCacheConfig returns a memory cache configuration with a 5 minute
// TTL.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		Type:    CacheTypeMemory,
		TTL:     5 * time.Minute,
		MaxSize: 1000,
	}
}

// NewCacheFromConfig builds the cache backend the configuration selects.
func NewCacheFromConfig(config *CacheConfig) (Cache, error) {
	if config == nil {
		return NewNoOpCache(), nil
	}

	switch config.Type {
	case CacheTypeMemory:
		return NewMemoryCache(config.MaxSize), nil
	case CacheTypeNATS:
		return NewNATSKVCache(config.NATS)
	case CacheTypeNone, "":
		return NewNoOpCache(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCacheType, config.Type)
	}
}
