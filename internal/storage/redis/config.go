package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// KeyTTL expires every stored value after the given duration.
	// Zero keeps values until removed; streaks need at least two days.
	KeyTTL time.Duration

	// DialTimeout bounds the connection check done by New
	DialTimeout time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		KeyTTL:       0,
		DialTimeout:  5 * time.Second,
	}
}
