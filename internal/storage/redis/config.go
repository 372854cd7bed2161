package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Namespace separates scorekeepers sharing one Redis (e.g. one per court)
	Namespace string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// MatchTTL expires an abandoned match record. Zero keeps it forever.
	// The roster and custom mode never expire.
	MatchTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		Namespace:    "default",
		PoolSize:     10,
		MinIdleConns: 2,
		MatchTTL:     0,
	}
}
