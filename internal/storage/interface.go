package storage

import (
	"context"
	"errors"
	"fmt"
)

// Keys under which the core records are stored. Each is independent.
const (
	KeyCurrentMatch = "currentGame"
	KeyCustomMode   = "lastCustomMode"
	KeyTeams        = "teams"
)

var (
	// ErrNotFound is returned by Get when the key holds no value
	ErrNotFound = errors.New("key not found")

	// ErrCorrupt marks a stored value that could not be decoded.
	// It wraps ErrNotFound: callers treat a corrupt value as absent.
	ErrCorrupt = fmt.Errorf("corrupt value: %w", ErrNotFound)

	// ErrUnavailable wraps backend failures (connection refused, disk errors)
	ErrUnavailable = errors.New("storage unavailable")
)

// Store is the key/value persistence port used by every service.
// Values are opaque strings; the services encode records as JSON.
type Store interface {
	// Get returns the value for key, or ErrNotFound
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
