package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// LoadJSON reads key and decodes it into v.
// A value that is not valid JSON is reported as ErrCorrupt.
func LoadJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return fmt.Errorf("%s: %w", key, ErrCorrupt)
	}
	return nil
}

// SaveJSON encodes v and stores it under key
func SaveJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, string(data))
}

// Unavailable wraps a backend error so callers can match ErrUnavailable
func Unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}

// Degraded reports whether a read failed for a reason other than the key
// simply being absent: a corrupt value or an unavailable backend
func Degraded(err error) bool {
	return err != nil && (!errors.Is(err, ErrNotFound) || errors.Is(err, ErrCorrupt))
}
