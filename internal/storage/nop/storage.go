// Package nop provides a store for headless runs: nothing is ever found and
// writes are discarded.
package nop

import (
	"context"

	"github.com/mcoot/pickleball-scorekeeper/internal/storage"
)

// Storage discards everything
type Storage struct{}

// New creates a no-op store
func New() *Storage {
	return &Storage{}
}

var _ storage.Store = (*Storage)(nil)

func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	return "", storage.ErrNotFound
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	return nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	return nil
}
