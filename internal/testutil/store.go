package testutil

import (
	"context"
	"errors"

	"github.com/mcoot/pickleball-scorekeeper/internal/storage"
)

// errBackendDown is the cause reported by UnavailableStore
var errBackendDown = errors.New("backend down")

// UnavailableStore fails every call with storage.ErrUnavailable, standing in
// for a blocked or broken storage medium
type UnavailableStore struct{}

var _ storage.Store = UnavailableStore{}

func (UnavailableStore) Get(ctx context.Context, key string) (string, error) {
	return "", storage.Unavailable("get", errBackendDown)
}

func (UnavailableStore) Set(ctx context.Context, key, value string) error {
	return storage.Unavailable("set", errBackendDown)
}

func (UnavailableStore) Delete(ctx context.Context, key string) error {
	return storage.Unavailable("delete", errBackendDown)
}
