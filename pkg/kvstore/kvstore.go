package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no value exists for a key.
var ErrNotFound = errors.New("key not found")

// Store is the durable key-value persistence port. Everything the service
// keeps across restarts (users, history, quotas, entitlements) goes through
// it; the analysis core never touches it.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
