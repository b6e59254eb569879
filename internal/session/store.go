// Package session provides the key-value persistence capability the identity
// service uses to keep the current identity across requests. The service
// depends only on the Store interface, never on a concrete medium.
package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no entry exists for the key. Expired
// entries read as not found.
var ErrNotFound = errors.New("session: not found")

// Store is a session-scoped key-value store with get/set/clear semantics.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context, key string) error
}
