// Package metadata is the durable key/value store of the client. The session
// keeps its token, username and role here between runs.
package metadata

import (
	"context"
)

// Repository persists opaque values by key.
//
// Get returns (nil, nil) for an absent key; absence of the token key is how
// a logged-out client is recognised.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
