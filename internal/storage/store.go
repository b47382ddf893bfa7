// Package storage defines the key-value port the client persists its local
// state through, with sqlite-backed, in-memory and disabled implementations.
package storage

import "context"

// Store is a small key-value port. Implementations must return (nil, nil)
// from Get when the key is absent, and Delete must be idempotent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// BatchWriter is an optional upgrade a Store may implement: all writes in one
// call become visible together or not at all. Callers type-assert and fall
// back to sequential Sets.
type BatchWriter interface {
	SetBatch(ctx context.Context, kv map[string][]byte) error
}
