// Package kv provides the durable key-value collaborator the stores persist
// into. Values are whole JSON documents written wholesale; the last writer
// wins, there is no merge or versioning.
package kv

import "context"

// Well-known document keys.
const (
	KeyOrders      = "orders"
	KeyCurrentUser = "auth-storage"
)

// Store abstracts the durable key-value backends.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set overwrites the value under key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}
