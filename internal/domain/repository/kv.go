package repository

import "context"

// KVStore is the single durable I/O boundary of the storefront core. Values
// are opaque strings; the store never interprets the payload.
//
// Get reports absence (not an error) for both missing keys and failed reads:
// callers fall back to an empty aggregate rather than treating storage
// trouble as fatal.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
