package database

import "context"

// KVReader defines read operations on the key-value table.
type KVReader interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Keys(ctx context.Context) ([]string, error)
}

// KVWriter defines write operations on the key-value table.
type KVWriter interface {
	Put(ctx context.Context, key, value string) error
	PutMany(ctx context.Context, entries map[string]string) error
	Delete(ctx context.Context, key string) error
}

// KeyValueStore combines all key-value operations.
type KeyValueStore interface {
	KVReader
	KVWriter
}
