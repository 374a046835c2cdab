package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// KVRepo stores string values under string keys in the kv_store table
type KVRepo struct {
	db *sql.DB
}

// Get returns the value under key; found is false when the key is absent
func (r *KVRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, "SELECT value FROM kv_store WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

// Keys lists every stored key in lexical order
func (r *KVRepo) Keys(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT key FROM kv_store ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Put writes a single key
func (r *KVRepo) Put(ctx context.Context, key, value string) error {
	return r.PutMany(ctx, map[string]string{key: value})
}

// PutMany writes all entries in one transaction; either every key is updated or none
func (r *KVRepo) PutMany(ctx context.Context, entries map[string]string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, key := range slices.Sorted(maps.Keys(entries)) {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO kv_store (key, value, updated_at)
				VALUES (?, ?, CURRENT_TIMESTAMP)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
			`, key, entries[key])
			if err != nil {
				return fmt.Errorf("failed to write key %q: %w", key, err)
			}
		}
		return nil
	})
}

// Delete removes key; deleting an absent key is not an error
func (r *KVRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM kv_store WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}
