package store

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("key not found")

// Store is a flat key-value namespace holding JSON-serializable values.
// All persisted application state (preferences, saved jobs, status map,
// status history, digests, checklist) lives behind this interface so
// tests can inject an in-memory fake.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// GetJSON reads key and unmarshals it into dest. An absent key or a
// value that fails to parse leaves dest untouched and returns nil:
// consumers always fall back to their zero default rather than failing.
// Storage transport errors are still surfaced.
func GetJSON(ctx context.Context, s Store, key string, dest interface{}) error {
	data, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		// Malformed persisted JSON is discarded, not propagated.
		return nil
	}
	return nil
}

// SetJSON marshals value and writes it under key.
func SetJSON(ctx context.Context, s Store, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, data)
}
