// Package kvstore is the persistence shim under the ticket store: string
// keys mapped to JSON-serialized values. A write fully replaces the prior
// value for its key; there are no partial writes or transactions.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrEmptyKey = errors.New("key cannot be empty")

type Store interface {
	// Get decodes the value stored under key into dest and reports whether
	// the key was present. dest is left untouched when it was not.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Remove(ctx context.Context, key string) error
}

// GetOr returns the value stored under key, or fallback when absent.
func GetOr[T any](ctx context.Context, s Store, key string, fallback T) (T, error) {
	var value T
	found, err := s.Get(ctx, key, &value)
	if err != nil {
		return fallback, err
	}
	if !found {
		return fallback, nil
	}
	return value, nil
}

// Exists reports whether anything is stored under key.
func Exists(ctx context.Context, s Store, key string) (bool, error) {
	var raw json.RawMessage
	return s.Get(ctx, key, &raw)
}

func encode(key string, value any) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}
	return data, nil
}

func decode(key string, data []byte, dest any) error {
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to unmarshal value for key %s: %w", key, err)
	}
	return nil
}
