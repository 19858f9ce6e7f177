package repos

import (
	"context"
	"encoding/json"
	"fmt"
)

// Keys of the persisted wheel documents.
const (
	KeyItems   = "items"
	KeyHistory = "history"
)

// Store is a durable string-keyed, string-valued store.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the value and true, or false if the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// LoadJSON reads a JSON document into v. Returns false if the key is absent.
func LoadJSON(ctx context.Context, store Store, key string, v any) (bool, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("get %q: %w", key, err)
	}
	if !ok {
		return false, nil
	}

	err = json.Unmarshal([]byte(raw), v)
	if err != nil {
		return false, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

// SaveJSON writes v as a JSON document.
func SaveJSON(ctx context.Context, store Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}

	err = store.Set(ctx, key, string(data))
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}
