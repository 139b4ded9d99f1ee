package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrDecode marks a stored value that is not valid JSON for the target type.
var ErrDecode = errors.New("undecodable metadata value")

// LoadJSON decodes the value under key into a new T. ok is false when the key
// is absent.
func LoadJSON[T any](ctx context.Context, r Repository, key string) (v T, ok bool, err error) {
	raw, err := r.Get(ctx, key)
	if err != nil {
		return v, false, err
	}
	if raw == nil {
		return v, false, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, false, fmt.Errorf("%w: key %s: %v", ErrDecode, key, err)
	}
	return v, true, nil
}

// StoreJSON encodes v and saves it under key.
func StoreJSON(ctx context.Context, r Repository, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode metadata[%s]: %w", key, err)
	}
	return r.Set(ctx, key, raw)
}
