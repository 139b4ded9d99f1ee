// Package metadata is the client's durable key-value store. It plays the role
// browser local storage plays for a web client: small JSON documents such as
// the logged-in session, addressed by a well-known key.
package metadata

import (
	"context"
)

// Repository stores opaque values by key. Get returns (nil, nil) for a
// missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
