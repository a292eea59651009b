// Package secrets implements the durable secure key-value store backing the
// session cache. Values are encrypted at rest with a key derived from a
// per-device secret.
package secrets

import (
	"context"
)

// Repository is the secure key-value store contract. Values are opaque
// strings; callers are responsible for serialization. A missing key reads
// back as ("", nil).
//
// SetMany and DeleteMany are atomic: either every key is written/removed or
// none is. The session cache relies on this for records that span keys.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	SetMany(ctx context.Context, values map[string]string) error
	Delete(ctx context.Context, key string) error
	DeleteMany(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}
