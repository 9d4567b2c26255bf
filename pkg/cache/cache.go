// Package cache stores rendered pages between runs.
//
// A page only needs to be drawn again when its inputs change: the data
// tables, the effective configuration, the page range or the output
// format. [Keyer] folds all of these into a single key; a [Cache] maps the
// key to the encoded page bytes.
//
// The CLI uses a [FileCache] under the user's cache directory and a
// [NullCache] when --no-cache is given.
package cache

import (
	"context"
	"time"
)

// TTLPage is how long a rendered page stays valid. Keys already change
// with the inputs, so this only bounds the size of a stale cache.
const TTLPage = 30 * 24 * time.Hour

// Cache is a byte store with expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}
