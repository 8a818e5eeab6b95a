package store

import (
	"context"

	"github.com/pkg/errors"
)

// ErrNotFound is returned by Get when a key has never been written.
var ErrNotFound = errors.New("key not found")

// Driver is the raw key-value persistence boundary: string keys, opaque
// serialized values. Implementations must tolerate concurrent readers but
// may assume writes to the same key are not issued concurrently.
type Driver interface {
	Migrate(ctx context.Context) error
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
