// Package metadata persists small client-local key/value pairs, such as the
// session credential, in the local SQLite database.
package metadata

import "context"

// Repository is a string key/value store. Get reports found=false for a key
// that was never set or has been deleted.
type Repository interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
