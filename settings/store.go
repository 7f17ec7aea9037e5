// Package settings is a minimal key-value store for user preferences.
// The only thing the storefront persists is the selected language.
package settings

import "context"

// Store reads and writes preference values. A missing key yields an empty
// string, not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
