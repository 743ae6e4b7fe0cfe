package ports

import (
	"context"
	"time"
)

// Gate admits at most one event per key and window.
// Backends shared between processes (e.g. Redis) let several replicas share a single
// throttle window; the in-memory backend only coordinates one process.
type Gate interface {
	// Allow reports whether the caller may proceed. It returns true for the first caller
	// of a window and false for every other caller until the window has elapsed.
	// A window of zero or less always admits.
	Allow(ctx context.Context, key string, window time.Duration) (bool, error)
}
