package memory

import (
	"context"
	"sync"
	"time"
)

// Gate implements ports.Gate in memory.
// Safe for concurrent use; it only coordinates callers within one process.
type Gate struct {
	mu      sync.Mutex
	windows map[string]time.Time
	now     func() time.Time
}

// NewGate creates an empty in-memory gate.
func NewGate() *Gate {
	return &Gate{
		windows: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Allow opens a window for key unless one is still open.
// A window of zero or less admits the caller without recording anything.
func (g *Gate) Allow(ctx context.Context, key string, window time.Duration) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if window <= 0 {
		return true, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if until, ok := g.windows[key]; ok && now.Before(until) {
		return false, nil
	}
	g.windows[key] = now.Add(window)
	g.sweep(now)
	return true, nil
}

// Reset closes the window for key.
func (g *Gate) Reset(ctx context.Context, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.windows, key)
	return nil
}

// sweep drops expired windows so the map does not grow with one-off keys.
func (g *Gate) sweep(now time.Time) {
	for k, until := range g.windows {
		if !now.Before(until) {
			delete(g.windows, k)
		}
	}
}
