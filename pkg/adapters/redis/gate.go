// Package redis provides a ports.Gate shared between processes through Redis.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces gate keys.
const DefaultPrefix = "toolbelt:gate:"

// releaseScript deletes a window only if this gate opened it.
const releaseScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end
`

// Gate implements ports.Gate using Redis SET NX PX: the first caller of a window
// creates the key and every other caller fails until it expires.
type Gate struct {
	client backend.UniversalClient
	prefix string
	owner  string
}

// Option configures a Gate.
type Option func(*Gate)

// WithPrefix overrides DefaultPrefix.
func WithPrefix(prefix string) Option {
	return func(g *Gate) {
		if prefix != "" {
			g.prefix = prefix
		}
	}
}

// NewGate creates a gate on client. Each gate gets a random owner token, stored as the
// window value, so Release only removes windows it opened.
func NewGate(client backend.UniversalClient, opts ...Option) *Gate {
	g := &Gate{
		client: client,
		prefix: DefaultPrefix,
		owner:  uuid.NewString(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Allow tries to open the window for key.
// A window of zero or less admits the caller without writing a key, since SET with
// no expiry would close the window for good.
func (g *Gate) Allow(ctx context.Context, key string, window time.Duration) (bool, error) {
	if window <= 0 {
		return true, nil
	}
	ok, err := g.client.SetNX(ctx, g.prefix+key, g.owner, window).Result()
	if err != nil {
		return false, fmt.Errorf("redis gate %s: %w", key, err)
	}
	return ok, nil
}

// Release closes the window for key early if this gate opened it.
func (g *Gate) Release(ctx context.Context, key string) (bool, error) {
	n, err := g.client.Eval(ctx, releaseScript, []string{g.prefix + key}, g.owner).Int()
	if err != nil {
		return false, fmt.Errorf("redis gate release %s: %w", key, err)
	}
	return n == 1, nil
}

// Owner returns the token this gate writes into the windows it opens.
func (g *Gate) Owner() string {
	return g.owner
}
