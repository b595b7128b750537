package redisx

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// boundKey holds the key a bound facade was created for. The physical key is
// computed once at construction and again only after a successful Rename.
type boundKey struct {
	operations

	mu       sync.RWMutex
	key      string
	physical string
}

func (o operations) bind(key string) *boundKey {
	return &boundKey{
		operations: o,
		key:        key,
		physical:   o.name(key),
	}
}

// Key returns the logical key.
func (b *boundKey) Key() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.key
}

// PhysicalKey returns the key as stored in Redis.
func (b *boundKey) PhysicalKey() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.physical
}

// Expire runs EXPIRE on the bound key.
func (b *boundKey) Expire(ctx context.Context, expiration time.Duration) *redis.BoolCmd {
	return b.client.Expire(ctx, b.PhysicalKey(), expiration)
}

// ExpireAt runs EXPIREAT on the bound key.
func (b *boundKey) ExpireAt(ctx context.Context, tm time.Time) *redis.BoolCmd {
	return b.client.ExpireAt(ctx, b.PhysicalKey(), tm)
}

// Persist runs PERSIST on the bound key.
func (b *boundKey) Persist(ctx context.Context) *redis.BoolCmd {
	return b.client.Persist(ctx, b.PhysicalKey())
}

// TTL runs TTL on the bound key.
func (b *boundKey) TTL(ctx context.Context) *redis.DurationCmd {
	return b.client.TTL(ctx, b.PhysicalKey())
}

// Type runs TYPE on the bound key.
func (b *boundKey) Type(ctx context.Context) *redis.StatusCmd {
	return b.client.Type(ctx, b.PhysicalKey())
}

// Rename renames the bound key and, when Redis accepts it, rebinds the
// facade to newKey.
func (b *boundKey) Rename(ctx context.Context, newKey string) *redis.StatusCmd {
	b.mu.Lock()
	defer b.mu.Unlock()

	physical := b.name(newKey)
	cmd := b.client.Rename(ctx, b.physical, physical)
	if cmd.Err() == nil {
		b.key = newKey
		b.physical = physical
	}
	return cmd
}
