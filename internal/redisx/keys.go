package redisx

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Delete removes keys.
func (t *Template) Delete(ctx context.Context, keys ...string) *redis.IntCmd {
	return t.client.Del(ctx, t.names(keys)...)
}

// Unlink removes keys asynchronously.
func (t *Template) Unlink(ctx context.Context, keys ...string) *redis.IntCmd {
	return t.client.Unlink(ctx, t.names(keys)...)
}

// Exists counts how many of keys exist.
func (t *Template) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	return t.client.Exists(ctx, t.names(keys)...)
}

// Expire runs EXPIRE on the named key.
func (t *Template) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	return t.client.Expire(ctx, t.name(key), expiration)
}

// ExpireAt runs EXPIREAT on the named key.
func (t *Template) ExpireAt(ctx context.Context, key string, tm time.Time) *redis.BoolCmd {
	return t.client.ExpireAt(ctx, t.name(key), tm)
}

// Persist runs PERSIST on the named key.
func (t *Template) Persist(ctx context.Context, key string) *redis.BoolCmd {
	return t.client.Persist(ctx, t.name(key))
}

// TTL runs TTL on the named key.
func (t *Template) TTL(ctx context.Context, key string) *redis.DurationCmd {
	return t.client.TTL(ctx, t.name(key))
}

// Type runs TYPE on the named key.
func (t *Template) Type(ctx context.Context, key string) *redis.StatusCmd {
	return t.client.Type(ctx, t.name(key))
}

// Rename names both the source and the destination key.
func (t *Template) Rename(ctx context.Context, key, newKey string) *redis.StatusCmd {
	return t.client.Rename(ctx, t.name(key), t.name(newKey))
}

// RenameNX runs RENAMENX on the named keys.
func (t *Template) RenameNX(ctx context.Context, key, newKey string) *redis.BoolCmd {
	return t.client.RenameNX(ctx, t.name(key), t.name(newKey))
}

// Keys lists keys matching pattern inside the namespace. The pattern is
// named like a key, so "user:*" becomes "app:user:*" and "" lists the whole
// namespace. Returned keys are physical keys.
func (t *Template) Keys(ctx context.Context, pattern string) *redis.StringSliceCmd {
	return t.client.Keys(ctx, t.pattern(pattern))
}

// Scan iterates keys matching match inside the namespace. An empty match
// covers the whole namespace. Returned keys are physical keys.
func (t *Template) Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd {
	return t.client.Scan(ctx, cursor, t.pattern(match), count)
}
