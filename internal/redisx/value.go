package redisx

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// ValueOps is the string/value facade.
type ValueOps struct {
	operations
}

// Bound returns a value facade bound to key.
func (o *ValueOps) Bound(key string) *BoundValueOps {
	return &BoundValueOps{boundKey: o.bind(key)}
}

// Set runs SET on the named key.
func (o *ValueOps) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	return o.client.Set(ctx, o.name(key), value, expiration)
}

// SetNX sets key only if it does not exist.
func (o *ValueOps) SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd {
	return o.client.SetNX(ctx, o.name(key), value, expiration)
}

// SetXX sets key only if it already exists.
func (o *ValueOps) SetXX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd {
	return o.client.SetXX(ctx, o.name(key), value, expiration)
}

// Get runs GET on the named key.
func (o *ValueOps) Get(ctx context.Context, key string) *redis.StringCmd {
	return o.client.Get(ctx, o.name(key))
}

// GetSet runs GETSET on the named key.
func (o *ValueOps) GetSet(ctx context.Context, key string, value any) *redis.StringCmd {
	return o.client.GetSet(ctx, o.name(key), value)
}

// GetDel runs GETDEL on the named key.
func (o *ValueOps) GetDel(ctx context.Context, key string) *redis.StringCmd {
	return o.client.GetDel(ctx, o.name(key))
}

// GetEx runs GETEX on the named key.
func (o *ValueOps) GetEx(ctx context.Context, key string, expiration time.Duration) *redis.StringCmd {
	return o.client.GetEx(ctx, o.name(key), expiration)
}

// MGet returns values in the order of keys.
func (o *ValueOps) MGet(ctx context.Context, keys ...string) *redis.SliceCmd {
	return o.client.MGet(ctx, o.names(keys)...)
}

// MSet names every key of values.
func (o *ValueOps) MSet(ctx context.Context, values map[string]any) *redis.StatusCmd {
	return o.client.MSet(ctx, o.pairs(values)...)
}

// MSetNX sets every pair only if none of the keys exist.
func (o *ValueOps) MSetNX(ctx context.Context, values map[string]any) *redis.BoolCmd {
	return o.client.MSetNX(ctx, o.pairs(values)...)
}

func (o *ValueOps) pairs(values map[string]any) []any {
	args := make([]any, 0, 2*len(values))
	for k, v := range values {
		args = append(args, o.name(k), v)
	}
	return args
}

// Incr runs INCR on the named key.
func (o *ValueOps) Incr(ctx context.Context, key string) *redis.IntCmd {
	return o.client.Incr(ctx, o.name(key))
}

// IncrBy runs INCRBY on the named key.
func (o *ValueOps) IncrBy(ctx context.Context, key string, value int64) *redis.IntCmd {
	return o.client.IncrBy(ctx, o.name(key), value)
}

// IncrByFloat runs INCRBYFLOAT on the named key.
func (o *ValueOps) IncrByFloat(ctx context.Context, key string, value float64) *redis.FloatCmd {
	return o.client.IncrByFloat(ctx, o.name(key), value)
}

// Decr runs DECR on the named key.
func (o *ValueOps) Decr(ctx context.Context, key string) *redis.IntCmd {
	return o.client.Decr(ctx, o.name(key))
}

// DecrBy runs DECRBY on the named key.
func (o *ValueOps) DecrBy(ctx context.Context, key string, decrement int64) *redis.IntCmd {
	return o.client.DecrBy(ctx, o.name(key), decrement)
}

// Append runs APPEND on the named key.
func (o *ValueOps) Append(ctx context.Context, key, value string) *redis.IntCmd {
	return o.client.Append(ctx, o.name(key), value)
}

// GetRange runs GETRANGE on the named key.
func (o *ValueOps) GetRange(ctx context.Context, key string, start, end int64) *redis.StringCmd {
	return o.client.GetRange(ctx, o.name(key), start, end)
}

// SetRange runs SETRANGE on the named key.
func (o *ValueOps) SetRange(ctx context.Context, key string, offset int64, value string) *redis.IntCmd {
	return o.client.SetRange(ctx, o.name(key), offset, value)
}

// StrLen runs STRLEN on the named key.
func (o *ValueOps) StrLen(ctx context.Context, key string) *redis.IntCmd {
	return o.client.StrLen(ctx, o.name(key))
}

// SetBit runs SETBIT on the named key.
func (o *ValueOps) SetBit(ctx context.Context, key string, offset int64, value int) *redis.IntCmd {
	return o.client.SetBit(ctx, o.name(key), offset, value)
}

// GetBit runs GETBIT on the named key.
func (o *ValueOps) GetBit(ctx context.Context, key string, offset int64) *redis.IntCmd {
	return o.client.GetBit(ctx, o.name(key), offset)
}

// BitCount counts set bits; a nil bitCount counts the whole string.
func (o *ValueOps) BitCount(ctx context.Context, key string, bitCount *redis.BitCount) *redis.IntCmd {
	return o.client.BitCount(ctx, o.name(key), bitCount)
}

// BoundValueOps is a value facade bound to one key.
type BoundValueOps struct {
	*boundKey
}

// Set runs SET on the bound key.
func (b *BoundValueOps) Set(ctx context.Context, value any, expiration time.Duration) *redis.StatusCmd {
	return b.client.Set(ctx, b.PhysicalKey(), value, expiration)
}

// SetNX runs SET NX on the bound key.
func (b *BoundValueOps) SetNX(ctx context.Context, value any, expiration time.Duration) *redis.BoolCmd {
	return b.client.SetNX(ctx, b.PhysicalKey(), value, expiration)
}

// SetXX runs SET XX on the bound key.
func (b *BoundValueOps) SetXX(ctx context.Context, value any, expiration time.Duration) *redis.BoolCmd {
	return b.client.SetXX(ctx, b.PhysicalKey(), value, expiration)
}

// Get runs GET on the bound key.
func (b *BoundValueOps) Get(ctx context.Context) *redis.StringCmd {
	return b.client.Get(ctx, b.PhysicalKey())
}

// GetSet runs GETSET on the bound key.
func (b *BoundValueOps) GetSet(ctx context.Context, value any) *redis.StringCmd {
	return b.client.GetSet(ctx, b.PhysicalKey(), value)
}

// Incr runs INCR on the bound key.
func (b *BoundValueOps) Incr(ctx context.Context) *redis.IntCmd {
	return b.client.Incr(ctx, b.PhysicalKey())
}

// IncrBy runs INCRBY on the bound key.
func (b *BoundValueOps) IncrBy(ctx context.Context, value int64) *redis.IntCmd {
	return b.client.IncrBy(ctx, b.PhysicalKey(), value)
}

// IncrByFloat runs INCRBYFLOAT on the bound key.
func (b *BoundValueOps) IncrByFloat(ctx context.Context, value float64) *redis.FloatCmd {
	return b.client.IncrByFloat(ctx, b.PhysicalKey(), value)
}

// Decr runs DECR on the bound key.
func (b *BoundValueOps) Decr(ctx context.Context) *redis.IntCmd {
	return b.client.Decr(ctx, b.PhysicalKey())
}

// DecrBy runs DECRBY on the bound key.
func (b *BoundValueOps) DecrBy(ctx context.Context, decrement int64) *redis.IntCmd {
	return b.client.DecrBy(ctx, b.PhysicalKey(), decrement)
}

// Append runs APPEND on the bound key.
func (b *BoundValueOps) Append(ctx context.Context, value string) *redis.IntCmd {
	return b.client.Append(ctx, b.PhysicalKey(), value)
}

// GetRange runs GETRANGE on the bound key.
func (b *BoundValueOps) GetRange(ctx context.Context, start, end int64) *redis.StringCmd {
	return b.client.GetRange(ctx, b.PhysicalKey(), start, end)
}

// SetRange runs SETRANGE on the bound key.
func (b *BoundValueOps) SetRange(ctx context.Context, offset int64, value string) *redis.IntCmd {
	return b.client.SetRange(ctx, b.PhysicalKey(), offset, value)
}

// StrLen runs STRLEN on the bound key.
func (b *BoundValueOps) StrLen(ctx context.Context) *redis.IntCmd {
	return b.client.StrLen(ctx, b.PhysicalKey())
}
