package redisx

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// HashOps is the hash facade. Field names are not keys and are never named.
type HashOps struct {
	operations
}

// Bound returns a hash facade bound to key.
func (o *HashOps) Bound(key string) *BoundHashOps {
	return &BoundHashOps{boundKey: o.bind(key)}
}

// HSet accepts field/value pairs, a map or a struct, as go-redis does.
func (o *HashOps) HSet(ctx context.Context, key string, values ...any) *redis.IntCmd {
	return o.client.HSet(ctx, o.name(key), values...)
}

// HSetNX runs HSETNX on the named key.
func (o *HashOps) HSetNX(ctx context.Context, key, field string, value any) *redis.BoolCmd {
	return o.client.HSetNX(ctx, o.name(key), field, value)
}

// HGet runs HGET on the named key.
func (o *HashOps) HGet(ctx context.Context, key, field string) *redis.StringCmd {
	return o.client.HGet(ctx, o.name(key), field)
}

// HMGet runs HMGET on the named key.
func (o *HashOps) HMGet(ctx context.Context, key string, fields ...string) *redis.SliceCmd {
	return o.client.HMGet(ctx, o.name(key), fields...)
}

// HGetAll runs HGETALL on the named key.
func (o *HashOps) HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd {
	return o.client.HGetAll(ctx, o.name(key))
}

// HDel runs HDEL on the named key.
func (o *HashOps) HDel(ctx context.Context, key string, fields ...string) *redis.IntCmd {
	return o.client.HDel(ctx, o.name(key), fields...)
}

// HExists runs HEXISTS on the named key.
func (o *HashOps) HExists(ctx context.Context, key, field string) *redis.BoolCmd {
	return o.client.HExists(ctx, o.name(key), field)
}

// HIncrBy runs HINCRBY on the named key.
func (o *HashOps) HIncrBy(ctx context.Context, key, field string, incr int64) *redis.IntCmd {
	return o.client.HIncrBy(ctx, o.name(key), field, incr)
}

// HIncrByFloat runs HINCRBYFLOAT on the named key.
func (o *HashOps) HIncrByFloat(ctx context.Context, key, field string, incr float64) *redis.FloatCmd {
	return o.client.HIncrByFloat(ctx, o.name(key), field, incr)
}

// HKeys runs HKEYS on the named key.
func (o *HashOps) HKeys(ctx context.Context, key string) *redis.StringSliceCmd {
	return o.client.HKeys(ctx, o.name(key))
}

// HVals runs HVALS on the named key.
func (o *HashOps) HVals(ctx context.Context, key string) *redis.StringSliceCmd {
	return o.client.HVals(ctx, o.name(key))
}

// HLen runs HLEN on the named key.
func (o *HashOps) HLen(ctx context.Context, key string) *redis.IntCmd {
	return o.client.HLen(ctx, o.name(key))
}

// HRandField runs HRANDFIELD on the named key.
func (o *HashOps) HRandField(ctx context.Context, key string, count int) *redis.StringSliceCmd {
	return o.client.HRandField(ctx, o.name(key), count)
}

// HScan runs HSCAN on the named key.
func (o *HashOps) HScan(ctx context.Context, key string, cursor uint64, match string, count int64) *redis.ScanCmd {
	return o.client.HScan(ctx, o.name(key), cursor, match, count)
}

// BoundHashOps is a hash facade bound to one key.
type BoundHashOps struct {
	*boundKey
}

// Put runs HSET on the bound key.
func (b *BoundHashOps) Put(ctx context.Context, field string, value any) *redis.IntCmd {
	return b.client.HSet(ctx, b.PhysicalKey(), field, value)
}

// PutAll stores every field of values.
func (b *BoundHashOps) PutAll(ctx context.Context, values map[string]any) *redis.IntCmd {
	return b.client.HSet(ctx, b.PhysicalKey(), values)
}

// PutIfAbsent runs HSETNX on the bound key.
func (b *BoundHashOps) PutIfAbsent(ctx context.Context, field string, value any) *redis.BoolCmd {
	return b.client.HSetNX(ctx, b.PhysicalKey(), field, value)
}

// Get runs HGET on the bound key.
func (b *BoundHashOps) Get(ctx context.Context, field string) *redis.StringCmd {
	return b.client.HGet(ctx, b.PhysicalKey(), field)
}

// MultiGet runs HMGET on the bound key.
func (b *BoundHashOps) MultiGet(ctx context.Context, fields ...string) *redis.SliceCmd {
	return b.client.HMGet(ctx, b.PhysicalKey(), fields...)
}

// Entries runs HGETALL on the bound key.
func (b *BoundHashOps) Entries(ctx context.Context) *redis.MapStringStringCmd {
	return b.client.HGetAll(ctx, b.PhysicalKey())
}

// Delete runs HDEL on the bound key.
func (b *BoundHashOps) Delete(ctx context.Context, fields ...string) *redis.IntCmd {
	return b.client.HDel(ctx, b.PhysicalKey(), fields...)
}

// HasKey runs HEXISTS on the bound key.
func (b *BoundHashOps) HasKey(ctx context.Context, field string) *redis.BoolCmd {
	return b.client.HExists(ctx, b.PhysicalKey(), field)
}

// Increment runs HINCRBY on the bound key.
func (b *BoundHashOps) Increment(ctx context.Context, field string, delta int64) *redis.IntCmd {
	return b.client.HIncrBy(ctx, b.PhysicalKey(), field, delta)
}

// Keys runs HKEYS on the bound key.
func (b *BoundHashOps) Keys(ctx context.Context) *redis.StringSliceCmd {
	return b.client.HKeys(ctx, b.PhysicalKey())
}

// Values runs HVALS on the bound key.
func (b *BoundHashOps) Values(ctx context.Context) *redis.StringSliceCmd {
	return b.client.HVals(ctx, b.PhysicalKey())
}

// Size runs HLEN on the bound key.
func (b *BoundHashOps) Size(ctx context.Context) *redis.IntCmd {
	return b.client.HLen(ctx, b.PhysicalKey())
}

// Scan runs HSCAN on the bound key.
func (b *BoundHashOps) Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd {
	return b.client.HScan(ctx, b.PhysicalKey(), cursor, match, count)
}
