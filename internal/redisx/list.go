package redisx

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// ListOps is the list facade.
type ListOps struct {
	operations
}

// Bound returns a list facade bound to key.
func (o *ListOps) Bound(key string) *BoundListOps {
	return &BoundListOps{boundKey: o.bind(key)}
}

// LPush runs LPUSH on the named key.
func (o *ListOps) LPush(ctx context.Context, key string, values ...any) *redis.IntCmd {
	return o.client.LPush(ctx, o.name(key), values...)
}

// LPushX runs LPUSHX on the named key.
func (o *ListOps) LPushX(ctx context.Context, key string, values ...any) *redis.IntCmd {
	return o.client.LPushX(ctx, o.name(key), values...)
}

// RPush runs RPUSH on the named key.
func (o *ListOps) RPush(ctx context.Context, key string, values ...any) *redis.IntCmd {
	return o.client.RPush(ctx, o.name(key), values...)
}

// RPushX runs RPUSHX on the named key.
func (o *ListOps) RPushX(ctx context.Context, key string, values ...any) *redis.IntCmd {
	return o.client.RPushX(ctx, o.name(key), values...)
}

// LPop runs LPOP on the named key.
func (o *ListOps) LPop(ctx context.Context, key string) *redis.StringCmd {
	return o.client.LPop(ctx, o.name(key))
}

// LPopCount runs LPOP with a count on the named key.
func (o *ListOps) LPopCount(ctx context.Context, key string, count int) *redis.StringSliceCmd {
	return o.client.LPopCount(ctx, o.name(key), count)
}

// RPop runs RPOP on the named key.
func (o *ListOps) RPop(ctx context.Context, key string) *redis.StringCmd {
	return o.client.RPop(ctx, o.name(key))
}

// RPopCount runs RPOP with a count on the named key.
func (o *ListOps) RPopCount(ctx context.Context, key string, count int) *redis.StringSliceCmd {
	return o.client.RPopCount(ctx, o.name(key), count)
}

// LRange runs LRANGE on the named key.
func (o *ListOps) LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd {
	return o.client.LRange(ctx, o.name(key), start, stop)
}

// LTrim runs LTRIM on the named key.
func (o *ListOps) LTrim(ctx context.Context, key string, start, stop int64) *redis.StatusCmd {
	return o.client.LTrim(ctx, o.name(key), start, stop)
}

// LLen runs LLEN on the named key.
func (o *ListOps) LLen(ctx context.Context, key string) *redis.IntCmd {
	return o.client.LLen(ctx, o.name(key))
}

// LIndex runs LINDEX on the named key.
func (o *ListOps) LIndex(ctx context.Context, key string, index int64) *redis.StringCmd {
	return o.client.LIndex(ctx, o.name(key), index)
}

// LSet runs LSET on the named key.
func (o *ListOps) LSet(ctx context.Context, key string, index int64, value any) *redis.StatusCmd {
	return o.client.LSet(ctx, o.name(key), index, value)
}

// LInsert inserts value before or after pivot; op is "BEFORE" or "AFTER".
func (o *ListOps) LInsert(ctx context.Context, key, op string, pivot, value any) *redis.IntCmd {
	return o.client.LInsert(ctx, o.name(key), op, pivot, value)
}

// LRem runs LREM on the named key.
func (o *ListOps) LRem(ctx context.Context, key string, count int64, value any) *redis.IntCmd {
	return o.client.LRem(ctx, o.name(key), count, value)
}

// LPos runs LPOS on the named key.
func (o *ListOps) LPos(ctx context.Context, key, value string, args redis.LPosArgs) *redis.IntCmd {
	return o.client.LPos(ctx, o.name(key), value, args)
}

// LMove names both the source and the destination list.
func (o *ListOps) LMove(ctx context.Context, source, destination, srcpos, destpos string) *redis.StringCmd {
	return o.client.LMove(ctx, o.name(source), o.name(destination), srcpos, destpos)
}

// BLMove runs BLMOVE on the named keys.
func (o *ListOps) BLMove(ctx context.Context, source, destination, srcpos, destpos string, timeout time.Duration) *redis.StringCmd {
	return o.client.BLMove(ctx, o.name(source), o.name(destination), srcpos, destpos, timeout)
}

// RPopLPush runs RPOPLPUSH on the named keys.
func (o *ListOps) RPopLPush(ctx context.Context, source, destination string) *redis.StringCmd {
	return o.client.RPopLPush(ctx, o.name(source), o.name(destination))
}

// BRPopLPush runs BRPOPLPUSH on the named keys.
func (o *ListOps) BRPopLPush(ctx context.Context, source, destination string, timeout time.Duration) *redis.StringCmd {
	return o.client.BRPopLPush(ctx, o.name(source), o.name(destination), timeout)
}

// BLPop blocks on keys. The reply's first element is the physical key the
// value came from.
func (o *ListOps) BLPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd {
	return o.client.BLPop(ctx, timeout, o.names(keys)...)
}

// BRPop blocks on keys. The reply's first element is the physical key the
// value came from.
func (o *ListOps) BRPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd {
	return o.client.BRPop(ctx, timeout, o.names(keys)...)
}

// BoundListOps is a list facade bound to one key.
type BoundListOps struct {
	*boundKey
}

// LeftPush runs LPUSH on the bound key.
func (b *BoundListOps) LeftPush(ctx context.Context, values ...any) *redis.IntCmd {
	return b.client.LPush(ctx, b.PhysicalKey(), values...)
}

// LeftPushIfPresent runs LPUSHX on the bound key.
func (b *BoundListOps) LeftPushIfPresent(ctx context.Context, values ...any) *redis.IntCmd {
	return b.client.LPushX(ctx, b.PhysicalKey(), values...)
}

// RightPush runs RPUSH on the bound key.
func (b *BoundListOps) RightPush(ctx context.Context, values ...any) *redis.IntCmd {
	return b.client.RPush(ctx, b.PhysicalKey(), values...)
}

// RightPushIfPresent runs RPUSHX on the bound key.
func (b *BoundListOps) RightPushIfPresent(ctx context.Context, values ...any) *redis.IntCmd {
	return b.client.RPushX(ctx, b.PhysicalKey(), values...)
}

// LeftPop runs LPOP on the bound key.
func (b *BoundListOps) LeftPop(ctx context.Context) *redis.StringCmd {
	return b.client.LPop(ctx, b.PhysicalKey())
}

// RightPop runs RPOP on the bound key.
func (b *BoundListOps) RightPop(ctx context.Context) *redis.StringCmd {
	return b.client.RPop(ctx, b.PhysicalKey())
}

// Range runs LRANGE on the bound key.
func (b *BoundListOps) Range(ctx context.Context, start, stop int64) *redis.StringSliceCmd {
	return b.client.LRange(ctx, b.PhysicalKey(), start, stop)
}

// Trim runs LTRIM on the bound key.
func (b *BoundListOps) Trim(ctx context.Context, start, stop int64) *redis.StatusCmd {
	return b.client.LTrim(ctx, b.PhysicalKey(), start, stop)
}

// Size runs LLEN on the bound key.
func (b *BoundListOps) Size(ctx context.Context) *redis.IntCmd {
	return b.client.LLen(ctx, b.PhysicalKey())
}

// Index runs LINDEX on the bound key.
func (b *BoundListOps) Index(ctx context.Context, index int64) *redis.StringCmd {
	return b.client.LIndex(ctx, b.PhysicalKey(), index)
}

// Set runs LSET on the bound key.
func (b *BoundListOps) Set(ctx context.Context, index int64, value any) *redis.StatusCmd {
	return b.client.LSet(ctx, b.PhysicalKey(), index, value)
}

// Remove runs LREM on the bound key.
func (b *BoundListOps) Remove(ctx context.Context, count int64, value any) *redis.IntCmd {
	return b.client.LRem(ctx, b.PhysicalKey(), count, value)
}
