package redisx

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// SetOps is the set facade.
type SetOps struct {
	operations
}

// Bound returns a set facade bound to key.
func (o *SetOps) Bound(key string) *BoundSetOps {
	return &BoundSetOps{boundKey: o.bind(key)}
}

// SAdd runs SADD on the named key.
func (o *SetOps) SAdd(ctx context.Context, key string, members ...any) *redis.IntCmd {
	return o.client.SAdd(ctx, o.name(key), members...)
}

// SRem runs SREM on the named key.
func (o *SetOps) SRem(ctx context.Context, key string, members ...any) *redis.IntCmd {
	return o.client.SRem(ctx, o.name(key), members...)
}

// SPop runs SPOP on the named key.
func (o *SetOps) SPop(ctx context.Context, key string) *redis.StringCmd {
	return o.client.SPop(ctx, o.name(key))
}

// SPopN runs SPOP with a count on the named key.
func (o *SetOps) SPopN(ctx context.Context, key string, count int64) *redis.StringSliceCmd {
	return o.client.SPopN(ctx, o.name(key), count)
}

// SMove names both the source and the destination set.
func (o *SetOps) SMove(ctx context.Context, source, destination string, member any) *redis.BoolCmd {
	return o.client.SMove(ctx, o.name(source), o.name(destination), member)
}

// SCard runs SCARD on the named key.
func (o *SetOps) SCard(ctx context.Context, key string) *redis.IntCmd {
	return o.client.SCard(ctx, o.name(key))
}

// SIsMember runs SISMEMBER on the named key.
func (o *SetOps) SIsMember(ctx context.Context, key string, member any) *redis.BoolCmd {
	return o.client.SIsMember(ctx, o.name(key), member)
}

// SMIsMember runs SMISMEMBER on the named key.
func (o *SetOps) SMIsMember(ctx context.Context, key string, members ...any) *redis.BoolSliceCmd {
	return o.client.SMIsMember(ctx, o.name(key), members...)
}

// SMembers runs SMEMBERS on the named key.
func (o *SetOps) SMembers(ctx context.Context, key string) *redis.StringSliceCmd {
	return o.client.SMembers(ctx, o.name(key))
}

// SRandMember runs SRANDMEMBER on the named key.
func (o *SetOps) SRandMember(ctx context.Context, key string) *redis.StringCmd {
	return o.client.SRandMember(ctx, o.name(key))
}

// SRandMemberN runs SRANDMEMBER with a count on the named key.
func (o *SetOps) SRandMemberN(ctx context.Context, key string, count int64) *redis.StringSliceCmd {
	return o.client.SRandMemberN(ctx, o.name(key), count)
}

// SInter runs SINTER on the named keys.
func (o *SetOps) SInter(ctx context.Context, keys ...string) *redis.StringSliceCmd {
	return o.client.SInter(ctx, o.names(keys)...)
}

// SInterStore runs SINTERSTORE on the named keys.
func (o *SetOps) SInterStore(ctx context.Context, destination string, keys ...string) *redis.IntCmd {
	return o.client.SInterStore(ctx, o.name(destination), o.names(keys)...)
}

// SUnion runs SUNION on the named keys.
func (o *SetOps) SUnion(ctx context.Context, keys ...string) *redis.StringSliceCmd {
	return o.client.SUnion(ctx, o.names(keys)...)
}

// SUnionStore runs SUNIONSTORE on the named keys.
func (o *SetOps) SUnionStore(ctx context.Context, destination string, keys ...string) *redis.IntCmd {
	return o.client.SUnionStore(ctx, o.name(destination), o.names(keys)...)
}

// SDiff runs SDIFF on the named keys.
func (o *SetOps) SDiff(ctx context.Context, keys ...string) *redis.StringSliceCmd {
	return o.client.SDiff(ctx, o.names(keys)...)
}

// SDiffStore runs SDIFFSTORE on the named keys.
func (o *SetOps) SDiffStore(ctx context.Context, destination string, keys ...string) *redis.IntCmd {
	return o.client.SDiffStore(ctx, o.name(destination), o.names(keys)...)
}

// SScan iterates members of key; match filters members, not keys.
func (o *SetOps) SScan(ctx context.Context, key string, cursor uint64, match string, count int64) *redis.ScanCmd {
	return o.client.SScan(ctx, o.name(key), cursor, match, count)
}

// BoundSetOps is a set facade bound to one key.
type BoundSetOps struct {
	*boundKey
}

// Add runs SADD on the bound key.
func (b *BoundSetOps) Add(ctx context.Context, members ...any) *redis.IntCmd {
	return b.client.SAdd(ctx, b.PhysicalKey(), members...)
}

// Remove runs SREM on the bound key.
func (b *BoundSetOps) Remove(ctx context.Context, members ...any) *redis.IntCmd {
	return b.client.SRem(ctx, b.PhysicalKey(), members...)
}

// Pop runs SPOP on the bound key.
func (b *BoundSetOps) Pop(ctx context.Context) *redis.StringCmd {
	return b.client.SPop(ctx, b.PhysicalKey())
}

// Move moves member from the bound set to destination.
func (b *BoundSetOps) Move(ctx context.Context, destination string, member any) *redis.BoolCmd {
	return b.client.SMove(ctx, b.PhysicalKey(), b.name(destination), member)
}

// Size runs SCARD on the bound key.
func (b *BoundSetOps) Size(ctx context.Context) *redis.IntCmd {
	return b.client.SCard(ctx, b.PhysicalKey())
}

// IsMember runs SISMEMBER on the bound key.
func (b *BoundSetOps) IsMember(ctx context.Context, member any) *redis.BoolCmd {
	return b.client.SIsMember(ctx, b.PhysicalKey(), member)
}

// Members runs SMEMBERS on the bound key.
func (b *BoundSetOps) Members(ctx context.Context) *redis.StringSliceCmd {
	return b.client.SMembers(ctx, b.PhysicalKey())
}

// RandomMember runs SRANDMEMBER on the bound key.
func (b *BoundSetOps) RandomMember(ctx context.Context) *redis.StringCmd {
	return b.client.SRandMember(ctx, b.PhysicalKey())
}

// Union returns the union of the bound set and others.
func (b *BoundSetOps) Union(ctx context.Context, others ...string) *redis.StringSliceCmd {
	return b.client.SUnion(ctx, b.withOthers(others)...)
}

// UnionAndStore runs SUNIONSTORE on the bound key and the named others.
func (b *BoundSetOps) UnionAndStore(ctx context.Context, destination string, others ...string) *redis.IntCmd {
	return b.client.SUnionStore(ctx, b.name(destination), b.withOthers(others)...)
}

// Intersect runs SINTER on the bound key and the named others.
func (b *BoundSetOps) Intersect(ctx context.Context, others ...string) *redis.StringSliceCmd {
	return b.client.SInter(ctx, b.withOthers(others)...)
}

// IntersectAndStore runs SINTERSTORE on the bound key and the named others.
func (b *BoundSetOps) IntersectAndStore(ctx context.Context, destination string, others ...string) *redis.IntCmd {
	return b.client.SInterStore(ctx, b.name(destination), b.withOthers(others)...)
}

// Diff returns members of the bound set missing from every other set.
func (b *BoundSetOps) Diff(ctx context.Context, others ...string) *redis.StringSliceCmd {
	return b.client.SDiff(ctx, b.withOthers(others)...)
}

// DiffAndStore runs SDIFFSTORE on the bound key and the named others.
func (b *BoundSetOps) DiffAndStore(ctx context.Context, destination string, others ...string) *redis.IntCmd {
	return b.client.SDiffStore(ctx, b.name(destination), b.withOthers(others)...)
}

// Scan runs SSCAN on the bound key.
func (b *BoundSetOps) Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd {
	return b.client.SScan(ctx, b.PhysicalKey(), cursor, match, count)
}

// withOthers returns the bound physical key followed by the named others.
func (b *boundKey) withOthers(others []string) []string {
	return append([]string{b.PhysicalKey()}, b.names(others)...)
}
