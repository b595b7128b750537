package redisx

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// ZSetOps is the sorted set facade.
type ZSetOps struct {
	operations
}

// Bound returns a sorted set facade bound to key.
func (o *ZSetOps) Bound(key string) *BoundZSetOps {
	return &BoundZSetOps{boundKey: o.bind(key)}
}

// ZAdd runs ZADD on the named key.
func (o *ZSetOps) ZAdd(ctx context.Context, key string, members ...redis.Z) *redis.IntCmd {
	return o.client.ZAdd(ctx, o.name(key), members...)
}

// ZAddNX runs ZADD NX on the named key.
func (o *ZSetOps) ZAddNX(ctx context.Context, key string, members ...redis.Z) *redis.IntCmd {
	return o.client.ZAddNX(ctx, o.name(key), members...)
}

// ZAddXX runs ZADD XX on the named key.
func (o *ZSetOps) ZAddXX(ctx context.Context, key string, members ...redis.Z) *redis.IntCmd {
	return o.client.ZAddXX(ctx, o.name(key), members...)
}

// ZIncrBy runs ZINCRBY on the named key.
func (o *ZSetOps) ZIncrBy(ctx context.Context, key string, increment float64, member string) *redis.FloatCmd {
	return o.client.ZIncrBy(ctx, o.name(key), increment, member)
}

// ZRange runs ZRANGE on the named key.
func (o *ZSetOps) ZRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd {
	return o.client.ZRange(ctx, o.name(key), start, stop)
}

// ZRangeWithScores runs ZRANGE WITHSCORES on the named key.
func (o *ZSetOps) ZRangeWithScores(ctx context.Context, key string, start, stop int64) *redis.ZSliceCmd {
	return o.client.ZRangeWithScores(ctx, o.name(key), start, stop)
}

// ZRevRange runs ZREVRANGE on the named key.
func (o *ZSetOps) ZRevRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd {
	return o.client.ZRevRange(ctx, o.name(key), start, stop)
}

// ZRevRangeWithScores runs ZREVRANGE WITHSCORES on the named key.
func (o *ZSetOps) ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) *redis.ZSliceCmd {
	return o.client.ZRevRangeWithScores(ctx, o.name(key), start, stop)
}

// ZRangeByScore runs ZRANGEBYSCORE on the named key.
func (o *ZSetOps) ZRangeByScore(ctx context.Context, key string, opt *redis.ZRangeBy) *redis.StringSliceCmd {
	return o.client.ZRangeByScore(ctx, o.name(key), opt)
}

// ZRangeByScoreWithScores runs ZRANGEBYSCORE WITHSCORES on the named key.
func (o *ZSetOps) ZRangeByScoreWithScores(ctx context.Context, key string, opt *redis.ZRangeBy) *redis.ZSliceCmd {
	return o.client.ZRangeByScoreWithScores(ctx, o.name(key), opt)
}

// ZRevRangeByScore runs ZREVRANGEBYSCORE on the named key.
func (o *ZSetOps) ZRevRangeByScore(ctx context.Context, key string, opt *redis.ZRangeBy) *redis.StringSliceCmd {
	return o.client.ZRevRangeByScore(ctx, o.name(key), opt)
}

// ZRevRangeByScoreWithScores runs ZREVRANGEBYSCORE WITHSCORES on the named key.
func (o *ZSetOps) ZRevRangeByScoreWithScores(ctx context.Context, key string, opt *redis.ZRangeBy) *redis.ZSliceCmd {
	return o.client.ZRevRangeByScoreWithScores(ctx, o.name(key), opt)
}

// ZRangeByLex runs ZRANGEBYLEX on the named key.
func (o *ZSetOps) ZRangeByLex(ctx context.Context, key string, opt *redis.ZRangeBy) *redis.StringSliceCmd {
	return o.client.ZRangeByLex(ctx, o.name(key), opt)
}

// ZRevRangeByLex runs ZREVRANGEBYLEX on the named key.
func (o *ZSetOps) ZRevRangeByLex(ctx context.Context, key string, opt *redis.ZRangeBy) *redis.StringSliceCmd {
	return o.client.ZRevRangeByLex(ctx, o.name(key), opt)
}

// ZRank runs ZRANK on the named key.
func (o *ZSetOps) ZRank(ctx context.Context, key, member string) *redis.IntCmd {
	return o.client.ZRank(ctx, o.name(key), member)
}

// ZRevRank runs ZREVRANK on the named key.
func (o *ZSetOps) ZRevRank(ctx context.Context, key, member string) *redis.IntCmd {
	return o.client.ZRevRank(ctx, o.name(key), member)
}

// ZRem runs ZREM on the named key.
func (o *ZSetOps) ZRem(ctx context.Context, key string, members ...any) *redis.IntCmd {
	return o.client.ZRem(ctx, o.name(key), members...)
}

// ZRemRangeByRank runs ZREMRANGEBYRANK on the named key.
func (o *ZSetOps) ZRemRangeByRank(ctx context.Context, key string, start, stop int64) *redis.IntCmd {
	return o.client.ZRemRangeByRank(ctx, o.name(key), start, stop)
}

// ZRemRangeByScore runs ZREMRANGEBYSCORE on the named key.
func (o *ZSetOps) ZRemRangeByScore(ctx context.Context, key, minScore, maxScore string) *redis.IntCmd {
	return o.client.ZRemRangeByScore(ctx, o.name(key), minScore, maxScore)
}

// ZRemRangeByLex runs ZREMRANGEBYLEX on the named key.
func (o *ZSetOps) ZRemRangeByLex(ctx context.Context, key, minLex, maxLex string) *redis.IntCmd {
	return o.client.ZRemRangeByLex(ctx, o.name(key), minLex, maxLex)
}

// ZScore runs ZSCORE on the named key.
func (o *ZSetOps) ZScore(ctx context.Context, key, member string) *redis.FloatCmd {
	return o.client.ZScore(ctx, o.name(key), member)
}

// ZMScore runs ZMSCORE on the named key.
func (o *ZSetOps) ZMScore(ctx context.Context, key string, members ...string) *redis.FloatSliceCmd {
	return o.client.ZMScore(ctx, o.name(key), members...)
}

// ZCount runs ZCOUNT on the named key.
func (o *ZSetOps) ZCount(ctx context.Context, key, minScore, maxScore string) *redis.IntCmd {
	return o.client.ZCount(ctx, o.name(key), minScore, maxScore)
}

// ZLexCount runs ZLEXCOUNT on the named key.
func (o *ZSetOps) ZLexCount(ctx context.Context, key, minLex, maxLex string) *redis.IntCmd {
	return o.client.ZLexCount(ctx, o.name(key), minLex, maxLex)
}

// ZCard runs ZCARD on the named key.
func (o *ZSetOps) ZCard(ctx context.Context, key string) *redis.IntCmd {
	return o.client.ZCard(ctx, o.name(key))
}

// ZUnionStore names destination and every key of store. Weights and the
// aggregate are passed through; store itself is not modified.
func (o *ZSetOps) ZUnionStore(ctx context.Context, destination string, store *redis.ZStore) *redis.IntCmd {
	return o.client.ZUnionStore(ctx, o.name(destination), o.zstore(store))
}

// ZInterStore names destination and every key of store.
func (o *ZSetOps) ZInterStore(ctx context.Context, destination string, store *redis.ZStore) *redis.IntCmd {
	return o.client.ZInterStore(ctx, o.name(destination), o.zstore(store))
}

// ZScan runs ZSCAN on the named key.
func (o *ZSetOps) ZScan(ctx context.Context, key string, cursor uint64, match string, count int64) *redis.ScanCmd {
	return o.client.ZScan(ctx, o.name(key), cursor, match, count)
}

func (o operations) zstore(store *redis.ZStore) *redis.ZStore {
	if store == nil {
		return &redis.ZStore{}
	}
	named := *store
	named.Keys = o.names(store.Keys)
	return &named
}

// BoundZSetOps is a sorted set facade bound to one key.
type BoundZSetOps struct {
	*boundKey
}

// Add runs ZADD on the bound key.
func (b *BoundZSetOps) Add(ctx context.Context, members ...redis.Z) *redis.IntCmd {
	return b.client.ZAdd(ctx, b.PhysicalKey(), members...)
}

// IncrementScore runs ZINCRBY on the bound key.
func (b *BoundZSetOps) IncrementScore(ctx context.Context, member string, delta float64) *redis.FloatCmd {
	return b.client.ZIncrBy(ctx, b.PhysicalKey(), delta, member)
}

// Range runs ZRANGE on the bound key.
func (b *BoundZSetOps) Range(ctx context.Context, start, stop int64) *redis.StringSliceCmd {
	return b.client.ZRange(ctx, b.PhysicalKey(), start, stop)
}

// RangeWithScores runs ZRANGE WITHSCORES on the bound key.
func (b *BoundZSetOps) RangeWithScores(ctx context.Context, start, stop int64) *redis.ZSliceCmd {
	return b.client.ZRangeWithScores(ctx, b.PhysicalKey(), start, stop)
}

// ReverseRange runs ZREVRANGE on the bound key.
func (b *BoundZSetOps) ReverseRange(ctx context.Context, start, stop int64) *redis.StringSliceCmd {
	return b.client.ZRevRange(ctx, b.PhysicalKey(), start, stop)
}

// RangeByScore runs ZRANGEBYSCORE on the bound key.
func (b *BoundZSetOps) RangeByScore(ctx context.Context, opt *redis.ZRangeBy) *redis.StringSliceCmd {
	return b.client.ZRangeByScore(ctx, b.PhysicalKey(), opt)
}

// Rank runs ZRANK on the bound key.
func (b *BoundZSetOps) Rank(ctx context.Context, member string) *redis.IntCmd {
	return b.client.ZRank(ctx, b.PhysicalKey(), member)
}

// ReverseRank runs ZREVRANK on the bound key.
func (b *BoundZSetOps) ReverseRank(ctx context.Context, member string) *redis.IntCmd {
	return b.client.ZRevRank(ctx, b.PhysicalKey(), member)
}

// Score runs ZSCORE on the bound key.
func (b *BoundZSetOps) Score(ctx context.Context, member string) *redis.FloatCmd {
	return b.client.ZScore(ctx, b.PhysicalKey(), member)
}

// Remove runs ZREM on the bound key.
func (b *BoundZSetOps) Remove(ctx context.Context, members ...any) *redis.IntCmd {
	return b.client.ZRem(ctx, b.PhysicalKey(), members...)
}

// RemoveRange runs ZREMRANGEBYRANK on the bound key.
func (b *BoundZSetOps) RemoveRange(ctx context.Context, start, stop int64) *redis.IntCmd {
	return b.client.ZRemRangeByRank(ctx, b.PhysicalKey(), start, stop)
}

// RemoveRangeByScore runs ZREMRANGEBYSCORE on the bound key.
func (b *BoundZSetOps) RemoveRangeByScore(ctx context.Context, minScore, maxScore string) *redis.IntCmd {
	return b.client.ZRemRangeByScore(ctx, b.PhysicalKey(), minScore, maxScore)
}

// Count runs ZCOUNT on the bound key.
func (b *BoundZSetOps) Count(ctx context.Context, minScore, maxScore string) *redis.IntCmd {
	return b.client.ZCount(ctx, b.PhysicalKey(), minScore, maxScore)
}

// Size runs ZCARD on the bound key.
func (b *BoundZSetOps) Size(ctx context.Context) *redis.IntCmd {
	return b.client.ZCard(ctx, b.PhysicalKey())
}

// UnionAndStore stores the union of the bound set and others in destination.
func (b *BoundZSetOps) UnionAndStore(ctx context.Context, destination string, others ...string) *redis.IntCmd {
	return b.client.ZUnionStore(ctx, b.name(destination), &redis.ZStore{Keys: b.withOthers(others)})
}

// IntersectAndStore runs ZINTERSTORE on the bound key and the named others.
func (b *BoundZSetOps) IntersectAndStore(ctx context.Context, destination string, others ...string) *redis.IntCmd {
	return b.client.ZInterStore(ctx, b.name(destination), &redis.ZStore{Keys: b.withOthers(others)})
}

// Scan runs ZSCAN on the bound key.
func (b *BoundZSetOps) Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd {
	return b.client.ZScan(ctx, b.PhysicalKey(), cursor, match, count)
}
