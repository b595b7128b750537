package redisx

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// HyperLogLogOps is the HyperLogLog facade.
type HyperLogLogOps struct {
	operations
}

// Add adds elements to the HyperLogLog at key.
func (o *HyperLogLogOps) Add(ctx context.Context, key string, elements ...any) *redis.IntCmd {
	return o.client.PFAdd(ctx, o.name(key), elements...)
}

// Size estimates the cardinality of the union of keys.
func (o *HyperLogLogOps) Size(ctx context.Context, keys ...string) *redis.IntCmd {
	return o.client.PFCount(ctx, o.names(keys)...)
}

// Union merges sources into destination.
func (o *HyperLogLogOps) Union(ctx context.Context, destination string, sources ...string) *redis.StatusCmd {
	return o.client.PFMerge(ctx, o.name(destination), o.names(sources)...)
}

// Delete removes the HyperLogLog at key.
func (o *HyperLogLogOps) Delete(ctx context.Context, key string) *redis.IntCmd {
	return o.client.Del(ctx, o.name(key))
}
