package redisx

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// GeoOps is the geo facade. Geo sets are sorted sets underneath.
type GeoOps struct {
	operations
}

// Bound returns a geo facade bound to key.
func (o *GeoOps) Bound(key string) *BoundGeoOps {
	return &BoundGeoOps{boundKey: o.bind(key)}
}

// GeoAdd runs GEOADD on the named key.
func (o *GeoOps) GeoAdd(ctx context.Context, key string, locations ...*redis.GeoLocation) *redis.IntCmd {
	return o.client.GeoAdd(ctx, o.name(key), locations...)
}

// GeoPos runs GEOPOS on the named key.
func (o *GeoOps) GeoPos(ctx context.Context, key string, members ...string) *redis.GeoPosCmd {
	return o.client.GeoPos(ctx, o.name(key), members...)
}

// GeoDist runs GEODIST on the named key.
func (o *GeoOps) GeoDist(ctx context.Context, key, member1, member2, unit string) *redis.FloatCmd {
	return o.client.GeoDist(ctx, o.name(key), member1, member2, unit)
}

// GeoHash runs GEOHASH on the named key.
func (o *GeoOps) GeoHash(ctx context.Context, key string, members ...string) *redis.StringSliceCmd {
	return o.client.GeoHash(ctx, o.name(key), members...)
}

// GeoRadius runs GEORADIUS on the named key.
func (o *GeoOps) GeoRadius(ctx context.Context, key string, longitude, latitude float64, query *redis.GeoRadiusQuery) *redis.GeoLocationCmd {
	return o.client.GeoRadius(ctx, o.name(key), longitude, latitude, query)
}

// GeoRadiusByMember runs GEORADIUSBYMEMBER on the named key.
func (o *GeoOps) GeoRadiusByMember(ctx context.Context, key, member string, query *redis.GeoRadiusQuery) *redis.GeoLocationCmd {
	return o.client.GeoRadiusByMember(ctx, o.name(key), member, query)
}

// GeoRadiusStore names key and the query's Store/StoreDist destinations. The
// caller's query is left unchanged.
func (o *GeoOps) GeoRadiusStore(ctx context.Context, key string, longitude, latitude float64, query *redis.GeoRadiusQuery) *redis.IntCmd {
	return o.client.GeoRadiusStore(ctx, o.name(key), longitude, latitude, o.radiusStoreQuery(query))
}

// GeoSearch runs GEOSEARCH on the named key.
func (o *GeoOps) GeoSearch(ctx context.Context, key string, query *redis.GeoSearchQuery) *redis.StringSliceCmd {
	return o.client.GeoSearch(ctx, o.name(key), query)
}

// GeoSearchLocation runs GEOSEARCH with locations on the named key.
func (o *GeoOps) GeoSearchLocation(ctx context.Context, key string, query *redis.GeoSearchLocationQuery) *redis.GeoSearchLocationCmd {
	return o.client.GeoSearchLocation(ctx, o.name(key), query)
}

// Remove deletes members from the geo set.
func (o *GeoOps) Remove(ctx context.Context, key string, members ...any) *redis.IntCmd {
	return o.client.ZRem(ctx, o.name(key), members...)
}

func (o operations) radiusStoreQuery(query *redis.GeoRadiusQuery) *redis.GeoRadiusQuery {
	if query == nil {
		return nil
	}
	named := *query
	if named.Store != "" {
		named.Store = o.name(named.Store)
	}
	if named.StoreDist != "" {
		named.StoreDist = o.name(named.StoreDist)
	}
	return &named
}

// BoundGeoOps is a geo facade bound to one key.
type BoundGeoOps struct {
	*boundKey
}

// Add runs GEOADD on the bound key.
func (b *BoundGeoOps) Add(ctx context.Context, locations ...*redis.GeoLocation) *redis.IntCmd {
	return b.client.GeoAdd(ctx, b.PhysicalKey(), locations...)
}

// Position runs GEOPOS on the bound key.
func (b *BoundGeoOps) Position(ctx context.Context, members ...string) *redis.GeoPosCmd {
	return b.client.GeoPos(ctx, b.PhysicalKey(), members...)
}

// Distance runs GEODIST on the bound key.
func (b *BoundGeoOps) Distance(ctx context.Context, member1, member2, unit string) *redis.FloatCmd {
	return b.client.GeoDist(ctx, b.PhysicalKey(), member1, member2, unit)
}

// Hash runs GEOHASH on the bound key.
func (b *BoundGeoOps) Hash(ctx context.Context, members ...string) *redis.StringSliceCmd {
	return b.client.GeoHash(ctx, b.PhysicalKey(), members...)
}

// Radius runs GEORADIUS on the bound key.
func (b *BoundGeoOps) Radius(ctx context.Context, longitude, latitude float64, query *redis.GeoRadiusQuery) *redis.GeoLocationCmd {
	return b.client.GeoRadius(ctx, b.PhysicalKey(), longitude, latitude, query)
}

// RadiusByMember runs GEORADIUSBYMEMBER on the bound key.
func (b *BoundGeoOps) RadiusByMember(ctx context.Context, member string, query *redis.GeoRadiusQuery) *redis.GeoLocationCmd {
	return b.client.GeoRadiusByMember(ctx, b.PhysicalKey(), member, query)
}

// Search runs GEOSEARCH on the bound key.
func (b *BoundGeoOps) Search(ctx context.Context, query *redis.GeoSearchQuery) *redis.StringSliceCmd {
	return b.client.GeoSearch(ctx, b.PhysicalKey(), query)
}

// Remove runs ZREM on the bound key.
func (b *BoundGeoOps) Remove(ctx context.Context, members ...any) *redis.IntCmd {
	return b.client.ZRem(ctx, b.PhysicalKey(), members...)
}
