package redisx

import (
	"sync"

	"github.com/KirkDiggler/redisx/internal/errors"
	"github.com/KirkDiggler/redisx/internal/keynaming"
	redisclient "github.com/KirkDiggler/redisx/internal/redis"
)

// Family identifies a facade type in the template's cache.
type Family string

const (
	FamilyValue       Family = "value"
	FamilyList        Family = "list"
	FamilySet         Family = "set"
	FamilyZSet        Family = "zset"
	FamilyHash        Family = "hash"
	FamilyGeo         Family = "geo"
	FamilyHyperLogLog Family = "hyperloglog"
	FamilyCluster     Family = "cluster"
)

// Config holds the dependencies of a Template
type Config struct {
	Client redisclient.Client
	Policy keynaming.Policy
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Policy == nil {
		return errors.InvalidArgument("key naming policy is required")
	}
	return nil
}

// operations is the state shared by every facade: the store client and the
// naming policy.
type operations struct {
	client redisclient.Client
	policy keynaming.Policy
}

func (o operations) name(key string) string {
	return o.policy.Name(key)
}

func (o operations) names(keys []string) []string {
	return o.policy.Names(keys)
}

// pattern names a KEYS/SCAN pattern. An empty pattern means every key, so it
// is widened to "*" before naming to stay inside the namespace.
func (o operations) pattern(p string) string {
	if p == "" {
		p = "*"
	}
	return o.name(p)
}

// Template is the entry point to the facades. It caches one facade per
// family.
type Template struct {
	operations

	mu      sync.Mutex
	facades map[Family]any
}

// NewTemplate creates a template over cfg.Client using cfg.Policy
func NewTemplate(cfg *Config) (*Template, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Template{
		operations: operations{
			client: cfg.Client,
			policy: cfg.Policy,
		},
		facades: make(map[Family]any),
	}, nil
}

// Client returns the underlying store client.
func (t *Template) Client() redisclient.Client {
	return t.client
}

// Policy returns the key naming policy.
func (t *Template) Policy() keynaming.Policy {
	return t.policy
}

// facade returns the cached facade for family, building it on first use.
func (t *Template) facade(family Family, build func(operations) any) any {
	t.mu.Lock()
	defer t.mu.Unlock()

	if f, ok := t.facades[family]; ok {
		return f
	}

	f := build(t.operations)
	t.facades[family] = f
	return f
}

// OpsForValue returns the string/value facade.
func (t *Template) OpsForValue() *ValueOps {
	return t.facade(FamilyValue, func(o operations) any { return &ValueOps{operations: o} }).(*ValueOps)
}

// OpsForList returns the list facade.
func (t *Template) OpsForList() *ListOps {
	return t.facade(FamilyList, func(o operations) any { return &ListOps{operations: o} }).(*ListOps)
}

// OpsForSet returns the set facade.
func (t *Template) OpsForSet() *SetOps {
	return t.facade(FamilySet, func(o operations) any { return &SetOps{operations: o} }).(*SetOps)
}

// OpsForZSet returns the sorted set facade.
func (t *Template) OpsForZSet() *ZSetOps {
	return t.facade(FamilyZSet, func(o operations) any { return &ZSetOps{operations: o} }).(*ZSetOps)
}

// OpsForHash returns the hash facade.
func (t *Template) OpsForHash() *HashOps {
	return t.facade(FamilyHash, func(o operations) any { return &HashOps{operations: o} }).(*HashOps)
}

// OpsForGeo returns the geo facade.
func (t *Template) OpsForGeo() *GeoOps {
	return t.facade(FamilyGeo, func(o operations) any { return &GeoOps{operations: o} }).(*GeoOps)
}

// OpsForHyperLogLog returns the HyperLogLog facade.
func (t *Template) OpsForHyperLogLog() *HyperLogLogOps {
	return t.facade(FamilyHyperLogLog, func(o operations) any { return &HyperLogLogOps{operations: o} }).(*HyperLogLogOps)
}

// OpsForCluster returns the cluster facade.
func (t *Template) OpsForCluster() *ClusterOps {
	return t.facade(FamilyCluster, func(o operations) any { return &ClusterOps{operations: o} }).(*ClusterOps)
}

// BoundValueOps binds a value facade to key.
func (t *Template) BoundValueOps(key string) *BoundValueOps {
	return t.OpsForValue().Bound(key)
}

// BoundListOps binds a list facade to key.
func (t *Template) BoundListOps(key string) *BoundListOps {
	return t.OpsForList().Bound(key)
}

// BoundSetOps binds a set facade to key.
func (t *Template) BoundSetOps(key string) *BoundSetOps {
	return t.OpsForSet().Bound(key)
}

// BoundZSetOps binds a sorted set facade to key.
func (t *Template) BoundZSetOps(key string) *BoundZSetOps {
	return t.OpsForZSet().Bound(key)
}

// BoundHashOps binds a hash facade to key.
func (t *Template) BoundHashOps(key string) *BoundHashOps {
	return t.OpsForHash().Bound(key)
}

// BoundGeoOps binds a geo facade to key.
func (t *Template) BoundGeoOps(key string) *BoundGeoOps {
	return t.OpsForGeo().Bound(key)
}
