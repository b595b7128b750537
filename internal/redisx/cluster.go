package redisx

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// ClusterOps exposes cluster introspection. Slot lookups name their key.
// Commands that list keys return physical keys.
type ClusterOps struct {
	operations
}

// KeySlot returns the hash slot of the physical key.
func (o *ClusterOps) KeySlot(ctx context.Context, key string) *redis.IntCmd {
	return o.client.ClusterKeySlot(ctx, o.name(key))
}

// CountKeysInSlot runs CLUSTER COUNTKEYSINSLOT.
func (o *ClusterOps) CountKeysInSlot(ctx context.Context, slot int) *redis.IntCmd {
	return o.client.ClusterCountKeysInSlot(ctx, slot)
}

// GetKeysInSlot runs CLUSTER GETKEYSINSLOT.
func (o *ClusterOps) GetKeysInSlot(ctx context.Context, slot, count int) *redis.StringSliceCmd {
	return o.client.ClusterGetKeysInSlot(ctx, slot, count)
}

// Info runs CLUSTER INFO.
func (o *ClusterOps) Info(ctx context.Context) *redis.StringCmd {
	return o.client.ClusterInfo(ctx)
}

// Nodes runs CLUSTER NODES.
func (o *ClusterOps) Nodes(ctx context.Context) *redis.StringCmd {
	return o.client.ClusterNodes(ctx)
}

// Slots runs CLUSTER SLOTS.
func (o *ClusterOps) Slots(ctx context.Context) *redis.ClusterSlotsCmd {
	return o.client.ClusterSlots(ctx)
}

// Keys runs KEYS with the named pattern; "" lists the whole namespace. On a
// cluster client it runs on every master and concatenates the replies; the
// first error stops it.
func (o *ClusterOps) Keys(ctx context.Context, pattern string) ([]string, error) {
	physical := o.pattern(pattern)

	cluster, ok := o.client.(*redis.ClusterClient)
	if !ok {
		return o.client.Keys(ctx, physical).Result()
	}

	var (
		mu   sync.Mutex
		keys []string
	)
	err := cluster.ForEachMaster(ctx, func(ctx context.Context, node *redis.Client) error {
		found, err := node.Keys(ctx, physical).Result()
		if err != nil {
			return err
		}
		mu.Lock()
		keys = append(keys, found...)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}
