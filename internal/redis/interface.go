package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the backing store handle used by the key naming facades. Single
// node, cluster and failover clients all satisfy it.
type Client interface {
	redis.UniversalClient
}
