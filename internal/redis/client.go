// Package redis builds and checks the go-redis clients that back the
// redisx operation facades.
package redis

import (
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/redisx/internal/errors"
)

// Options configures Redis client behavior
type Options struct {
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
	ReadOnly        bool // For cluster mode routing
}

func (o *Options) tlsConfig() *tls.Config {
	if !o.UseTLS {
		return nil
	}
	return &tls.Config{
		InsecureSkipVerify: true, // #nosec G402 // For self-signed certs
	}
}

// NewClient creates a Redis client for a single instance
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	return redis.NewClient(&redis.Options{
		Addr:            endpoint,
		Password:        opts.Password,
		DB:              opts.DB,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
		TLSConfig:       opts.tlsConfig(),
	}), nil
}

// NewClusterClient creates a Redis client for cluster mode. Use a hash-tag
// key naming policy with it so multi-key commands stay in one slot.
func NewClusterClient(endpoints []string, opts *Options) (Client, error) {
	if len(endpoints) == 0 {
		return nil, errors.InvalidArgument("redis: at least one endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	return redis.NewClusterClient(&redis.ClusterOptions{
		Addrs:        endpoints,
		Password:     opts.Password,
		MinIdleConns: opts.MinIdleConns,
		PoolSize:     opts.PoolSize,
		MaxRetries:   opts.MaxRetries,
		ReadOnly:     opts.ReadOnly,
		TLSConfig:    opts.tlsConfig(),
	}), nil
}

// NewFailoverClient creates a Redis client with Sentinel support
func NewFailoverClient(masterName string, sentinelAddrs []string, opts *Options) (Client, error) {
	if masterName == "" {
		return nil, errors.InvalidArgument("redis: master name is required")
	}
	if len(sentinelAddrs) == 0 {
		return nil, errors.InvalidArgument("redis: at least one sentinel address is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	return redis.NewFailoverClient(&redis.FailoverOptions{
		MasterName:    masterName,
		SentinelAddrs: sentinelAddrs,
		Password:      opts.Password,
		DB:            opts.DB,
		MinIdleConns:  opts.MinIdleConns,
		PoolSize:      opts.PoolSize,
		MaxRetries:    opts.MaxRetries,
		TLSConfig:     opts.tlsConfig(),
	}), nil
}
