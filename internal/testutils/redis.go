// Package testutils provides miniredis-backed helpers for tests
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/redisx/internal/redis"
)

// CreateTestRedisClient starts an in-memory Redis server and returns it with a
// client connected to it. Both are closed when the test finishes.
func CreateTestRedisClient(t *testing.T) (*miniredis.Miniredis, redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	t.Cleanup(func() {
		_ = client.Close()
	})

	return mr, client
}
