package redis

import (
	"context"

	"github.com/KirkDiggler/redisx/internal/errors"
)

// Healthcheck returns a check that pings Redis.
func Healthcheck(client Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.WrapWithCode(err, errors.CodeUnavailable, "redis healthcheck failed")
		}
		return nil
	}
}
