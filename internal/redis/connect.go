package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/redisx/internal/errors"
)

// Config describes a URL based connection, populated from the environment.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"` // redis://:password@localhost:6379/0
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

// Validate ensures the connection settings are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("connection_url", c.ConnectionURL, vb)
	errors.ValidatePositive("retry_attempts", c.RetryAttempts, vb)
	errors.ValidatePositive("connect_timeout", c.ConnectTimeout, vb)
	return vb.Build()
}

// Connect parses the connection URL and pings until Redis answers, up to
// RetryAttempts times with RetryInterval between attempts.
func Connect(ctx context.Context, cfg Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid redis config")
	}

	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse redis connection url")
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	var lastErr error
	for attempt := 1; attempt <= cfg.RetryAttempts; attempt++ {
		client := redis.NewClient(opts)

		lastErr = client.Ping(ctx).Err()
		if lastErr == nil {
			return client, nil
		}

		_ = client.Close()

		if attempt == cfg.RetryAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, errors.WrapWithCode(ctx.Err(), errors.CodeUnavailable, "redis did not become ready").
				WithMeta("attempts", attempt)
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, errors.WrapWithCode(lastErr, errors.CodeUnavailable, "redis did not become ready").
		WithMeta("attempts", cfg.RetryAttempts)
}
