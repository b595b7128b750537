// Package config loads redisx settings from the environment and an optional
// .env file.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/redisx/internal/errors"
	"github.com/KirkDiggler/redisx/internal/keynaming"
	"github.com/KirkDiggler/redisx/internal/redis"
)

// Config is the process configuration.
type Config struct {
	Redis redis.Config

	KeyPolicy    string `env:"REDISX_KEY_POLICY" envDefault:"prefix"`
	Namespace    string `env:"REDISX_NAMESPACE" envDefault:"app"`
	KeySeparator string `env:"REDISX_KEY_SEPARATOR" envDefault:":"`

	GRPCPort       int           `env:"REDISX_GRPC_PORT" envDefault:"50051"`
	HealthInterval time.Duration `env:"REDISX_HEALTH_INTERVAL" envDefault:"10s"`

	LogLevel  string `env:"REDISX_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"REDISX_LOG_FORMAT" envDefault:"text"`
}

// Load reads the given .env files, or ./.env when none are named, and parses
// the environment into a Config. A missing default .env file is not an error.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to load env files")
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	return &cfg, nil
}

// Validate checks every setting
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	if err := c.Redis.Validate(); err != nil {
		return err
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("key_policy", c.KeyPolicy, keynaming.Kinds(), vb)
	if keynaming.Kind(c.KeyPolicy) != keynaming.KindIdentity {
		errors.ValidateRequired("namespace", c.Namespace, vb)
	}
	errors.ValidatePositive("grpc_port", c.GRPCPort, vb)
	errors.ValidatePositive("health_interval", c.HealthInterval, vb)
	errors.ValidateEnum("log_level", c.LogLevel, []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("log_format", c.LogFormat, []string{"text", "json"}, vb)
	return vb.Build()
}

// KeyNamingPolicy builds the configured key naming policy.
func (c *Config) KeyNamingPolicy() (keynaming.Policy, error) {
	return keynaming.New(keynaming.Kind(c.KeyPolicy), c.Namespace, c.KeySeparator)
}
