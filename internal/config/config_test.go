package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/redisx/internal/config"
	"github.com/KirkDiggler/redisx/internal/errors"
	"github.com/KirkDiggler/redisx/internal/keynaming"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal("redis://localhost:6379/0", cfg.Redis.ConnectionURL)
	s.Equal(3, cfg.Redis.RetryAttempts)
	s.Equal("prefix", cfg.KeyPolicy)
	s.Equal("app", cfg.Namespace)
	s.Equal(":", cfg.KeySeparator)
	s.Equal(50051, cfg.GRPCPort)
	s.Equal(10*time.Second, cfg.HealthInterval)
	s.Equal("info", cfg.LogLevel)
	s.Equal("text", cfg.LogFormat)
	s.NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestEnvironmentOverrides() {
	s.T().Setenv("REDIS_URL", "redis://cache:6380/2")
	s.T().Setenv("REDISX_KEY_POLICY", "hashtag")
	s.T().Setenv("REDISX_NAMESPACE", "billing")
	s.T().Setenv("REDISX_HEALTH_INTERVAL", "1m")

	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal("redis://cache:6380/2", cfg.Redis.ConnectionURL)
	s.Equal("hashtag", cfg.KeyPolicy)
	s.Equal("billing", cfg.Namespace)
	s.Equal(time.Minute, cfg.HealthInterval)

	policy, err := cfg.KeyNamingPolicy()
	s.Require().NoError(err)
	s.Equal("{billing}:invoice:7", policy.Name("invoice:7"))
}

func (s *ConfigTestSuite) TestLoadEnvFile() {
	path := filepath.Join(s.T().TempDir(), ".env")
	s.Require().NoError(os.WriteFile(path, []byte("REDISX_NAMESPACE=fromfile\nREDISX_GRPC_PORT=6000\n"), 0o600))
	s.T().Cleanup(func() {
		_ = os.Unsetenv("REDISX_NAMESPACE")
		_ = os.Unsetenv("REDISX_GRPC_PORT")
	})

	cfg, err := config.Load(path)
	s.Require().NoError(err)

	s.Equal("fromfile", cfg.Namespace)
	s.Equal(6000, cfg.GRPCPort)
}

func (s *ConfigTestSuite) TestLoadMissingEnvFile() {
	_, err := config.Load(filepath.Join(s.T().TempDir(), "missing.env"))
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestLoadInvalidValue() {
	s.T().Setenv("REDISX_GRPC_PORT", "not-a-number")

	_, err := config.Load()
	s.Error(err)
}

func (s *ConfigTestSuite) TestValidate() {
	valid := func() *config.Config {
		cfg, err := config.Load()
		s.Require().NoError(err)
		return cfg
	}

	testCases := []struct {
		name   string
		modify func(*config.Config)
		field  string
	}{
		{name: "unknown policy", modify: func(c *config.Config) { c.KeyPolicy = "reverse" }, field: "key_policy"},
		{name: "missing namespace", modify: func(c *config.Config) { c.Namespace = "" }, field: "namespace"},
		{name: "bad port", modify: func(c *config.Config) { c.GRPCPort = 0 }, field: "grpc_port"},
		{name: "bad interval", modify: func(c *config.Config) { c.HealthInterval = 0 }, field: "health_interval"},
		{name: "bad log level", modify: func(c *config.Config) { c.LogLevel = "loud" }, field: "log_level"},
		{name: "bad log format", modify: func(c *config.Config) { c.LogFormat = "xml" }, field: "log_format"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := valid()
			tc.modify(cfg)

			err := cfg.Validate()
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.field)
		})
	}

	s.Run("identity needs no namespace", func() {
		cfg := valid()
		cfg.KeyPolicy = string(keynaming.KindIdentity)
		cfg.Namespace = ""
		s.NoError(cfg.Validate())
	})

	s.Run("nil config", func() {
		var cfg *config.Config
		s.Error(cfg.Validate())
	})
}
