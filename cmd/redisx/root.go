package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/redisx/internal/config"
	"github.com/KirkDiggler/redisx/internal/errors"
	"github.com/KirkDiggler/redisx/internal/logger"
	"github.com/KirkDiggler/redisx/internal/redis"
	"github.com/KirkDiggler/redisx/internal/redisx"
)

// rootOptions are the persistent flags. Empty values leave the environment
// configuration in place.
type rootOptions struct {
	redisURL  string
	namespace string
	separator string
	policy    string
	logLevel  string
	logFormat string
	timeout   time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "redisx",
		Short:         "Namespaced Redis commands",
		Long:          `redisx runs Redis commands through a key naming policy, so "session:42" is stored as "app:session:42".`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.redisURL, "redis-url", "", "Redis URL (overrides REDIS_URL)")
	flags.StringVar(&opts.namespace, "namespace", "", "key namespace (overrides REDISX_NAMESPACE)")
	flags.StringVar(&opts.separator, "separator", "", "namespace separator (overrides REDISX_KEY_SEPARATOR)")
	flags.StringVar(&opts.policy, "policy", "", "key policy: prefix, hashtag or identity (overrides REDISX_KEY_POLICY)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (overrides REDISX_LOG_LEVEL)")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: text or json (overrides REDISX_LOG_FORMAT)")
	flags.DurationVar(&opts.timeout, "timeout", 5*time.Second, "timeout for a single command")

	cmd.AddCommand(
		newGetCmd(opts),
		newSetCmd(opts),
		newIncrCmd(opts),
		newDelCmd(opts),
		newKeysCmd(opts),
		newTTLCmd(opts),
		newLPushCmd(opts),
		newLRangeCmd(opts),
		newSAddCmd(opts),
		newSMembersCmd(opts),
		newHSetCmd(opts),
		newHGetAllCmd(opts),
		newZAddCmd(opts),
		newZRangeCmd(opts),
		newPFAddCmd(opts),
		newPFCountCmd(opts),
		newServeCmd(opts),
	)

	return cmd
}

// loadConfig reads the environment and applies flag overrides.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override(&cfg.Redis.ConnectionURL, o.redisURL)
	override(&cfg.Namespace, o.namespace)
	override(&cfg.KeySeparator, o.separator)
	override(&cfg.KeyPolicy, o.policy)
	override(&cfg.LogLevel, o.logLevel)
	override(&cfg.LogFormat, o.logFormat)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// app is everything a command needs once configuration is resolved.
type app struct {
	cfg    *config.Config
	log    *slog.Logger
	client redis.Client
	tmpl   *redisx.Template
}

func (o *rootOptions) newApp(ctx context.Context, logOutput io.Writer) (*app, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	log, err := logger.New(logger.Options{
		Level:   level,
		Format:  logger.Format(cfg.LogFormat),
		Output:  logOutput,
		Service: "redisx",
	})
	if err != nil {
		return nil, err
	}

	policy, err := cfg.KeyNamingPolicy()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create key naming policy")
	}

	client, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}

	tmpl, err := redisx.NewTemplate(&redisx.Config{Client: client, Policy: policy})
	if err != nil {
		_ = client.Close()
		return nil, err
	}

	log.Debug("connected",
		slog.String("policy", cfg.KeyPolicy),
		slog.String("namespace", cfg.Namespace))

	return &app{cfg: cfg, log: log, client: client, tmpl: tmpl}, nil
}

func (a *app) Close() error {
	return a.client.Close()
}

// commandFunc runs one data command against the template.
type commandFunc func(ctx context.Context, out io.Writer, tmpl *redisx.Template, args []string) error

func (o *rootOptions) run(fn commandFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := o.newApp(cmd.Context(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
		defer cancel()

		return fn(ctx, cmd.OutOrStdout(), a.tmpl, args)
	}
}
