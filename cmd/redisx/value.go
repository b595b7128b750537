package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/redisx/internal/redisx"
)

const nilReply = "(nil)"

func newGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get the value of a key",
		Args:  cobra.ExactArgs(1),
		RunE: opts.run(func(ctx context.Context, out io.Writer, tmpl *redisx.Template, args []string) error {
			val, err := tmpl.OpsForValue().Get(ctx, args[0]).Result()
			if stderrors.Is(err, goredis.Nil) {
				_, err = fmt.Fprintln(out, nilReply)
				return err
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, val)
			return err
		}),
	}
}

func newSetCmd(opts *rootOptions) *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set the value of a key",
		Args:  cobra.ExactArgs(2),
		RunE: opts.run(func(ctx context.Context, out io.Writer, tmpl *redisx.Template, args []string) error {
			res, err := tmpl.OpsForValue().Set(ctx, args[0], args[1], ttl).Result()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, res)
			return err
		}),
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "expire the key after this long")

	return cmd
}

func newIncrCmd(opts *rootOptions) *cobra.Command {
	var by int64

	cmd := &cobra.Command{
		Use:   "incr <key>",
		Short: "Increment the integer value of a key",
		Args:  cobra.ExactArgs(1),
		RunE: opts.run(func(ctx context.Context, out io.Writer, tmpl *redisx.Template, args []string) error {
			n, err := tmpl.OpsForValue().IncrBy(ctx, args[0], by).Result()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, n)
			return err
		}),
	}
	cmd.Flags().Int64Var(&by, "by", 1, "increment")

	return cmd
}

func newDelCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "del <key>...",
		Short: "Delete keys",
		Args:  cobra.MinimumNArgs(1),
		RunE: opts.run(func(ctx context.Context, out io.Writer, tmpl *redisx.Template, args []string) error {
			n, err := tmpl.Delete(ctx, args...).Result()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, n)
			return err
		}),
	}
}

func newKeysCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "keys <pattern>",
		Short: "List keys in the namespace matching pattern",
		Long:  "List keys in the namespace matching pattern. Keys are printed as stored, namespace included.",
		Args:  cobra.ExactArgs(1),
		RunE: opts.run(func(ctx context.Context, out io.Writer, tmpl *redisx.Template, args []string) error {
			keys, err := tmpl.Keys(ctx, args[0]).Result()
			if err != nil {
				return err
			}
			return printLines(out, keys)
		}),
	}
}

func newTTLCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ttl <key>",
		Short: "Show the time to live of a key",
		Long:  "Show the time to live of a key. -1 means no expiry and -2 means the key does not exist.",
		Args:  cobra.ExactArgs(1),
		RunE: opts.run(func(ctx context.Context, out io.Writer, tmpl *redisx.Template, args []string) error {
			ttl, err := tmpl.TTL(ctx, args[0]).Result()
			if err != nil {
				return err
			}
			if ttl < 0 {
				_, err = fmt.Fprintln(out, int64(ttl))
				return err
			}
			_, err = fmt.Fprintln(out, ttl)
			return err
		}),
	}
}

func printLines(out io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
