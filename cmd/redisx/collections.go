package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/redisx/internal/errors"
	"github.com/KirkDiggler/redisx/internal/redisx"
)

// positionalNumbers stops flag parsing at the first positional argument so
// negative indexes and scores such as -1 are read as arguments. Flags of the
// command must come before the key.
func positionalNumbers(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func parseRange(start, stop string) (int64, int64, error) {
	from, err := strconv.ParseInt(start, 10, 64)
	if err != nil {
		return 0, 0, errors.InvalidArgumentf("invalid start %q", start)
	}
	to, err := strconv.ParseInt(stop, 10, 64)
	if err != nil {
		return 0, 0, errors.InvalidArgumentf("invalid stop %q", stop)
	}
	return from, to, nil
}

func printCount(out io.Writer, n int64, err error) error {
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, n)
	return err
}

func newLPushCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lpush <key> <value>...",
		Short: "Prepend values to a list",
		Args:  cobra.MinimumNArgs(2),
		RunE: opts.run(func(ctx context.Context, out io.Writer, tmpl *redisx.Template, args []string) error {
			n, err := tmpl.OpsForList().LPush(ctx, args[0], toAny(args[1:])...).Result()
			return printCount(out, n, err)
		}),
	}
}

func newLRangeCmd(opts *rootOptions) *cobra.Command {
	return positionalNumbers(&cobra.Command{
		Use:   "lrange <key> <start> <stop>",
		Short: "Show a range of list elements",
		Long:  "Show a range of list elements. Negative indexes count from the end, so 0 -1 is the whole list.",
		Args:  cobra.ExactArgs(3),
		RunE: opts.run(func(ctx context.Context, out io.Writer, tmpl *redisx.Template, args []string) error {
			start, stop, err := parseRange(args[1], args[2])
			if err != nil {
				return err
			}
			items, err := tmpl.OpsForList().LRange(ctx, args[0], start, stop).Result()
			if err != nil {
				return err
			}
			return printLines(out, items)
		}),
	})
}

func newSAddCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sadd <key> <member>...",
		Short: "Add members to a set",
		Args:  cobra.MinimumNArgs(2),
		RunE: opts.run(func(ctx context.Context, out io.Writer, tmpl *redisx.Template, args []string) error {
			n, err := tmpl.BoundSetOps(args[0]).Add(ctx, toAny(args[1:])...).Result()
			return printCount(out, n, err)
		}),
	}
}

func newSMembersCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "smembers <key>",
		Short: "List the members of a set",
		Args:  cobra.ExactArgs(1),
		RunE: opts.run(func(ctx context.Context, out io.Writer, tmpl *redisx.Template, args []string) error {
			members, err := tmpl.BoundSetOps(args[0]).Members(ctx).Result()
			if err != nil {
				return err
			}
			return printLines(out, members)
		}),
	}
}

func newHSetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hset <key> <field> <value> [<field> <value>]...",
		Short: "Set hash fields",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 3 || len(args)%2 == 0 {
				return errors.InvalidArgument("expected a key followed by field value pairs")
			}
			return nil
		},
		RunE: opts.run(func(ctx context.Context, out io.Writer, tmpl *redisx.Template, args []string) error {
			n, err := tmpl.OpsForHash().HSet(ctx, args[0], toAny(args[1:])...).Result()
			return printCount(out, n, err)
		}),
	}
}

func newHGetAllCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hgetall <key>",
		Short: "Show every field of a hash",
		Args:  cobra.ExactArgs(1),
		RunE: opts.run(func(ctx context.Context, out io.Writer, tmpl *redisx.Template, args []string) error {
			fields, err := tmpl.OpsForHash().HGetAll(ctx, args[0]).Result()
			if err != nil {
				return err
			}
			for _, name := range slices.Sorted(maps.Keys(fields)) {
				if _, err := fmt.Fprintf(out, "%s=%s\n", name, fields[name]); err != nil {
					return err
				}
			}
			return nil
		}),
	}
}

func newZAddCmd(opts *rootOptions) *cobra.Command {
	return positionalNumbers(&cobra.Command{
		Use:   "zadd <key> <score> <member> [<score> <member>]...",
		Short: "Add scored members to a sorted set",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 3 || len(args)%2 == 0 {
				return errors.InvalidArgument("expected a key followed by score member pairs")
			}
			return nil
		},
		RunE: opts.run(func(ctx context.Context, out io.Writer, tmpl *redisx.Template, args []string) error {
			members := make([]goredis.Z, 0, len(args)/2)
			for i := 1; i < len(args); i += 2 {
				score, err := strconv.ParseFloat(args[i], 64)
				if err != nil {
					return errors.InvalidArgumentf("invalid score %q", args[i])
				}
				members = append(members, goredis.Z{Score: score, Member: args[i+1]})
			}
			n, err := tmpl.OpsForZSet().ZAdd(ctx, args[0], members...).Result()
			return printCount(out, n, err)
		}),
	})
}

func newZRangeCmd(opts *rootOptions) *cobra.Command {
	var withScores bool

	cmd := &cobra.Command{
		Use:   "zrange [--withscores] <key> <start> <stop>",
		Short: "Show a range of sorted set members by rank",
		Long:  "Show a range of sorted set members by rank. Negative ranks count from the end, so 0 -1 is the whole set.",
		Args:  cobra.ExactArgs(3),
		RunE: opts.run(func(ctx context.Context, out io.Writer, tmpl *redisx.Template, args []string) error {
			start, stop, err := parseRange(args[1], args[2])
			if err != nil {
				return err
			}
			if !withScores {
				members, err := tmpl.OpsForZSet().ZRange(ctx, args[0], start, stop).Result()
				if err != nil {
					return err
				}
				return printLines(out, members)
			}
			scored, err := tmpl.OpsForZSet().ZRangeWithScores(ctx, args[0], start, stop).Result()
			if err != nil {
				return err
			}
			for _, z := range scored {
				if _, err := fmt.Fprintf(out, "%v %s\n", z.Member, strconv.FormatFloat(z.Score, 'f', -1, 64)); err != nil {
					return err
				}
			}
			return nil
		}),
	}
	cmd.Flags().BoolVar(&withScores, "withscores", false, "print scores next to members")

	return positionalNumbers(cmd)
}

func newPFAddCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pfadd <key> <element>...",
		Short: "Add elements to a HyperLogLog",
		Args:  cobra.MinimumNArgs(2),
		RunE: opts.run(func(ctx context.Context, out io.Writer, tmpl *redisx.Template, args []string) error {
			n, err := tmpl.OpsForHyperLogLog().Add(ctx, args[0], toAny(args[1:])...).Result()
			return printCount(out, n, err)
		}),
	}
}

func newPFCountCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pfcount <key>...",
		Short: "Estimate the cardinality of HyperLogLogs",
		Args:  cobra.MinimumNArgs(1),
		RunE: opts.run(func(ctx context.Context, out io.Writer, tmpl *redisx.Template, args []string) error {
			n, err := tmpl.OpsForHyperLogLog().Size(ctx, args...).Result()
			return printCount(out, n, err)
		}),
	}
}
