// Package logger builds the process slog.Logger and adapts it to the gRPC
// middleware.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"

	"github.com/KirkDiggler/redisx/internal/errors"
)

// Format is the log output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Options configures New.
type Options struct {
	Level  slog.Level
	Format Format
	// Output defaults to os.Stderr.
	Output io.Writer
	// Service is attached to every record when set.
	Service string
}

// New creates a logger. An unknown format is an invalid-argument error.
func New(opts Options) (*slog.Logger, error) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	handlerOpts := &slog.HandlerOptions{Level: opts.Level}

	var handler slog.Handler
	switch opts.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(out, handlerOpts)
	case FormatText, "":
		handler = slog.NewTextHandler(out, handlerOpts)
	default:
		return nil, errors.InvalidArgumentf("invalid log format %q: must be %q or %q", opts.Format, FormatJSON, FormatText)
	}

	log := slog.New(handler)
	if opts.Service != "" {
		log = log.With(slog.String("service", opts.Service))
	}
	return log, nil
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.InvalidArgumentf("invalid log level %q", level)
	}
}

// GRPCLogger adapts l to the go-grpc-middleware logging interceptors.
func GRPCLogger(l *slog.Logger) logging.Logger {
	return logging.LoggerFunc(func(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}
