package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/KirkDiggler/redisx/internal/errorattrs"
	"github.com/KirkDiggler/redisx/internal/errors"
	"github.com/KirkDiggler/redisx/internal/logger"
	"github.com/KirkDiggler/redisx/internal/pkg/clock"
	"github.com/KirkDiggler/redisx/internal/pkg/idgen"
	"github.com/KirkDiggler/redisx/internal/redis"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the gRPC health server",
		Long:  `Start a gRPC server whose health service follows Redis reachability.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if port == 0 {
				port = a.cfg.GRPCPort
			}
			return serve(cmd.Context(), a, port)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "gRPC server port (overrides REDISX_GRPC_PORT)")

	return cmd
}

func newServer(a *app) (*grpc.Server, *health.Server, error) {
	resolver, err := errorattrs.NewResolver(&errorattrs.Config{
		Codes:  exceptionCodes(),
		Clock:  clock.New(),
		IDs:    idgen.NewUUID("req"),
		Logger: a.log,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create error resolver")
	}

	grpcLog := logger.GRPCLogger(a.log)
	recoveryOpt := grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		a.log.ErrorContext(ctx, "recovered from panic", slog.Any("panic", p))
		return errors.ToGRPCError(errors.Internal("internal error"))
	})

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpcLog),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
			errorattrs.UnaryServerInterceptor(resolver),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpcLog),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	reflection.Register(srv)

	return srv, healthServer, nil
}

// exceptionCodes maps the errors the server can see to exception codes.
// Anything else gets the HTTP status of its error code.
func exceptionCodes() *errors.ExceptionCodes {
	return errors.NewExceptionCodes(
		errors.MatchingError(context.DeadlineExceeded, 504),
		errors.MatchingError(context.Canceled, 499),
	)
}

func serve(ctx context.Context, a *app, port int) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to listen").WithMeta("port", port)
	}

	srv, healthServer, err := newServer(a)
	if err != nil {
		_ = lis.Close()
		return err
	}

	go watchHealth(ctx, healthServer, redis.Healthcheck(a.client), a.cfg.HealthInterval, a.log)

	errChan := make(chan error, 1)
	go func() {
		a.log.Info("gRPC server starting", slog.Int("port", port))
		if err := srv.Serve(lis); err != nil {
			errChan <- errors.Wrap(err, "failed to serve")
		}
	}()

	select {
	case <-ctx.Done():
		a.log.Info("shutting down gRPC server")
		healthServer.Shutdown()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-time.After(shutdownTimeout):
			a.log.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			a.log.Info("server stopped gracefully")
		}
		return nil
	case err := <-errChan:
		return err
	}
}

// watchHealth sets the overall serving status from check, once immediately
// and then every interval, until ctx is done.
func watchHealth(ctx context.Context, hs *health.Server, check func(context.Context) error, interval time.Duration, log *slog.Logger) {
	update := func() {
		checkCtx, cancel := context.WithTimeout(ctx, interval)
		defer cancel()

		if err := check(checkCtx); err != nil {
			log.WarnContext(ctx, "redis unhealthy", slog.Any("error", err))
			hs.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
			return
		}
		hs.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	}

	update()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			update()
		}
	}
}
