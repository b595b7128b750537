package errorattrs

import (
	"context"
	"fmt"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/redisx/internal/errors"
)

// ErrorInfo metadata keys set by UnaryServerInterceptor.
const (
	MetaExceptionCode = "exception_code"
	MetaRequestID     = "request_id"
	MetaHandler       = "handler"
)

// UnaryServerInterceptor opens an error scope for every call. When the
// handler fails, the failure is resolved and returned as a gRPC status whose
// ErrorInfo detail carries the decorated exception code and the request ID.
func UnaryServerInterceptor(r *Resolver) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx, scope := r.Begin(ctx)

		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		if _, isStatus := status.FromError(err); isStatus {
			err = errors.FromGRPCError(err)
		}

		r.ResolveError(ctx, info.FullMethod, err)
		attrs := r.Attributes(ctx, errors.GetCode(err).HTTPStatus())

		return nil, statusError(err, scope, attrs)
	}
}

func statusError(err error, scope *Scope, attrs map[string]any) error {
	code := errors.GetCode(err)
	st := status.New(code.GRPCCode(), errors.GetMessage(err))

	meta := make(map[string]string)
	for k, v := range errors.GetMeta(err) {
		meta[k] = fmt.Sprint(v)
	}
	meta[MetaRequestID] = scope.RequestID()
	meta[MetaHandler] = scope.Handler()
	if exceptionCode, ok := attrs[AttrCode].(int); ok {
		meta[MetaExceptionCode] = strconv.Itoa(exceptionCode)
	}

	withDetails, detailErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   code.String(),
		Domain:   errors.ErrorInfoDomain,
		Metadata: meta,
	})
	if detailErr != nil {
		return st.Err()
	}
	return withDetails.Err()
}
