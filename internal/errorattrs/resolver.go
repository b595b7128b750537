package errorattrs

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/KirkDiggler/redisx/internal/errors"
	"github.com/KirkDiggler/redisx/internal/pkg/clock"
	"github.com/KirkDiggler/redisx/internal/pkg/idgen"
)

// Attribute names returned by Attributes.
const (
	AttrTimestamp = "timestamp"
	AttrStatus    = "status"
	AttrError     = "error"
	AttrMessage   = "message"
	AttrCode      = "code"
	AttrRequestID = "request_id"
	AttrHandler   = "handler"
)

const noMessage = "No message available"

// Config holds the dependencies of a Resolver. Nil dependencies get defaults.
type Config struct {
	Codes  *errors.ExceptionCodes
	Clock  clock.Clock
	IDs    idgen.Generator
	Logger *slog.Logger

	// UsingException makes the recorded error available through
	// HandlerExecutionError.
	UsingException bool
	// UsingStatus makes Attributes remember the status for Status.
	UsingStatus bool
}

// Resolver records failures into request scopes and builds error attributes
// from them.
type Resolver struct {
	codes          *errors.ExceptionCodes
	clock          clock.Clock
	ids            idgen.Generator
	logger         *slog.Logger
	usingException bool
	usingStatus    bool
}

// NewResolver creates a resolver
func NewResolver(cfg *Config) (*Resolver, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}

	r := &Resolver{
		codes:          cfg.Codes,
		clock:          cfg.Clock,
		ids:            cfg.IDs,
		logger:         cfg.Logger,
		usingException: cfg.UsingException,
		usingStatus:    cfg.UsingStatus,
	}
	if r.codes == nil {
		r.codes = errors.NewExceptionCodes()
	}
	if r.clock == nil {
		r.clock = clock.New()
	}
	if r.ids == nil {
		r.ids = idgen.NewUUID("req")
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}

	return r, nil
}

// Begin opens a scope for a new request.
func (r *Resolver) Begin(ctx context.Context) (context.Context, *Scope) {
	return NewContext(ctx, r.ids.Generate())
}

// ResolveError records handler and err in the request's scope and logs the
// failure.
func (r *Resolver) ResolveError(ctx context.Context, handler string, err error) {
	scope, ok := FromContext(ctx)
	if !ok {
		r.logger.WarnContext(ctx, "no error scope in context",
			slog.String("handler", handler),
			slog.Any("error", err))
		return
	}

	scope.record(handler, err)
	r.logger.ErrorContext(ctx, "request failed",
		slog.String("request_id", scope.RequestID()),
		slog.String("handler", handler),
		slog.String("code", errors.GetCode(err).String()),
		slog.Any("error", err))
}

// Attributes describes the request's failure for a response with status.
func (r *Resolver) Attributes(ctx context.Context, status int) map[string]any {
	attrs := map[string]any{
		AttrTimestamp: r.clock.Now(),
		AttrStatus:    status,
		AttrError:     http.StatusText(status),
		AttrMessage:   noMessage,
		AttrCode:      r.codes.DecorateExceptionCode(nil),
	}

	scope, ok := FromContext(ctx)
	if !ok {
		return attrs
	}

	attrs[AttrRequestID] = scope.RequestID()
	if handler := scope.Handler(); handler != "" {
		attrs[AttrHandler] = handler
	}
	if err := scope.cause(); err != nil {
		if msg := errors.GetMessage(err); msg != "" {
			attrs[AttrMessage] = msg
		}
		attrs[AttrCode] = r.codes.DecorateExceptionCode(err)
	}
	if r.usingStatus {
		scope.setStatus(status)
	}

	return attrs
}

// HandlerExecutionError returns the error recorded for the request. It is
// nil when UsingException is off or nothing was recorded.
func (r *Resolver) HandlerExecutionError(ctx context.Context) error {
	if !r.usingException {
		r.logger.InfoContext(ctx, "handler execution error requested but UsingException is off")
		return nil
	}

	scope, ok := FromContext(ctx)
	if !ok {
		return nil
	}
	return scope.cause()
}

// Status returns the status last passed to Attributes for the request. It
// reports false when UsingStatus is off or no status was recorded.
func (r *Resolver) Status(ctx context.Context) (int, bool) {
	if !r.usingStatus {
		r.logger.InfoContext(ctx, "response status requested but UsingStatus is off")
		return 0, false
	}

	scope, ok := FromContext(ctx)
	if !ok {
		return 0, false
	}
	return scope.recordedStatus()
}
