// Package errors provides structured errors for redisx.
//
// Errors carry a Code, a caller-facing message, an optional cause and
// free-form metadata:
//
//	err := errors.InvalidArgument("redis client is required")
//	err := errors.Wrap(cause, "failed to connect to redis").
//	    WithMeta("url", cfg.ConnectionURL)
//
// The Redis operation facades never use this package on the data path;
// store errors reach callers exactly as go-redis returned them. Structured
// errors are produced by constructors, configuration and the CLI/gRPC
// surfaces.
//
// # Exception codes
//
// ExceptionCodes maps specific error kinds to integer codes for error
// responses. Decorators are consulted in registration order and the first
// match wins; anything unmatched falls through to BaseExceptionCode, which
// derives the HTTP status of the error's Code:
//
//	codes := errors.NewExceptionCodes(
//	    errors.Matching[*strconv.NumError](123),
//	    errors.MatchingError(redis.Nil, 404),
//	)
//	code := codes.DecorateExceptionCode(err)
//
// # gRPC
//
// ToGRPCError and FromGRPCError convert between Error and gRPC status
// errors. Code and metadata travel as an errdetails.ErrorInfo detail.
package errors
