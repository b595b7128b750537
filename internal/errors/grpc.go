package errors

import (
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorInfoDomain identifies redisx in errdetails.ErrorInfo details.
const ErrorInfoDomain = "redisx"

// ToGRPCError converts an error to a gRPC status error. Errors that already
// carry a status pass through; anything else becomes codes.Internal.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	return GRPCStatus(err).Err()
}

// GRPCStatus returns the gRPC status for any error
func GRPCStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}

	if st, ok := status.FromError(err); ok {
		return st
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.New(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if len(customErr.Meta) == 0 {
		return st
	}

	withDetails, detailErr := st.WithDetails(errorInfo(customErr))
	if detailErr != nil {
		return st
	}
	return withDetails
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    grpcCodeToCode(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		info, ok := detail.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != ErrorInfoDomain {
			continue
		}
		for k, v := range info.GetMetadata() {
			customErr.WithMeta(k, v)
		}
		break
	}

	return customErr
}

func errorInfo(e *Error) *errdetails.ErrorInfo {
	meta := make(map[string]string, len(e.Meta))
	for k, v := range e.Meta {
		meta[k] = fmt.Sprint(v)
	}
	return &errdetails.ErrorInfo{
		Reason:   string(e.Code),
		Domain:   ErrorInfoDomain,
		Metadata: meta,
	}
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeOK:
		return codes.OK
	case CodeCanceled:
		return codes.Canceled
	case CodeInvalidArgument:
		return codes.InvalidArgument
	case CodeDeadlineExceeded:
		return codes.DeadlineExceeded
	case CodeNotFound:
		return codes.NotFound
	case CodeAlreadyExists:
		return codes.AlreadyExists
	case CodePermissionDenied:
		return codes.PermissionDenied
	case CodeResourceExhausted:
		return codes.ResourceExhausted
	case CodeFailedPrecondition:
		return codes.FailedPrecondition
	case CodeAborted:
		return codes.Aborted
	case CodeOutOfRange:
		return codes.OutOfRange
	case CodeUnimplemented:
		return codes.Unimplemented
	case CodeInternal:
		return codes.Internal
	case CodeUnavailable:
		return codes.Unavailable
	case CodeDataLoss:
		return codes.DataLoss
	case CodeUnauthenticated:
		return codes.Unauthenticated
	default:
		return codes.Unknown
	}
}

func grpcCodeToCode(grpcCode codes.Code) Code {
	for _, c := range allCodes {
		if c.GRPCCode() == grpcCode {
			return c
		}
	}
	return CodeInternal
}
