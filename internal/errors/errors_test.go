package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/redisx/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "key not found",
			expected: "NOT_FOUND: key not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "namespace is required",
			expected: "INVALID_ARGUMENT: namespace is required",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("dial tcp: connection refused")
	wrapped := errors.Wrap(baseErr, "failed to connect to redis")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to connect to redis", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
	s.Assert().Contains(wrapped.Error(), "connection refused")
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("key not found").WithMeta("key", "app:session:42")
	wrapped := errors.Wrapf(baseErr, "lookup %s", "session:42")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("lookup session:42", wrapped.Message)
	s.Assert().Equal("app:session:42", wrapped.Meta["key"])
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.Internal("ping failed").WithMeta("attempt", 3)
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "redis unavailable")

	s.Assert().Equal(errors.CodeUnavailable, wrapped.Code)
	s.Assert().Equal(3, wrapped.Meta["attempt"])
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	s.Assert().True(errors.NotFound("a").Is(errors.NotFound("b")))
	s.Assert().False(errors.NotFound("a").Is(errors.InvalidArgument("a")))
	s.Assert().True(errors.Is(errors.Wrap(errors.Unavailable("down"), "ctx"), errors.Unavailable("")))
}

func (s *ErrorsTestSuite) TestHelpers() {
	notFound := errors.NotFound("test")
	wrapped := errors.Wrap(notFound, "wrapped")
	plain := fmt.Errorf("standard error")

	s.Assert().True(errors.IsNotFound(wrapped))
	s.Assert().True(errors.IsInvalidArgument(errors.InvalidArgumentf("bad %d", 1)))
	s.Assert().True(errors.IsUnavailable(errors.Unavailable("down")))

	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(plain))
	s.Assert().Equal("wrapped", errors.GetMessage(wrapped))
	s.Assert().Equal("standard error", errors.GetMessage(plain))
	s.Assert().Equal("", errors.GetMessage(nil))
	s.Assert().Nil(errors.GetMeta(plain))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 200},
		{errors.CodeNotFound, 404},
		{errors.CodeInvalidArgument, 400},
		{errors.CodeFailedPrecondition, 412},
		{errors.CodeInternal, 500},
		{errors.CodeUnavailable, 503},
		{errors.Code("SOMETHING_ELSE"), 500},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.HTTPStatus())
		})
	}
}

func (s *ErrorsTestSuite) TestToGRPCError() {
	err := errors.NotFound("key not found").WithMeta("key", "app:tags")

	st, ok := status.FromError(errors.ToGRPCError(err))
	s.Require().True(ok)
	s.Assert().Equal(codes.NotFound, st.Code())
	s.Assert().Equal("key not found", st.Message())

	s.Require().Len(st.Details(), 1)
	info, ok := st.Details()[0].(*errdetails.ErrorInfo)
	s.Require().True(ok)
	s.Assert().Equal(errors.ErrorInfoDomain, info.GetDomain())
	s.Assert().Equal("NOT_FOUND", info.GetReason())
	s.Assert().Equal("app:tags", info.GetMetadata()["key"])
}

func (s *ErrorsTestSuite) TestToGRPCErrorPassThrough() {
	s.Assert().Nil(errors.ToGRPCError(nil))

	original := status.Error(codes.Aborted, "aborted")
	s.Assert().Equal(original, errors.ToGRPCError(original))

	st, _ := status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
	s.Assert().Equal(codes.Internal, st.Code())
}

func (s *ErrorsTestSuite) TestFromGRPCErrorRoundTrip() {
	err := errors.Unavailable("redis down").WithMeta("attempt", 3)

	back := errors.FromGRPCError(errors.ToGRPCError(err))
	s.Assert().Equal(errors.CodeUnavailable, errors.GetCode(back))
	s.Assert().Equal("redis down", errors.GetMessage(back))
	s.Assert().Equal("3", errors.GetMeta(back)["attempt"])

	plain := fmt.Errorf("not a status")
	s.Assert().Equal(plain, errors.FromGRPCError(plain))
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnavailable, codes.Unavailable},
		{errors.Code("SOMETHING_ELSE"), codes.Unknown},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.GRPCCode())
		})
	}

	back := errors.FromGRPCError(status.Error(codes.DeadlineExceeded, "slow"))
	s.Assert().Equal(errors.CodeDeadlineExceeded, errors.GetCode(back))
}
