package errorattrs_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/redisx/internal/errorattrs"
	"github.com/KirkDiggler/redisx/internal/errors"
	mockclock "github.com/KirkDiggler/redisx/internal/pkg/clock/mock"
	"github.com/KirkDiggler/redisx/internal/pkg/idgen"
)

type ResolverTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	codes     *errors.ExceptionCodes
	now       time.Time
	ctx       context.Context
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.now = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.now).AnyTimes()
	s.codes = errors.NewExceptionCodes(
		errors.Matching[*json.SyntaxError](4001),
		errors.MatchingCode(errors.CodeNotFound, 4040),
	)
	s.ctx = context.Background()
}

func (s *ResolverTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ResolverTestSuite) newResolver(usingException, usingStatus bool) *errorattrs.Resolver {
	r, err := errorattrs.NewResolver(&errorattrs.Config{
		Codes:          s.codes,
		Clock:          s.mockClock,
		IDs:            idgen.NewSequential("req"),
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		UsingException: usingException,
		UsingStatus:    usingStatus,
	})
	s.Require().NoError(err)
	return r
}

func (s *ResolverTestSuite) TestNewResolverNilConfig() {
	r, err := errorattrs.NewResolver(nil)
	s.Error(err)
	s.Nil(r)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ResolverTestSuite) TestNewResolverDefaults() {
	r, err := errorattrs.NewResolver(&errorattrs.Config{})
	s.Require().NoError(err)

	ctx, scope := r.Begin(s.ctx)
	s.NotEmpty(scope.RequestID())

	attrs := r.Attributes(ctx, http.StatusOK)
	s.Equal(http.StatusOK, attrs[errorattrs.AttrCode])
}

func (s *ResolverTestSuite) TestAttributes() {
	var v any
	syntaxErr := json.Unmarshal([]byte("{]"), &v)
	s.Require().Error(syntaxErr)

	testCases := []struct {
		name        string
		err         error
		status      int
		wantMessage string
		wantCode    int
	}{
		{
			name:        "decorated by type",
			err:         errors.Wrap(syntaxErr, "decode request"),
			status:      http.StatusBadRequest,
			wantMessage: "decode request",
			wantCode:    4001,
		},
		{
			name:        "decorated by code",
			err:         errors.NotFound("session not found"),
			status:      http.StatusNotFound,
			wantMessage: "session not found",
			wantCode:    4040,
		},
		{
			name:        "unmatched falls back to base code",
			err:         errors.Unavailable("redis down"),
			status:      http.StatusServiceUnavailable,
			wantMessage: "redis down",
			wantCode:    http.StatusServiceUnavailable,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			r := s.newResolver(false, false)
			ctx, _ := r.Begin(s.ctx)

			r.ResolveError(ctx, "/redisx.v1.Keys/Get", tc.err)
			attrs := r.Attributes(ctx, tc.status)

			s.Equal(s.now, attrs[errorattrs.AttrTimestamp])
			s.Equal(tc.status, attrs[errorattrs.AttrStatus])
			s.Equal(http.StatusText(tc.status), attrs[errorattrs.AttrError])
			s.Equal(tc.wantMessage, attrs[errorattrs.AttrMessage])
			s.Equal(tc.wantCode, attrs[errorattrs.AttrCode])
			s.Equal("req_1", attrs[errorattrs.AttrRequestID])
			s.Equal("/redisx.v1.Keys/Get", attrs[errorattrs.AttrHandler])
		})
	}
}

func (s *ResolverTestSuite) TestAttributesWithoutFailure() {
	r := s.newResolver(false, false)
	ctx, _ := r.Begin(s.ctx)

	attrs := r.Attributes(ctx, http.StatusNotFound)

	s.Equal("No message available", attrs[errorattrs.AttrMessage])
	s.Equal(http.StatusOK, attrs[errorattrs.AttrCode])
	s.NotContains(attrs, errorattrs.AttrHandler)
}

func (s *ResolverTestSuite) TestAttributesWithoutScope() {
	r := s.newResolver(true, true)

	r.ResolveError(s.ctx, "handler", errors.Internal("boom"))
	attrs := r.Attributes(s.ctx, http.StatusInternalServerError)

	s.NotContains(attrs, errorattrs.AttrRequestID)
	s.NotContains(attrs, errorattrs.AttrHandler)
	s.Equal(http.StatusInternalServerError, attrs[errorattrs.AttrStatus])

	_, ok := r.Status(s.ctx)
	s.False(ok)
	s.NoError(r.HandlerExecutionError(s.ctx))
}

func (s *ResolverTestSuite) TestHandlerExecutionError() {
	cause := errors.NotFound("missing")

	s.Run("using exception", func() {
		r := s.newResolver(true, false)
		ctx, _ := r.Begin(s.ctx)

		s.NoError(r.HandlerExecutionError(ctx), "nothing recorded yet")

		r.ResolveError(ctx, "handler", cause)
		s.Same(cause, r.HandlerExecutionError(ctx))
	})

	s.Run("not using exception", func() {
		r := s.newResolver(false, false)
		ctx, _ := r.Begin(s.ctx)

		r.ResolveError(ctx, "handler", cause)
		s.NoError(r.HandlerExecutionError(ctx))
	})
}

func (s *ResolverTestSuite) TestStatus() {
	s.Run("using status", func() {
		r := s.newResolver(false, true)
		ctx, _ := r.Begin(s.ctx)

		_, ok := r.Status(ctx)
		s.False(ok)

		r.Attributes(ctx, http.StatusConflict)
		got, ok := r.Status(ctx)
		s.True(ok)
		s.Equal(http.StatusConflict, got)
	})

	s.Run("not using status", func() {
		r := s.newResolver(false, false)
		ctx, _ := r.Begin(s.ctx)

		r.Attributes(ctx, http.StatusConflict)
		_, ok := r.Status(ctx)
		s.False(ok)
	})
}

func (s *ResolverTestSuite) TestScopesAreIsolated() {
	r := s.newResolver(true, true)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx, scope := r.Begin(s.ctx)
			cause := errors.Newf(errors.CodeInternal, "failure %d", i)

			r.ResolveError(ctx, scope.RequestID(), cause)
			r.Attributes(ctx, 500+i)

			s.Same(cause, r.HandlerExecutionError(ctx))
			got, ok := r.Status(ctx)
			s.True(ok)
			s.Equal(500+i, got)
			s.Equal(scope.RequestID(), scope.Handler())
		}()
	}
	wg.Wait()
}

func (s *ResolverTestSuite) TestFromContext() {
	_, ok := errorattrs.FromContext(s.ctx)
	s.False(ok)

	ctx, scope := errorattrs.NewContext(s.ctx, "abc")
	got, ok := errorattrs.FromContext(ctx)
	s.True(ok)
	s.Same(scope, got)
	s.Equal("abc", got.RequestID())
}
