package errors_test

import (
	"encoding/json"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/redisx/internal/errors"
)

var errIndexOutOfRange = fmt.Errorf("index out of range")

type ExceptionCodesTestSuite struct {
	suite.Suite
	codes *errors.ExceptionCodes
}

func TestExceptionCodesSuite(t *testing.T) {
	suite.Run(t, new(ExceptionCodesTestSuite))
}

func (s *ExceptionCodesTestSuite) SetupTest() {
	s.codes = errors.NewExceptionCodes(
		errors.MatchingError(errIndexOutOfRange, 123),
		errors.Matching[*json.SyntaxError](345),
		nil,
		errors.MatchingCode(errors.CodeFailedPrecondition, 412001),
	)
}

func (s *ExceptionCodesTestSuite) TestDecorateExceptionCode() {
	syntaxErr := json.Unmarshal([]byte("{]"), new(map[string]any))
	s.Require().Error(syntaxErr)

	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "sentinel match",
			err:      errIndexOutOfRange,
			expected: 123,
		},
		{
			name:     "wrapped sentinel match",
			err:      fmt.Errorf("read slot: %w", errIndexOutOfRange),
			expected: 123,
		},
		{
			name:     "type match",
			err:      syntaxErr,
			expected: 345,
		},
		{
			name:     "structured code match",
			err:      errors.FailedPrecondition("namespace locked"),
			expected: 412001,
		},
		{
			name:     "unmatched structured error falls back to base",
			err:      errors.NotFound("missing"),
			expected: 404,
		},
		{
			name:     "unmatched plain error falls back to base",
			err:      &strconv.NumError{Func: "Atoi", Num: "x", Err: strconv.ErrSyntax},
			expected: 500,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: 200,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, s.codes.DecorateExceptionCode(tc.err))
		})
	}
}

func (s *ExceptionCodesTestSuite) TestFirstMatchWins() {
	codes := errors.NewExceptionCodes(
		errors.MatchingError(errIndexOutOfRange, 1),
		errors.MatchingError(errIndexOutOfRange, 2),
	)
	s.Assert().Equal(1, codes.DecorateExceptionCode(errIndexOutOfRange))
}

func (s *ExceptionCodesTestSuite) TestEmptyChainUsesBase() {
	var nilCodes *errors.ExceptionCodes
	s.Assert().Equal(503, nilCodes.DecorateExceptionCode(errors.Unavailable("down")))
	s.Assert().Equal(503, errors.NewExceptionCodes().DecorateExceptionCode(errors.Unavailable("down")))
	s.Assert().Equal(503, errors.BaseExceptionCode(errors.Unavailable("down")))
}
