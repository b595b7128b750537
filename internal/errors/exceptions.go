package errors

import (
	"errors"
)

// CodeDecorator maps an error kind to an integer exception code. It reports
// false when err is not a kind it knows about.
type CodeDecorator interface {
	DecorateExceptionCode(err error) (int, bool)
}

// CodeDecoratorFunc adapts a function to CodeDecorator.
type CodeDecoratorFunc func(err error) (int, bool)

// DecorateExceptionCode calls f(err).
func (f CodeDecoratorFunc) DecorateExceptionCode(err error) (int, bool) {
	return f(err)
}

// Matching returns a decorator that assigns code to any error in the chain
// whose type is T.
func Matching[T error](code int) CodeDecorator {
	return CodeDecoratorFunc(func(err error) (int, bool) {
		var target T
		if errors.As(err, &target) {
			return code, true
		}
		return 0, false
	})
}

// MatchingError returns a decorator that assigns code to errors matching
// target under errors.Is.
func MatchingError(target error, code int) CodeDecorator {
	return CodeDecoratorFunc(func(err error) (int, bool) {
		if errors.Is(err, target) {
			return code, true
		}
		return 0, false
	})
}

// MatchingCode returns a decorator that assigns code to structured errors
// carrying c.
func MatchingCode(c Code, code int) CodeDecorator {
	return CodeDecoratorFunc(func(err error) (int, bool) {
		var customErr *Error
		if errors.As(err, &customErr) && customErr.Code == c {
			return code, true
		}
		return 0, false
	})
}

// BaseExceptionCode is the fallback mapping: the HTTP status of the error's
// Code. Plain errors map to 500 and nil maps to 200.
func BaseExceptionCode(err error) int {
	return GetCode(err).HTTPStatus()
}

// ExceptionCodes is an ordered decorator chain over BaseExceptionCode.
// It is immutable after construction and safe for concurrent use.
type ExceptionCodes struct {
	decorators []CodeDecorator
}

// NewExceptionCodes builds a chain; nil decorators are skipped.
func NewExceptionCodes(decorators ...CodeDecorator) *ExceptionCodes {
	chain := make([]CodeDecorator, 0, len(decorators))
	for _, d := range decorators {
		if d != nil {
			chain = append(chain, d)
		}
	}
	return &ExceptionCodes{decorators: chain}
}

// DecorateExceptionCode returns the code of the first decorator that matches
// err, or BaseExceptionCode(err) when none does.
func (e *ExceptionCodes) DecorateExceptionCode(err error) int {
	if e != nil && err != nil {
		for _, d := range e.decorators {
			if code, ok := d.DecorateExceptionCode(err); ok {
				return code
			}
		}
	}
	return BaseExceptionCode(err)
}
