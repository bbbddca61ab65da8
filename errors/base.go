package errors

import (
	"fmt"
	"reflect"
)

type Error interface {
	error
	New(args ...any) BaseError
	Wrap(cause error, args ...any) BaseError
	IsEqual(other BaseError) bool
}

type BaseError struct {
	Code    int    `json:"code"`
	Name    string `json:"name"`
	Message string `json:"message"`

	messageFormat string
	cause         error
}

func (e BaseError) Error() string {
	return e.Message
}

// New returns a copy of the error with its message formatted from args.
func (e *BaseError) New(args ...any) BaseError {

	created := *e
	created.Message = fmt.Sprintf(e.messageFormat, args...)
	created.cause = nil

	return created
}

// Wrap is New with the underlying cause kept for errors.Is/As and logging.
func (e *BaseError) Wrap(cause error, args ...any) BaseError {

	created := e.New(args...)
	created.cause = cause

	return created
}

func (e BaseError) Unwrap() error {
	return e.cause
}

// Is reports whether target carries the same error code.
func (e BaseError) Is(target error) bool {

	switch t := target.(type) {
	case BaseError:
		return t.Code == e.Code
	case *BaseError:
		return t != nil && t.Code == e.Code
	default:
		return false
	}
}

func (e *BaseError) IsEqual(other BaseError) bool {
	return e.Code == other.Code
}

func (e BaseError) IsNil() bool {
	return reflect.ValueOf(e).IsZero()
}

func TryAssertError(err error) (BaseError, bool) {

	switch asserted := err.(type) {
	case BaseError:
		return asserted, true
	case *BaseError:
		return *asserted, asserted != nil
	}

	type unwrapper interface{ Unwrap() error }
	if u, ok := err.(unwrapper); ok && u.Unwrap() != nil {
		return TryAssertError(u.Unwrap())
	}

	return BaseError{}, false
}

func IsError(err error, expectedError BaseError) bool {

	asserted, ok := TryAssertError(err)
	if !ok {
		return false
	}

	return asserted.Code == expectedError.Code && asserted.Message == expectedError.Message
}

func new(errorCode int, name string, messageFormat string) Error {

	return &BaseError{Code: errorCode, Name: name, messageFormat: messageFormat}
}
