package errors

import (
	stderrors "errors"
	"fmt"
)

type Error struct {
	InnerError error
	Code       int
	Message    string
}

func (e *Error) Error() string {
	if e.InnerError == nil {
		return fmt.Sprintf("code %d message %s", e.Code, e.Message)
	}
	return fmt.Sprintf("code %d message %s: %s", e.Code, e.Message, e.InnerError.Error())
}

func (e *Error) Unwrap() error {
	return e.InnerError
}

func (e *Error) WithCode(code int) *Error {
	e.Code = code
	return e
}

func (e *Error) WithMessage(message string) *Error {
	e.Message = message
	return e
}

func (e *Error) WithMessagef(message string, args ...interface{}) *Error {
	e.Message = fmt.Sprintf(message, args...)
	return e
}

func (e *Error) WithError(err error) *Error {
	e.InnerError = err
	return e
}

func NewError() *Error {
	return &Error{}
}

func WrapError(err error, message string, code int) *Error {
	return NewError().WithCode(code).WithMessage(message).WithError(err)
}

func WrapMessage(message string, code int) *Error {
	return NewError().WithCode(code).WithMessage(message)
}

// Code returns the error code carried by err or any error it wraps.
// Errors without a code report CodeInternalError.
func Code(err error) int {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return CodeInternalError
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code int) bool {
	return err != nil && Code(err) == code
}
