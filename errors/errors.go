package errors

import (
	stderr "errors"
	"fmt"

	"github.com/eaugeas/dstruct/logs"
)

const (
	// ErrorCodeIndexOutOfBounds is used when a positional operation
	// receives an index outside of the container
	ErrorCodeIndexOutOfBounds = 1000 + iota

	// ErrorCodeUnknownOperator is used when an expression contains
	// a token that is neither an operand nor a known operator
	ErrorCodeUnknownOperator

	// ErrorCodeMalformedExpression is used when an expression does
	// not have the right number of operands for its operators
	ErrorCodeMalformedExpression

	// ErrorCodeInvalidValue is used when an input value cannot be
	// parsed
	ErrorCodeInvalidValue
)

// Error is the error returned by operations that fail to satisfy
// a request because of the input they received
type Error struct {
	// ErrorCode is a unique identifier for the error that can be used to identify
	// the particular type of error encountered
	ErrorCode int `json:"errorCode"`

	// Description is a human-readable description of the error that occurred
	// to aid the client in debugging
	Description string `json:"description"`
}

// New creates an Error with the code and description
func New(code int, description string) *Error {
	return &Error{ErrorCode: code, Description: description}
}

// Errorf creates an Error with the code and a formatted description
func Errorf(code int, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Error is the implementation of go's error interface for Error
func (e *Error) Error() string {
	return e.Description
}

// Log implementation of logs.Loggable
func (e *Error) Log(fields logs.Fields) {
	fields.Add("error_code", e.ErrorCode)
	fields.Add("description", e.Description)
}

// Code returns the code of the first *Error found in the
// chain of err
func Code(err error) (int, bool) {
	var e *Error
	if stderr.As(err, &e) {
		return e.ErrorCode, true
	}

	return 0, false
}
