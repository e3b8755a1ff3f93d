// Package errors provides the typed errors raised by optics and their tooling.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// AsType is a generic error type assertion.
// Returns the error as type T and true if the error chain contains type T.
func AsType[T error](err error) (T, bool) {
	var target T
	if errors.As(err, &target) {
		return target, true
	}
	return target, false
}

// Must panics if err is not nil, otherwise returns value.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

// ErrorCode represents optic error categories.
type ErrorCode string

// Error codes.
const (
	// Structural errors: the structure does not have the shape the optic expects.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	ErrCodeFieldType    ErrorCode = "FIELD_TYPE"

	// Capability errors: a profunctor was used in a way its kind does not support.
	ErrCodeUnsupportedCapability ErrorCode = "UNSUPPORTED_CAPABILITY"
	ErrCodeKindMismatch          ErrorCode = "KIND_MISMATCH"

	// Tooling errors
	ErrCodeInvalidPath     ErrorCode = "INVALID_PATH"
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	ErrCodeDecode          ErrorCode = "DECODE"
	ErrCodeEncode          ErrorCode = "ENCODE"
)

// OpticError is the standard error type of this module.
type OpticError struct {
	Code    ErrorCode
	Message string
	Details map[string]any
	cause   error
}

// Error implements the error interface.
func (e *OpticError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)
	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, e.Details[k])
		}
	}
	if e.cause != nil {
		fmt.Fprintf(&b, ": %v", e.cause)
	}
	return b.String()
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *OpticError) Unwrap() error {
	return e.cause
}

// WithCause sets the underlying cause.
func (e *OpticError) WithCause(cause error) *OpticError {
	e.cause = cause
	return e
}

// WithDetail adds a detail to the error.
func (e *OpticError) WithDetail(key string, value any) *OpticError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// Is matches another *OpticError by code, so the sentinels below work with errors.Is.
func (e *OpticError) Is(target error) bool {
	if t, ok := target.(*OpticError); ok {
		return e.Code == t.Code
	}
	return false
}

// Sentinels for errors.Is.
var (
	ErrMissingField          = &OpticError{Code: ErrCodeMissingField, Message: "missing field"}
	ErrFieldType             = &OpticError{Code: ErrCodeFieldType, Message: "field has unexpected type"}
	ErrUnsupportedCapability = &OpticError{Code: ErrCodeUnsupportedCapability, Message: "unsupported profunctor capability"}
	ErrKindMismatch          = &OpticError{Code: ErrCodeKindMismatch, Message: "profunctor kind mismatch"}
	ErrInvalidPath           = &OpticError{Code: ErrCodeInvalidPath, Message: "invalid path"}
	ErrInvalidArgument       = &OpticError{Code: ErrCodeInvalidArgument, Message: "invalid argument"}
	ErrDecode                = &OpticError{Code: ErrCodeDecode, Message: "decode failed"}
	ErrEncode                = &OpticError{Code: ErrCodeEncode, Message: "encode failed"}
)

// CodeOf returns the code of the first OpticError in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	if oe, ok := AsType[*OpticError](err); ok {
		return oe.Code, true
	}
	return "", false
}
